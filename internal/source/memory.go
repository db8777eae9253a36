package source

// MemorySource is a ByteSource backed by an in-memory byte slice. It takes
// ownership of the slice: callers must not mutate it afterwards.
type MemorySource struct {
	data []byte
}

// NewMemorySource wraps b as a ByteSource.
func NewMemorySource(b []byte) *MemorySource {
	return &MemorySource{data: b}
}

func (m *MemorySource) ReadExact(off int64, buf []byte) error {
	if err := boundsCheck(off, len(buf), int64(len(m.data))); err != nil {
		return err
	}
	copy(buf, m.data[off:int(off)+len(buf)])
	return nil
}

func (m *MemorySource) Len() int64 {
	return int64(len(m.data))
}

func (m *MemorySource) Close() error {
	return nil
}
