package source

import "os"

// FileSource is a ByteSource backed by a memory-mapped file on platforms
// that support it, falling back to a full read otherwise.
type FileSource struct {
	data   []byte
	unmap  func() error
	closed bool
}

// OpenFile maps path into memory for reading. The returned FileSource must
// be closed by the caller.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	data, unmap, err := mmapOpen(f, int(info.Size()))
	if err != nil {
		return nil, err
	}
	return &FileSource{data: data, unmap: unmap}, nil
}

func (s *FileSource) ReadExact(off int64, buf []byte) error {
	if s.closed {
		return ErrOutOfRange
	}
	if err := boundsCheck(off, len(buf), int64(len(s.data))); err != nil {
		return err
	}
	copy(buf, s.data[off:int(off)+len(buf)])
	return nil
}

func (s *FileSource) Len() int64 {
	return int64(len(s.data))
}

func (s *FileSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.unmap == nil {
		return nil
	}
	return s.unmap()
}
