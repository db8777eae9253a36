//go:build unix

package source

import (
	"errors"
	"os"
	"syscall"
)

func mmapOpen(f *os.File, size int) ([]byte, func() error, error) {
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	data, err := syscall.Mmap(int(f.Fd()), 0, size, syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	unmap := func() error {
		err := syscall.Munmap(data)
		if err != nil && !errors.Is(err, syscall.EINVAL) {
			return err
		}
		return nil
	}
	return data, unmap, nil
}
