//go:build !unix

package source

import "os"

func mmapOpen(f *os.File, size int) ([]byte, func() error, error) {
	data := make([]byte, size)
	if _, err := f.ReadAt(data, 0); err != nil && size > 0 {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
