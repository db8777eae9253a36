package lnk

import (
	"github.com/joshuapare/lnkkit/internal/reader"
	"github.com/joshuapare/lnkkit/internal/source"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Open parses a shortcut file from src, an arbitrary ByteSource. opts may be
// nil to use types.DefaultParseOptions.
//
// Example:
//
//	src := source.NewMemorySource(data)
//	sf, err := lnk.Open(src, nil)
func Open(src source.ByteSource, opts *types.ParseOptions) (*ShortcutFile, error) {
	o := resolveOptions(opts)
	res, err := reader.Parse(src, o)
	if err != nil {
		return nil, err
	}
	return &ShortcutFile{res: res, opts: o}, nil
}

// OpenFile maps path into memory and parses it.
//
// Example:
//
//	sf, err := lnk.OpenFile("/home/user/Desktop/notepad.lnk", nil)
func OpenFile(path string, opts *types.ParseOptions) (*ShortcutFile, error) {
	src, err := source.OpenFile(path)
	if err != nil {
		return nil, err
	}
	sf, err := Open(src, opts)
	if err != nil {
		src.Close()
		return nil, err
	}
	sf.closer = src
	return sf, nil
}

// OpenBytes parses a shortcut file already resident in memory. The parser
// never retains the slice after Open returns: all decoded data is copied
// into owned storage.
//
// Example:
//
//	sf, err := lnk.OpenBytes(data, nil)
func OpenBytes(data []byte, opts *types.ParseOptions) (*ShortcutFile, error) {
	o := resolveOptions(opts)
	res, err := reader.ParseBytes(data, o)
	if err != nil {
		return nil, err
	}
	return &ShortcutFile{res: res, opts: o}, nil
}

func resolveOptions(opts *types.ParseOptions) types.ParseOptions {
	if opts == nil {
		return types.DefaultParseOptions()
	}
	return *opts
}
