package types

// Codepage enumerates the ANSI codepages the parser can transcode.
type Codepage int

const (
	CodepageASCII Codepage = iota
	CodepageWindows874
	CodepageWindows932
	CodepageWindows936
	CodepageWindows949
	CodepageWindows950
	CodepageWindows1250
	CodepageWindows1251
	CodepageWindows1252
	CodepageWindows1253
	CodepageWindows1254
	CodepageWindows1255
	CodepageWindows1256
	CodepageWindows1257
	CodepageWindows1258
)

// ParseOptions controls the behavior of a single parse pass.
type ParseOptions struct {
	// AsciiCodepage selects how ANSI byte fields (volume label, local and
	// common path ANSI halves, network share and device names, machine
	// identifier, non-Unicode data strings) are transcoded to UTF-8/UTF-16.
	// The ANSI half of a strings-style data block is always decoded as
	// ASCII and does not use this setting. Defaults to CodepageASCII.
	AsciiCodepage Codepage

	// Tolerant relaxes the one non-spec-mandated check in the data block
	// stream reader: a stream that runs out of bytes before its terminal
	// size-zero sentinel normally aborts the parse (ErrTruncated). Under
	// Tolerant, that case is downgraded to a warning and the blocks decoded
	// so far are kept. Recoverable failures are always tolerated regardless
	// of this flag; this only covers the missing-sentinel case.
	Tolerant bool

	// MaxAlloc bounds the size of any single DataBlock payload, guarding
	// against hostile size fields. LocationInformation records are not
	// checked against it. Zero selects a sane default (DefaultMaxAlloc).
	MaxAlloc int

	// CollectWarnings enables accumulation of recoverable-failure warnings
	// during the parse. When false, warnings are still handled as
	// recoverable but are not retained.
	CollectWarnings bool
}

// DefaultMaxAlloc bounds DataBlock sizes absent an explicit
// ParseOptions.MaxAlloc.
const DefaultMaxAlloc = 16 * 1024 * 1024

// DefaultParseOptions returns the options used when nil is passed to Open.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		AsciiCodepage:   CodepageASCII,
		Tolerant:        false,
		MaxAlloc:        DefaultMaxAlloc,
		CollectWarnings: true,
	}
}

func (o ParseOptions) maxAlloc() int {
	if o.MaxAlloc <= 0 {
		return DefaultMaxAlloc
	}
	return o.MaxAlloc
}

// MaxAllocOrDefault exposes the effective MaxAlloc, normalizing the zero value.
func (o ParseOptions) MaxAllocOrDefault() int {
	return o.maxAlloc()
}
