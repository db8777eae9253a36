package types

import "fmt"

// Warning records a recoverable failure encountered during a parse: a
// known-signature data-block decode failure, or, under ParseOptions.Tolerant,
// a data-block stream that ends without its size-zero sentinel. Unknown
// signatures and strings-block halves lacking a NUL terminator produce no
// warning.
type Warning struct {
	Section string
	Offset  int
	Msg     string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (offset %d): %s", w.Section, w.Offset, w.Msg)
}

// WarningList accumulates Warning values during a parse. The zero value is
// ready to use.
type WarningList struct {
	items []Warning
}

// Add records a warning unconditionally.
func (l *WarningList) Add(section string, offset int, msg string) {
	l.items = append(l.items, Warning{Section: section, Offset: offset, Msg: msg})
}

// All returns a copy of the accumulated warnings, in the order encountered.
func (l *WarningList) All() []Warning {
	if l == nil || len(l.items) == 0 {
		return nil
	}
	out := make([]Warning, len(l.items))
	copy(out, l.items)
	return out
}

// Len reports the number of accumulated warnings.
func (l *WarningList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}
