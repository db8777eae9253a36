package lnk

import "fmt"

// HotKey is the decoded form of the FileHeader's raw hot_key field: a
// virtual-key code in the low byte and a Shift/Ctrl/Alt modifier mask in
// the high byte.
type HotKey struct {
	Key   string
	Shift bool
	Ctrl  bool
	Alt   bool
}

const (
	hotKeyModShift = 0x01
	hotKeyModCtrl  = 0x02
	hotKeyModAlt   = 0x04
)

// HotKey decodes HotKeyRaw into a named key plus modifier flags. Key is
// empty when the low byte does not map to a known virtual-key code.
func (sf *ShortcutFile) HotKey() HotKey {
	raw := sf.res.Header.HotKey
	low := byte(raw & 0xFF)
	high := byte(raw >> 8)
	return HotKey{
		Key:   virtualKeyName(low),
		Shift: high&hotKeyModShift != 0,
		Ctrl:  high&hotKeyModCtrl != 0,
		Alt:   high&hotKeyModAlt != 0,
	}
}

func virtualKeyName(low byte) string {
	switch {
	case low >= '0' && low <= '9', low >= 'A' && low <= 'Z':
		return string(rune(low))
	case low >= 0x70 && low <= 0x87:
		return fmt.Sprintf("F%d", int(low)-0x70+1)
	case low == 0x90:
		return "NumLock"
	case low == 0x91:
		return "ScrollLock"
	default:
		return ""
	}
}
