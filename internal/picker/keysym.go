package picker

// These constants come from /usr/include/X11/keysymdef.h.

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

const (
	xk0      = 0x0030
	xk9      = 0x0039
	xka      = 0x0061
	xkz      = 0x007a
	xkEscape = 0xff1b
)

// keysymRune returns the symbol a keysym produces in the picker's code
// space: a digit, a lower case letter or Escape.
func keysymRune(keysym xp.Keysym) (rune, bool) {
	switch {
	case keysym == xkEscape:
		return Escape, true
	case xk0 <= keysym && keysym <= xk9, xka <= keysym && keysym <= xkz:
		return rune(keysym), true
	}
	return 0, false
}
