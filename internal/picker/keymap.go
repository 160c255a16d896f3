package picker

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/xgb"
	xp "github.com/BurntSushi/xgb/xproto"
)

// Escape is the symbol that cancels a pick.
const Escape rune = 0x1b

// Keymap maps raw keycodes to mnemonic symbols. Codes that are not in the map
// are ignored by the picker.
type Keymap map[xp.Keycode]rune

// evdevRows is the alphanumeric block of a US keyboard driven by the evdev
// (or libinput) X driver.
var evdevRows = []struct {
	first xp.Keycode
	keys  string
}{
	{10, "1234567890"},
	{24, "qwertyuiop"},
	{38, "asdfghjkl"},
	{52, "zxcvbnm"},
}

const evdevEscape xp.Keycode = 9

// EvdevKeymap returns the static keycode table for a US keyboard.
func EvdevKeymap() Keymap {
	m := Keymap{evdevEscape: Escape}
	for _, row := range evdevRows {
		for i, r := range row.keys {
			m[row.first+xp.Keycode(i)] = r
		}
	}
	return m
}

// LoadKeymap builds a Keymap from the server's current keyboard mapping,
// using each keycode's unshifted keysym.
func LoadKeymap(c *xgb.Conn) (Keymap, error) {
	const (
		keyLo = 8
		keyHi = 255
	)
	km, err := xp.GetKeyboardMapping(c, keyLo, keyHi-keyLo+1).Reply()
	if err != nil {
		return nil, err
	}
	n := int(km.KeysymsPerKeycode)
	if n < 1 {
		return nil, fmt.Errorf("too few keysyms per keycode: %d", n)
	}
	return keymapFromKeysyms(keyLo, n, km.Keysyms), nil
}

func keymapFromKeysyms(first xp.Keycode, perKeycode int, keysyms []xp.Keysym) Keymap {
	m := Keymap{}
	seen := map[rune]bool{}
	for i := 0; i*perKeycode < len(keysyms); i++ {
		r, ok := keysymRune(keysyms[i*perKeycode])
		if !ok || seen[r] {
			continue
		}
		seen[r] = true
		m[first+xp.Keycode(i)] = r
	}
	return m
}

// Lookup resolves a keycode. ok is false for codes the picker ignores.
func (m Keymap) Lookup(code xp.Keycode) (r rune, ok bool) {
	r, ok = m[code]
	return r, ok
}

// Keycode returns the lowest keycode producing r.
func (m Keymap) Keycode(r rune) (xp.Keycode, bool) {
	found, best := false, xp.Keycode(0)
	for code, s := range m {
		if s == r && (!found || code < best) {
			found, best = true, code
		}
	}
	return best, found
}

// Check returns an error naming the symbols of alphabet that no key
// produces. Windows assigned those symbols could never be chosen.
func (m Keymap) Check(alphabet string) error {
	have := map[rune]bool{}
	for _, r := range m {
		have[r] = true
	}
	var missing []string
	for _, r := range alphabet {
		if !have[r] {
			missing = append(missing, string(r))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("no key produces %q", missing)
}
