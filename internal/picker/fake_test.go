package picker

import (
	"errors"
	"io"
	"time"

	xp "github.com/BurntSushi/xgb/xproto"
)

// fakeDisplay records every request the picker makes.
type fakeDisplay struct {
	denials        int   // grab requests denied before one is granted
	grabErr        error // returned instead of a denial when set
	ungrabFailures int

	grabs    int
	grants   int
	ungrabs  int
	focusing int

	failAnchors map[xp.Window]bool
	nextWin     xp.Window
	shown       []*Label
	hidden      []*Label
	painted     []xp.Window

	events    []Event
	readErr   error // returned once events run out; io.EOF when nil
	readPanic bool
	closed    bool
}

func (f *fakeDisplay) GrabKeyboard() (bool, error) {
	f.grabs++
	if f.grabs <= f.denials {
		return false, f.grabErr
	}
	f.grants++
	return true, nil
}

func (f *fakeDisplay) UngrabKeyboard() error {
	f.ungrabs++
	if f.ungrabs <= f.ungrabFailures {
		return errors.New("ungrab failed")
	}
	return nil
}

func (f *fakeDisplay) FocusPointerRoot() error {
	f.focusing++
	return nil
}

func (f *fakeDisplay) ShowLabel(anchor xp.Window, glyph string) (*Label, error) {
	if f.failAnchors[anchor] {
		return nil, errors.New("font not found")
	}
	f.nextWin++
	l := &Label{Win: 0x1000 + f.nextWin, Anchor: anchor, Glyph: glyph}
	f.shown = append(f.shown, l)
	return l, nil
}

func (f *fakeDisplay) PaintLabel(l *Label) error {
	f.painted = append(f.painted, l.Win)
	return nil
}

func (f *fakeDisplay) HideLabel(l *Label) error {
	f.hidden = append(f.hidden, l)
	return nil
}

func (f *fakeDisplay) NextEvent() (Event, error) {
	if len(f.events) > 0 {
		e := f.events[0]
		f.events = f.events[1:]
		return e, nil
	}
	if f.readPanic {
		panic("connection reset")
	}
	if f.readErr != nil {
		return Event{}, f.readErr
	}
	return Event{}, io.EOF
}

func (f *fakeDisplay) Close() {
	f.closed = true
}

// labelFor returns the label shown on anchor.
func (f *fakeDisplay) labelFor(anchor xp.Window) *Label {
	for _, l := range f.shown {
		if l.Anchor == anchor {
			return l
		}
	}
	return nil
}

func (f *fakeDisplay) dial() (Display, error) {
	return f, nil
}

func newTestPicker(f *fakeDisplay) *Picker {
	return &Picker{
		Dial:         f.dial,
		Keys:         EvdevKeymap(),
		GrabAttempts: 5,
		GrabInterval: time.Millisecond,
	}
}

func keyPress(r rune) Event {
	code, ok := EvdevKeymap().Keycode(r)
	if !ok {
		panic("no keycode for " + string(r))
	}
	return Event{Kind: KeyPressEvent, Keycode: code}
}

func windows(n int) []xp.Window {
	ws := make([]xp.Window, n)
	for i := range ws {
		ws[i] = xp.Window(0x400001 + i)
	}
	return ws
}

func noSleep() func() {
	saved := sleep
	sleep = func(time.Duration) {}
	return func() { sleep = saved }
}
