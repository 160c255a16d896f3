package picker

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

// Grabber takes and gives back exclusive keyboard input.
type Grabber interface {
	// GrabKeyboard asks for the keyboard. It reports false, with a nil
	// error, when the server denied the grab, for example because another
	// client holds it.
	GrabKeyboard() (bool, error)
	UngrabKeyboard() error
	// FocusPointerRoot moves input focus away from every client window.
	FocusPointerRoot() error
}

// Renderer draws label overlays.
type Renderer interface {
	ShowLabel(anchor xp.Window, glyph string) (*Label, error)
	PaintLabel(l *Label) error
	HideLabel(l *Label) error
}

// Display is one connection to the display server, owned by a single pick.
type Display interface {
	Grabber
	Renderer
	// NextEvent blocks for the next event. It returns io.EOF once the
	// connection is closed.
	NextEvent() (Event, error)
	Close()
}

// Label is an overlay window showing one mnemonic on top of its anchor.
type Label struct {
	Win    xp.Window
	Anchor xp.Window
	Glyph  string

	gc xp.Gcontext
}

type EventKind int

const (
	OtherEvent EventKind = iota
	KeyPressEvent
	KeyReleaseEvent
	ExposeEvent
	MappingNotifyEvent
	ErrorEvent
)

var eventKindNames = [...]string{
	OtherEvent:         "Other",
	KeyPressEvent:      "KeyPress",
	KeyReleaseEvent:    "KeyRelease",
	ExposeEvent:        "Expose",
	MappingNotifyEvent: "MappingNotify",
	ErrorEvent:         "Error",
}

func (k EventKind) String() string {
	if 0 <= k && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "Unknown"
}

// Event is the subset of protocol events the picker reacts to.
type Event struct {
	Kind    EventKind
	Keycode xp.Keycode // KeyPressEvent, KeyReleaseEvent.
	Window  xp.Window  // The event window.
	Err     error      // ErrorEvent.
}
