package picker

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/BurntSushi/xgb"
	xp "github.com/BurntSushi/xgb/xproto"
)

const (
	// DefaultFont is a fixed width core X font, 9 pixels wide.
	DefaultFont = "-*-fixed-medium-*-*-*-18-*-*-*-*-*-*-*"

	// labelXxx are the label metrics for DefaultFont. labelBaseline is
	// the vertical offset for the glyph.
	labelGlyphWidth = 9
	labelPadding    = 6
	labelHeight     = 18
	labelTextX      = 4
	labelBaseline   = 14
)

// Style is the look of the labels.
type Style struct {
	Font       string
	Foreground uint32
	Background uint32
}

// DefaultStyle is pink glyphs on black.
var DefaultStyle = Style{
	Font:       DefaultFont,
	Foreground: 0xff2cc4,
	Background: 0x000000,
}

// XDisplay is a Display backed by its own X connection.
type XDisplay struct {
	conn  *xgb.Conn
	root  xp.Window
	style Style
}

// DialX opens a new X connection to $DISPLAY.
func DialX(style Style) (*XDisplay, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	setup := xp.Setup(conn)
	if conn.DefaultScreen >= len(setup.Roots) {
		conn.Close()
		return nil, fmt.Errorf("X setup has no screen %d", conn.DefaultScreen)
	}
	if style.Font == "" {
		style.Font = DefaultFont
	}
	return &XDisplay{
		conn:  conn,
		root:  setup.Roots[conn.DefaultScreen].Root,
		style: style,
	}, nil
}

// XDialer returns a dial function suitable for Picker.Dial.
func XDialer(style Style) func() (Display, error) {
	return func() (Display, error) {
		d, err := DialX(style)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

func (d *XDisplay) GrabKeyboard() (bool, error) {
	r, err := xp.GrabKeyboard(d.conn, true, d.root, xp.TimeCurrentTime,
		xp.GrabModeAsync, xp.GrabModeAsync).Reply()
	if err != nil {
		return false, err
	}
	return r.Status == xp.GrabStatusSuccess, nil
}

func (d *XDisplay) UngrabKeyboard() error {
	return xp.UngrabKeyboardChecked(d.conn, xp.TimeCurrentTime).Check()
}

func (d *XDisplay) FocusPointerRoot() error {
	return xp.SetInputFocusChecked(d.conn, xp.InputFocusPointerRoot, d.root,
		xp.TimeCurrentTime).Check()
}

// ShowLabel creates and maps a label window as a child of anchor, so that it
// sits at the anchor's origin.
func (d *XDisplay) ShowLabel(anchor xp.Window, glyph string) (*Label, error) {
	font, err := xp.NewFontId(d.conn)
	if err != nil {
		return nil, err
	}
	name := d.style.Font
	if err := xp.OpenFontChecked(d.conn, font, uint16(len(name)), name).Check(); err != nil {
		return nil, fmt.Errorf("open font %q: %w", name, err)
	}
	defer xp.CloseFont(d.conn, font)

	win, err := xp.NewWindowId(d.conn)
	if err != nil {
		return nil, err
	}
	if err := xp.CreateWindowChecked(
		d.conn, 0, win, anchor,
		0, 0, uint16(len(glyph)*labelGlyphWidth+labelPadding), labelHeight, 0,
		xp.WindowClassCopyFromParent,
		0,
		xp.CwBackPixel|xp.CwEventMask,
		[]uint32{
			d.style.Background,
			xp.EventMaskExposure,
		},
	).Check(); err != nil {
		return nil, err
	}
	l := &Label{Win: win, Anchor: anchor, Glyph: glyph}

	gc, err := xp.NewGcontextId(d.conn)
	if err != nil {
		d.destroy(l)
		return nil, err
	}
	if err := xp.CreateGCChecked(
		d.conn,
		gc,
		xp.Drawable(win),
		xp.GcForeground|xp.GcBackground|xp.GcFont,
		[]uint32{
			d.style.Foreground,
			d.style.Background,
			uint32(font),
		},
	).Check(); err != nil {
		d.destroy(l)
		return nil, err
	}
	l.gc = gc

	if err := xp.MapWindowChecked(d.conn, win).Check(); err != nil {
		d.destroy(l)
		return nil, err
	}
	if err := d.PaintLabel(l); err != nil {
		// The first Expose repaints it.
		log.Printf("picker: painting label %q: %v", glyph, err)
	}
	return l, nil
}

func (d *XDisplay) PaintLabel(l *Label) error {
	if l.gc == 0 {
		return errors.New("label has no graphics context")
	}
	return xp.ImageText8Checked(d.conn, byte(len(l.Glyph)), xp.Drawable(l.Win), l.gc,
		labelTextX, labelBaseline, l.Glyph).Check()
}

func (d *XDisplay) HideLabel(l *Label) error {
	return d.destroy(l)
}

func (d *XDisplay) destroy(l *Label) error {
	if l.gc != 0 {
		xp.FreeGC(d.conn, l.gc)
		l.gc = 0
	}
	return xp.DestroyWindowChecked(d.conn, l.Win).Check()
}

func (d *XDisplay) NextEvent() (Event, error) {
	e, xerr := d.conn.WaitForEvent()
	if e == nil && xerr == nil {
		return Event{}, io.EOF
	}
	if xerr != nil {
		return Event{Kind: ErrorEvent, Err: xerr}, nil
	}
	switch e := e.(type) {
	case xp.KeyPressEvent:
		return Event{Kind: KeyPressEvent, Keycode: e.Detail, Window: e.Event}, nil
	case xp.KeyReleaseEvent:
		return Event{Kind: KeyReleaseEvent, Keycode: e.Detail, Window: e.Event}, nil
	case xp.ExposeEvent:
		if e.Count != 0 {
			// More Expose events for this window follow.
			return Event{Kind: OtherEvent, Window: e.Window}, nil
		}
		return Event{Kind: ExposeEvent, Window: e.Window}, nil
	case xp.MappingNotifyEvent:
		return Event{Kind: MappingNotifyEvent}, nil
	}
	return Event{Kind: OtherEvent}, nil
}

// Close closes the connection. The server then drops any grab and windows
// the connection still holds.
func (d *XDisplay) Close() {
	d.conn.Close()
}
