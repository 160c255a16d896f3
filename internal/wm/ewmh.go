package wm

import (
	"fmt"
	"log"
	"strconv"

	xinext "github.com/BurntSushi/xgb/xinerama"
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xinerama"
	"github.com/BurntSushi/xgbutil/xrect"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/nigeltao/taopick/internal/logging"
)

// EWMH is a Core backed by a running EWMH compliant window manager. Each
// desktop is a workspace. A desktop is focused if one of its clients is
// viewable, or if it is the current desktop.
type EWMH struct {
	xu       *xgbutil.XUtil
	xinerama bool
}

// NewEWMH returns a Core talking to the window manager over xu.
func NewEWMH(xu *xgbutil.XUtil) *EWMH {
	e := &EWMH{xu: xu}
	if err := xinext.Init(xu.Conn()); err != nil {
		log.Printf("xinerama unavailable, assuming one output: %v", err)
	} else {
		e.xinerama = true
	}
	return e
}

func (e *EWMH) workspaces() (ks []*Workspace, active int, err error) {
	n, err := ewmh.NumberOfDesktopsGet(e.xu)
	if err != nil {
		return nil, 0, fmt.Errorf("number of desktops: %w", err)
	}
	cur, err := ewmh.CurrentDesktopGet(e.xu)
	if err != nil {
		return nil, 0, fmt.Errorf("current desktop: %w", err)
	}
	names, err := ewmh.DesktopNamesGet(e.xu)
	if err != nil {
		logging.Debugf("desktop names: %v", err)
	}
	ks = make([]*Workspace, n)
	for i := range ks {
		ks[i] = &Workspace{Index: i, Name: strconv.Itoa(i + 1)}
		if i < len(names) && names[i] != "" {
			ks[i].Name = names[i]
		}
	}

	clients, err := ewmh.ClientListGet(e.xu)
	if err != nil {
		return nil, 0, fmt.Errorf("client list: %w", err)
	}
	for _, w := range clients {
		d, err := ewmh.WmDesktopGet(e.xu, w)
		if err != nil || d >= uint(len(ks)) {
			// Sticky windows, on every desktop, have d == 0xFFFFFFFF.
			continue
		}
		if e.hidden(w) {
			continue
		}
		ks[d].Clients = append(ks[d].Clients, w)
	}
	return ks, int(cur), nil
}

func (e *EWMH) hidden(w xp.Window) bool {
	states, err := ewmh.WmStateGet(e.xu, w)
	if err != nil {
		return false
	}
	for _, s := range states {
		if s == "_NET_WM_STATE_HIDDEN" {
			return true
		}
	}
	return false
}

func (e *EWMH) viewable(w xp.Window) bool {
	attrs, err := xp.GetWindowAttributes(e.xu.Conn(), w).Reply()
	if err != nil {
		return false
	}
	return attrs.MapState == xp.MapStateViewable
}

func (e *EWMH) heads() []xrect.Rect {
	if e.xinerama {
		if hs, err := xinerama.PhysicalHeads(e.xu); err == nil && len(hs) > 0 {
			return hs
		} else if err != nil {
			logging.Debugf("xinerama heads: %v", err)
		}
	}
	s := e.xu.Screen()
	return []xrect.Rect{xrect.New(0, 0, int(s.WidthInPixels), int(s.HeightInPixels))}
}

// onScreen is a viewable client and where it is.
type onScreen struct {
	desktop int
	rect    xrect.Rect
	active  bool
}

func (e *EWMH) FocusedWorkspaces() ([]int, error) {
	ks, cur, err := e.workspaces()
	if err != nil {
		return nil, err
	}
	active, _ := ewmh.ActiveWindowGet(e.xu)
	var clients []onScreen
	for _, k := range ks {
		for _, w := range k.Clients {
			if !e.viewable(w) {
				continue
			}
			r, err := xwindow.New(e.xu, w).DecorGeometry()
			if err != nil {
				continue
			}
			clients = append(clients, onScreen{k.Index, r, w == active})
		}
	}
	return visibleDesktops(e.heads(), cur, clients), nil
}

// visibleDesktops works out which desktop each head shows and returns them
// in head order. The head holding the active client shows the current
// desktop. Other heads show the desktop of the first client found on them.
// The current desktop is always included, on the first head left without
// one if it has no viewable client.
func visibleDesktops(heads []xrect.Rect, cur int, clients []onScreen) []int {
	shows := make([]int, len(heads))
	for i := range shows {
		shows[i] = -1
	}
	for _, c := range clients {
		if h := headOf(heads, c.rect); h >= 0 && c.active {
			shows[h] = cur
		}
	}
	for _, c := range clients {
		if h := headOf(heads, c.rect); h >= 0 && shows[h] < 0 {
			shows[h] = c.desktop
		}
	}

	hasCur := false
	for _, d := range shows {
		hasCur = hasCur || d == cur
	}
	if !hasCur {
		placed := false
		for i, d := range shows {
			if d < 0 {
				shows[i], placed = cur, true
				break
			}
		}
		if !placed {
			shows = append([]int{cur}, shows...)
		}
	}

	var ret []int
	seen := map[int]bool{}
	for _, d := range shows {
		if d >= 0 && !seen[d] {
			seen[d] = true
			ret = append(ret, d)
		}
	}
	return ret
}

// headOf returns the index of the head containing r's centre, or -1.
func headOf(heads []xrect.Rect, r xrect.Rect) int {
	x, y := r.X()+r.Width()/2, r.Y()+r.Height()/2
	for i, h := range heads {
		if h.X() <= x && x < h.X()+h.Width() && h.Y() <= y && y < h.Y()+h.Height() {
			return i
		}
	}
	return -1
}

func (e *EWMH) Workspace(s Selector) (*Workspace, error) {
	ks, cur, err := e.workspaces()
	if err != nil {
		return nil, err
	}
	return SelectOne(ks, cur, s)
}

func (e *EWMH) AllWorkspaces(s Selector) ([]*Workspace, error) {
	ks, cur, err := e.workspaces()
	if err != nil {
		return nil, err
	}
	return Select(ks, cur, s), nil
}

func (e *EWMH) ActiveWorkspace() (*Workspace, error) {
	return e.Workspace(Focused())
}

func (e *EWMH) FocusWorkspace(s Selector) error {
	k, err := e.Workspace(s)
	if err != nil {
		return err
	}
	return ewmh.CurrentDesktopReq(e.xu, k.Index)
}

func (e *EWMH) FocusClient(s Selector) error {
	var k *Workspace
	if s.kind == byIndex {
		var err error
		if k, err = e.ActiveWorkspace(); err != nil {
			return err
		}
	}
	focused, _, err := e.FocusedClientID()
	if err != nil {
		return err
	}
	w, err := SelectClient(k, focused, s)
	if err != nil {
		return err
	}
	return ewmh.ActiveWindowReq(e.xu, w)
}

func (e *EWMH) FocusedClientID() (xp.Window, bool, error) {
	w, err := ewmh.ActiveWindowGet(e.xu)
	if err != nil {
		return 0, false, err
	}
	return w, w != 0, nil
}

// WindowName returns w's title, for logging.
func (e *EWMH) WindowName(w xp.Window) string {
	if name, err := ewmh.WmNameGet(e.xu, w); err == nil && name != "" {
		return name
	}
	if name, err := icccm.WmNameGet(e.xu, w); err == nil && name != "" {
		return name
	}
	return "?"
}
