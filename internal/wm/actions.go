package wm

import (
	"errors"
	"fmt"
	"log"
	"slices"

	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/nigeltao/taopick/internal/picker"
	"github.com/nigeltao/taopick/internal/wsnav"
)

// Chooser runs one pick over candidate windows.
type Chooser interface {
	Pick(candidates []xp.Window) picker.Outcome
}

// Candidates lists the clients of every focused workspace, workspace by
// workspace.
func Candidates(c Core) ([]xp.Window, error) {
	idxs, err := c.FocusedWorkspaces()
	if err != nil {
		return nil, err
	}
	var ws []xp.Window
	for _, i := range idxs {
		k, err := c.Workspace(Index(i))
		if errors.Is(err, ErrNoWorkspace) {
			continue
		} else if err != nil {
			return nil, err
		}
		ws = append(ws, k.Clients...)
	}
	return ws, nil
}

// QuickFocus lets the user pick one of the visible windows and focuses it.
// Unless a window was picked and focused, the previously focused window gets
// the focus back.
func QuickFocus(c Core, p Chooser) (picker.Outcome, error) {
	prev, hadPrev, err := c.FocusedClientID()
	if err != nil {
		log.Printf("quick focus: %v", err)
		hadPrev = false
	}
	cands, err := Candidates(c)
	if err != nil {
		return picker.Outcome{}, fmt.Errorf("listing candidates: %w", err)
	}

	out := p.Pick(cands)
	switch out.Kind {
	case picker.Resolved:
		err := c.FocusClient(WinID(out.Window))
		if err == nil {
			return out, nil
		}
		log.Printf("quick focus: focusing 0x%08x: %v", out.Window, err)
	case picker.Unavailable:
		log.Printf("quick focus: %v", out.Reason)
	}
	if !hadPrev {
		return out, nil
	}
	return out, c.FocusClient(WinID(prev))
}

// CycleWorkspace activates the next workspace in direction d that is not
// already shown on another output.
func CycleWorkspace(c Core, d wsnav.Direction) error {
	all, err := c.AllWorkspaces(All())
	if err != nil {
		return err
	}
	active, err := c.ActiveWorkspace()
	if err != nil {
		return err
	}
	visible, err := c.FocusedWorkspaces()
	if err != nil {
		return err
	}

	elsewhere := map[int]bool{}
	for _, i := range visible {
		if i != active.Index {
			elsewhere[i] = true
		}
	}
	ids, pos := make([]int, len(all)), -1
	for j, k := range all {
		ids[j] = k.Index
		if k.Index == active.Index {
			pos = j
		}
	}
	if pos < 0 {
		return fmt.Errorf("%w: active workspace %d is not listed", ErrNoWorkspace, active.Index)
	}

	next := wsnav.Next(ids, pos, elsewhere, d)
	if next == pos {
		return nil
	}
	return c.FocusWorkspace(Index(ids[next]))
}

// CycleScreen activates the workspace on the next output in direction d.
func CycleScreen(c Core, d wsnav.Direction) error {
	visible, err := c.FocusedWorkspaces()
	if err != nil {
		return err
	}
	active, err := c.ActiveWorkspace()
	if err != nil {
		return err
	}
	i := slices.Index(visible, active.Index)
	if i < 0 || len(visible) < 2 {
		return nil
	}
	return c.FocusWorkspace(Index(visible[wsnav.Step(i, len(visible), d)]))
}
