package wm

import (
	"fmt"

	xp "github.com/BurntSushi/xgb/xproto"
)

type selectorKind int

const (
	byFocused selectorKind = iota
	byIndex
	byWinID
	byName
	byCondition
)

// Selector picks workspaces, or clients, out of the window manager's state.
type Selector struct {
	kind  selectorKind
	index int
	win   xp.Window
	name  string
	cond  func(*Workspace) bool
}

// Focused selects the active workspace, or the focused client.
func Focused() Selector { return Selector{kind: byFocused} }

// Index selects the i'th workspace, or the i'th client of the active
// workspace.
func Index(i int) Selector { return Selector{kind: byIndex, index: i} }

// WinID selects the client w, or the workspace holding it.
func WinID(w xp.Window) Selector { return Selector{kind: byWinID, win: w} }

// Name selects a workspace by name.
func Name(name string) Selector { return Selector{kind: byName, name: name} }

// Condition selects the workspaces for which f returns true.
func Condition(f func(*Workspace) bool) Selector { return Selector{kind: byCondition, cond: f} }

// All selects every workspace.
func All() Selector { return Condition(func(*Workspace) bool { return true }) }

func (s Selector) String() string {
	switch s.kind {
	case byFocused:
		return "focused"
	case byIndex:
		return fmt.Sprintf("index %d", s.index)
	case byWinID:
		return fmt.Sprintf("window 0x%08x", s.win)
	case byName:
		return fmt.Sprintf("name %q", s.name)
	}
	return "condition"
}

func (s Selector) matches(k *Workspace, active int) bool {
	switch s.kind {
	case byFocused:
		return k.Index == active
	case byIndex:
		return k.Index == s.index
	case byWinID:
		return k.Has(s.win)
	case byName:
		return k.Name == s.name
	case byCondition:
		return s.cond != nil && s.cond(k)
	}
	return false
}

// Select returns the workspaces of ks matching s. active is the index of the
// active workspace.
func Select(ks []*Workspace, active int, s Selector) []*Workspace {
	var ret []*Workspace
	for _, k := range ks {
		if s.matches(k, active) {
			ret = append(ret, k)
		}
	}
	return ret
}

// SelectOne is like Select but returns only the first match.
func SelectOne(ks []*Workspace, active int, s Selector) (*Workspace, error) {
	for _, k := range ks {
		if s.matches(k, active) {
			return k, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNoWorkspace, s)
}

// SelectClient resolves s to a client of the active workspace k. focused is
// the focused client, or zero.
func SelectClient(k *Workspace, focused xp.Window, s Selector) (xp.Window, error) {
	switch s.kind {
	case byWinID:
		if s.win != 0 {
			return s.win, nil
		}
	case byFocused:
		if focused != 0 {
			return focused, nil
		}
	case byIndex:
		if k != nil && 0 <= s.index && s.index < len(k.Clients) {
			return k.Clients[s.index], nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrNoClient, s)
}
