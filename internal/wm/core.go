// Package wm is the boundary between the pickers and the window manager that
// owns the windows and workspaces.
package wm

import (
	"errors"

	xp "github.com/BurntSushi/xgb/xproto"
)

var (
	ErrNoWorkspace = errors.New("no such workspace")
	ErrNoClient    = errors.New("no such client")
)

// Workspace is a snapshot of one of the window manager's workspaces.
type Workspace struct {
	Index   int
	Name    string
	Clients []xp.Window
}

// Has reports whether w is one of k's clients.
func (k *Workspace) Has(w xp.Window) bool {
	for _, c := range k.Clients {
		if c == w {
			return true
		}
	}
	return false
}

// Core is what the window manager provides.
type Core interface {
	// FocusedWorkspaces returns the indexes of the workspaces shown on an
	// output, in output order.
	FocusedWorkspaces() ([]int, error)
	// Workspace returns the first workspace matching s, or ErrNoWorkspace.
	Workspace(s Selector) (*Workspace, error)
	// AllWorkspaces returns every workspace matching s, in order.
	AllWorkspaces(s Selector) ([]*Workspace, error)
	ActiveWorkspace() (*Workspace, error)
	FocusWorkspace(s Selector) error
	FocusClient(s Selector) error
	// FocusedClientID returns the focused client, if there is one.
	FocusedClientID() (xp.Window, bool, error)
}
