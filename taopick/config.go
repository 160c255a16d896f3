package main

import (
	"github.com/nigeltao/taopick/internal/wm"
	"github.com/nigeltao/taopick/internal/wsnav"
)

// action is what a key binding does. The do function gets the window manager
// and the binding's arg.
type action struct {
	do  func(wm.Core, interface{}) error
	arg interface{}
}

// actions lists the action to be performed for each key binding. The map keys
// are the binding names under [keys] in the config file. Which key triggers
// each action is configured there too.
//
// doScreen's direction is relative to the monitor layout: with
// MONITORS_LAYOUT=left, "next" moves backward through the outputs.
var actions = map[string]action{
	"quick_focus":    {doQuickFocus, nil},
	"workspace_next": {doWorkspace, wsnav.Forward},
	"workspace_prev": {doWorkspace, wsnav.Backward},
	"screen_next":    {doScreen, wsnav.Forward},
	"screen_prev":    {doScreen, wsnav.Backward},
}
