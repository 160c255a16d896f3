package main

import (
	"fmt"
	"log"

	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/nigeltao/taopick/internal/config"
	"github.com/nigeltao/taopick/internal/logging"
	"github.com/nigeltao/taopick/internal/picker"
	"github.com/nigeltao/taopick/internal/wm"
	"github.com/nigeltao/taopick/internal/wsnav"
)

func newPicker() (*picker.Picker, error) {
	p := &picker.Picker{
		Dial:         picker.XDialer(cfg.Style()),
		Alphabet:     cfg.Picker.Alphabet,
		GrabAttempts: cfg.Picker.GrabAttempts,
		GrabInterval: cfg.Picker.GrabInterval,
	}
	if cfg.Picker.Keymap == config.KeymapServer {
		keys, err := picker.LoadKeymap(xu.Conn())
		if err != nil {
			return nil, fmt.Errorf("loading keyboard mapping: %w", err)
		}
		if err := keys.Check(p.Alphabet); err != nil {
			log.Printf("picker.alphabet: %v", err)
		}
		p.Keys = keys
	}
	return p, nil
}

func doQuickFocus(c wm.Core, _ interface{}) error {
	p, err := newPicker()
	if err != nil {
		return err
	}
	// The hotkey's passive grab is now active on our connection. Drop it so
	// that the picker's connection can grab the keyboard.
	xp.UngrabKeyboard(xu.Conn(), xp.TimeCurrentTime)

	out, err := wm.QuickFocus(c, p)
	if out.Kind == picker.Resolved {
		logging.Debugf("quick focus: picked 0x%08x %q", out.Window, core.WindowName(out.Window))
	} else {
		logging.Debugf("quick focus: %v", out.Kind)
	}
	return err
}

func doWorkspace(c wm.Core, t1 interface{}) error {
	t, ok := t1.(wsnav.Direction)
	if !ok {
		return fmt.Errorf("workspace: bad direction %v", t1)
	}
	return wm.CycleWorkspace(c, t)
}

func doScreen(c wm.Core, t1 interface{}) error {
	t, ok := t1.(wsnav.Direction)
	if !ok {
		return fmt.Errorf("screen: bad direction %v", t1)
	}
	return wm.CycleScreen(c, screenDirection(t, cfg.ScreenDirection()))
}

// screenDirection turns "next" (Forward) or "prev" (Backward) into a walk
// over the outputs, given which way the outputs are laid out.
func screenDirection(t, layout wsnav.Direction) wsnav.Direction {
	if t == wsnav.Forward {
		return layout
	}
	return layout.Reverse()
}
