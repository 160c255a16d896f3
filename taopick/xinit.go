package main

import (
	"fmt"
	"log"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/nigeltao/taopick/internal/logging"
	"github.com/nigeltao/taopick/internal/wm"
)

func connect() error {
	var err error
	xu, err = xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("connecting to X: %w", err)
	}
	name, err := ewmh.GetEwmhWM(xu)
	if err != nil {
		return fmt.Errorf("no EWMH window manager is running: %w", err)
	}
	logging.Debugf("taopick: window manager is %s", name)
	core = wm.NewEWMH(xu)
	return nil
}

// initKeys grabs every configured key on the root window. keybind keeps the
// keycode tables current across MappingNotify events.
func initKeys() {
	keybind.Initialize(xu)
	for _, b := range cfg.Keys.Bindings() {
		if b.Key == "" {
			continue
		}
		a, ok := actions[b.Name]
		if !ok {
			log.Printf("taopick: no action for key binding %s", b.Name)
			continue
		}
		err := keybind.KeyPressFun(func(_ *xgbutil.XUtil, e xevent.KeyPressEvent) {
			handleKeyPress(b.Name, a, e)
		}).Connect(xu, xu.RootWin(), b.Key, true)
		if err != nil {
			log.Fatalf("binding %s to %q: %v", b.Name, b.Key, err)
		}
		log.Printf("taopick: %s is %s", b.Key, b.Name)
	}
}
