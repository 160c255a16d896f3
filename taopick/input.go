package main

import (
	"log"

	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/nigeltao/taopick/internal/logging"
)

func handleKeyPress(name string, a action, e xevent.KeyPressEvent) {
	logging.Debugf("key press: keycode %d state 0x%04x runs %s", e.Detail, e.State, name)
	if err := a.do(core, a.arg); err != nil {
		log.Printf("%s: %v", name, err)
	}
}
