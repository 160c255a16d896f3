package picker

import (
	"fmt"
	"log"
	"time"
)

const (
	// DefaultGrabAttempts and DefaultGrabInterval bound how long to wait
	// for another client to let go of the keyboard: half a second.
	DefaultGrabAttempts = 50
	DefaultGrabInterval = 10 * time.Millisecond
)

// sleep is replaced in tests.
var sleep = time.Sleep

// Grab is exclusive ownership of the keyboard.
type Grab struct {
	g        Grabber
	attempts int
	interval time.Duration
	released bool

	// Tries is the number of grab requests it took to be granted.
	Tries int
}

// Acquire grabs the keyboard, retrying up to attempts times with interval
// between tries. On success, input focus is also moved to the pointer root so
// that no client window sees keystrokes while the grab is held. The returned
// error wraps ErrUnavailable.
func Acquire(g Grabber, attempts int, interval time.Duration) (*Grab, error) {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 1; i <= attempts; i++ {
		ok, err := g.GrabKeyboard()
		if err == nil && ok {
			if err := g.FocusPointerRoot(); err != nil {
				log.Printf("picker: could not move focus to pointer root: %v", err)
			}
			return &Grab{
				g:        g,
				attempts: attempts,
				interval: interval,
				Tries:    i,
			}, nil
		}
		lastErr = err
		if i < attempts {
			sleep(interval)
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: keyboard grab failed after %d attempts: %v",
			ErrUnavailable, attempts, lastErr)
	}
	return nil, fmt.Errorf("%w: keyboard grab denied %d times", ErrUnavailable, attempts)
}

// Release ungrabs the keyboard with the same retry policy as Acquire. It is
// a no-op once a release has succeeded. If every attempt fails the keyboard
// may stay grabbed until the connection closes.
func (g *Grab) Release() error {
	if g.released {
		return nil
	}
	var err error
	for i := 1; i <= g.attempts; i++ {
		if err = g.g.UngrabKeyboard(); err == nil {
			g.released = true
			return nil
		}
		if i < g.attempts {
			sleep(g.interval)
		}
	}
	return fmt.Errorf("keyboard ungrab failed after %d attempts: %w", g.attempts, err)
}

// Released reports whether the keyboard has been given back.
func (g *Grab) Released() bool {
	return g.released
}
