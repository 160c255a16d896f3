// Package picker implements a modal quick-focus picker: every candidate window
// gets a one-key label, the keyboard is grabbed, and a single keypress picks
// the window to focus.
package picker

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/nigeltao/taopick/internal/logging"
)

// DefaultAlphabet is popped from the end, so that the first candidates get
// home row keys and digits are used last.
const DefaultAlphabet = "0987654321nbmvcxzytpoiurewqhglkjfdsa"

var (
	ErrUnavailable    = errors.New("picker unavailable")
	ErrNoCandidates   = errors.New("no candidate windows")
	ErrNoLabels       = errors.New("no label could be shown")
	ErrMappingChanged = errors.New("keyboard mapping changed")
)

type OutcomeKind int

const (
	Cancelled OutcomeKind = iota
	Resolved
	Unavailable
)

func (k OutcomeKind) String() string {
	switch k {
	case Cancelled:
		return "cancelled"
	case Resolved:
		return "resolved"
	case Unavailable:
		return "unavailable"
	}
	return "unknown"
}

// Outcome is the result of one pick. Window is only set when Kind is
// Resolved. Reason may explain a Cancelled or Unavailable outcome.
type Outcome struct {
	Kind   OutcomeKind
	Window xp.Window
	Reason error
}

func unavailable(err error) Outcome {
	if !errors.Is(err, ErrUnavailable) {
		err = fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return Outcome{Kind: Unavailable, Reason: err}
}

// Assignment pairs a mnemonic with a candidate window.
type Assignment struct {
	Symbol rune
	Window xp.Window
}

// Assign pops symbols off the end of alphabet, one per candidate in order.
// Repeated symbols are skipped. Candidates left over once the alphabet runs
// out get nothing.
func Assign(candidates []xp.Window, alphabet string) []Assignment {
	symbols := []rune(alphabet)
	used := make(map[rune]bool, len(symbols))
	as := make([]Assignment, 0, min(len(candidates), len(symbols)))
	i := len(symbols) - 1
	for _, w := range candidates {
		for i >= 0 && used[symbols[i]] {
			i--
		}
		if i < 0 {
			break
		}
		used[symbols[i]] = true
		as = append(as, Assignment{Symbol: symbols[i], Window: w})
		i--
	}
	return as
}

// Picker runs picks. Every field but Dial may be left zero.
type Picker struct {
	// Dial opens a fresh Display for each pick.
	Dial func() (Display, error)
	// Keys resolves keycodes to symbols. Nil means EvdevKeymap.
	Keys     Keymap
	Alphabet string

	GrabAttempts int
	GrabInterval time.Duration
}

func (p *Picker) alphabet() string {
	if p.Alphabet == "" {
		return DefaultAlphabet
	}
	return p.Alphabet
}

func (p *Picker) keys() Keymap {
	if p.Keys == nil {
		return EvdevKeymap()
	}
	return p.Keys
}

func (p *Picker) grabPolicy() (int, time.Duration) {
	attempts, interval := p.GrabAttempts, p.GrabInterval
	if attempts <= 0 {
		attempts = DefaultGrabAttempts
	}
	if interval <= 0 {
		interval = DefaultGrabInterval
	}
	return attempts, interval
}

// Pick labels the candidates and blocks until the user picks one, cancels,
// or the display goes away. It never leaves a grab or label behind.
func (p *Picker) Pick(candidates []xp.Window) (out Outcome) {
	if len(candidates) == 0 {
		return unavailable(ErrNoCandidates)
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("picker: recovered from %v", r)
			out = unavailable(fmt.Errorf("panic: %v", r))
		}
	}()

	d, err := p.Dial()
	if err != nil {
		return unavailable(fmt.Errorf("dial: %w", err))
	}
	defer d.Close()

	attempts, interval := p.grabPolicy()
	g, err := Acquire(d, attempts, interval)
	if err != nil {
		return unavailable(err)
	}
	defer func() {
		if err := g.Release(); err != nil {
			log.Printf("picker: %v", err)
		}
	}()

	s := &session{
		d:       d,
		keys:    p.keys(),
		byWin:   map[xp.Window]*Label{},
		choices: map[rune]xp.Window{},
	}
	defer s.teardown()

	as := Assign(candidates, p.alphabet())
	if skipped := len(candidates) - len(as); skipped > 0 {
		// TODO: tell the user, not just the log, that some windows were
		// left without a label.
		log.Printf("picker: alphabet exhausted, %d of %d windows unlabelled",
			skipped, len(candidates))
	}
	s.label(as)
	if len(s.labels) == 0 {
		return unavailable(ErrNoLabels)
	}
	return s.wait()
}

type phase int

const (
	phaseSetup phase = iota
	phaseWaiting
	phaseTearingDown
	phaseDone
)

// session is the state of one pick. Labels in it are only valid until
// teardown.
type session struct {
	d       Display
	keys    Keymap
	phase   phase
	labels  []*Label
	byWin   map[xp.Window]*Label
	choices map[rune]xp.Window
}

func (s *session) label(as []Assignment) {
	for _, a := range as {
		l, err := s.d.ShowLabel(a.Window, string(a.Symbol))
		if err != nil {
			log.Printf("picker: no label for window 0x%08x: %v", a.Window, err)
			continue
		}
		s.labels = append(s.labels, l)
		s.byWin[l.Win] = l
		s.choices[a.Symbol] = a.Window
	}
}

func (s *session) wait() Outcome {
	s.phase = phaseWaiting
	for {
		e, err := s.d.NextEvent()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("picker: reading events: %v", err)
			}
			return Outcome{Kind: Cancelled, Reason: err}
		}
		switch e.Kind {
		case KeyPressEvent:
			r, ok := s.keys.Lookup(e.Keycode)
			if !ok {
				logging.Debugf("picker: ignoring keycode %d", e.Keycode)
				continue
			}
			if r == Escape {
				return Outcome{Kind: Cancelled}
			}
			if w, ok := s.choices[r]; ok {
				return Outcome{Kind: Resolved, Window: w}
			}
			logging.Debugf("picker: %q is not assigned", r)
		case ExposeEvent:
			if l := s.byWin[e.Window]; l != nil {
				if err := s.d.PaintLabel(l); err != nil {
					log.Printf("picker: repainting label %q: %v", l.Glyph, err)
				}
			}
		case MappingNotifyEvent:
			log.Println("picker: keyboard mapping changed, cancelling")
			return Outcome{Kind: Cancelled, Reason: ErrMappingChanged}
		case ErrorEvent:
			log.Printf("picker: %v", e.Err)
		default:
			logging.Debugf("picker: ignoring %v event", e.Kind)
		}
	}
}

func (s *session) teardown() {
	s.phase = phaseTearingDown
	for _, l := range s.labels {
		if err := s.d.HideLabel(l); err != nil {
			log.Printf("picker: hiding label %q: %v", l.Glyph, err)
		}
	}
	s.labels, s.byWin, s.choices = nil, nil, nil
	s.phase = phaseDone
}
