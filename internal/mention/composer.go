package mention

import (
	"sort"
	"strings"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
)

// State is the composing state of the mention editor.
type State int

const (
	// Idle means no mention is being typed at the caret.
	Idle State = iota
	// Composing means the caret sits inside an unterminated @token and a
	// candidate dropdown is active.
	Composing
)

func (s State) String() string {
	if s == Composing {
		return "composing"
	}
	return "idle"
}

// Key identifies an input event fed to the Composer.
type Key int

const (
	KeyRune Key = iota
	KeyBackspace
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeyTab
	KeyEscape
	KeyClickOutside
)

// Event is one keystroke or pointer action. Rune is only meaningful for
// KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

// Composer is the live-typing state machine behind the mention editor.
// It owns a draft text and caret, transitions between Idle and Composing
// as the user types, and commits the highlighted candidate on Enter/Tab.
// Single-threaded by design: one instance per editing surface.
type Composer struct {
	reg       *catalog.Registry
	connected map[string]bool
	onCommit  func(name string)

	text      []rune
	caret     int
	state     State
	tokenAt   int // index of the '@' of the active token, valid while Composing
	filter    string
	highlight int
}

// NewComposer builds a composer over the registry. Names in connected are
// excluded from the candidate list; onCommit fires once per committed
// mention and may be nil.
func NewComposer(reg *catalog.Registry, connected []string, onCommit func(string)) *Composer {
	c := &Composer{
		reg:       reg,
		connected: make(map[string]bool, len(connected)),
		onCommit:  onCommit,
	}
	for _, name := range connected {
		c.connected[name] = true
	}
	return c
}

// SetText replaces the draft and caret, rederiving the composing state
// from the caret context.
func (c *Composer) SetText(text string, caret int) {
	c.text = []rune(text)
	if caret < 0 {
		caret = 0
	}
	if caret > len(c.text) {
		caret = len(c.text)
	}
	c.caret = caret
	c.derive()
}

// Text returns the current draft.
func (c *Composer) Text() string { return string(c.text) }

// Caret returns the current caret position in runes.
func (c *Composer) Caret() int { return c.caret }

// State returns the current composing state.
func (c *Composer) State() State { return c.state }

// Filter returns the token typed so far, without the '@'.
func (c *Composer) Filter() string { return c.filter }

// Highlight returns the index of the highlighted candidate.
func (c *Composer) Highlight() int { return c.highlight }

// Feed applies one input event.
func (c *Composer) Feed(ev Event) {
	switch ev.Key {
	case KeyRune:
		c.insert(ev.Rune)
		c.derive()

	case KeyBackspace:
		if c.caret > 0 {
			c.text = append(c.text[:c.caret-1], c.text[c.caret:]...)
			c.caret--
		}
		c.derive()

	case KeyArrowUp:
		if c.state == Composing {
			c.move(-1)
		}

	case KeyArrowDown:
		if c.state == Composing {
			c.move(1)
		}

	case KeyEnter, KeyTab:
		if c.state == Composing {
			c.commit()
		}

	case KeyEscape, KeyClickOutside:
		c.state = Idle
		c.highlight = 0
	}
}

// Candidates returns the integrations matching the typed filter, minus
// already-connected ones, sorted by name. Empty outside Composing.
func (c *Composer) Candidates() []catalog.Integration {
	if c.state != Composing {
		return nil
	}
	needle := strings.ToLower(c.filter)
	var out []catalog.Integration
	for _, integ := range c.reg.All() {
		if c.connected[integ.Name] {
			continue
		}
		if needle == "" || strings.Contains(strings.ToLower(integ.Name), needle) {
			out = append(out, integ)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Highlighted returns the currently highlighted candidate, if any.
func (c *Composer) Highlighted() (catalog.Integration, bool) {
	cands := c.Candidates()
	if len(cands) == 0 {
		return catalog.Integration{}, false
	}
	if c.highlight >= len(cands) {
		return cands[len(cands)-1], true
	}
	return cands[c.highlight], true
}

func (c *Composer) insert(r rune) {
	rest := make([]rune, len(c.text[c.caret:]))
	copy(rest, c.text[c.caret:])
	c.text = append(append(c.text[:c.caret], r), rest...)
	c.caret++
}

// derive recomputes the state from the text before the caret: Composing
// when it ends in an '@' run of word runes with the '@' at a token start.
func (c *Composer) derive() {
	prevFilter := c.filter
	i := c.caret - 1
	for i >= 0 && isWordRune(c.text[i]) {
		i--
	}
	if i >= 0 && c.text[i] == '@' && atTokenStart(c.text, i) {
		c.state = Composing
		c.tokenAt = i
		c.filter = string(c.text[i+1 : c.caret])
		if c.filter != prevFilter {
			c.highlight = 0
		}
		return
	}
	c.state = Idle
	c.filter = ""
	c.highlight = 0
}

func (c *Composer) move(delta int) {
	n := len(c.Candidates())
	if n == 0 {
		return
	}
	c.highlight = (c.highlight + delta + n) % n
}

// commit replaces the typed @token with the styled fragment of the
// highlighted candidate and returns to Idle.
func (c *Composer) commit() {
	integ, ok := c.Highlighted()
	if !ok {
		c.state = Idle
		return
	}

	fragment := []rune(Fragment(integ) + " ")
	rest := make([]rune, len(c.text[c.caret:]))
	copy(rest, c.text[c.caret:])

	c.text = append(append(c.text[:c.tokenAt], fragment...), rest...)
	c.caret = c.tokenAt + len(fragment)
	c.state = Idle
	c.filter = ""
	c.highlight = 0

	// A committed integration counts as connected from here on, so the
	// next mention in the same draft no longer offers it.
	c.connected[integ.Name] = true

	if c.onCommit != nil {
		c.onCommit(integ.Name)
	}
}
