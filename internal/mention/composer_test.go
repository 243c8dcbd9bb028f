package mention

import (
	"strings"
	"testing"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
)

func typeString(c *Composer, s string) {
	for _, r := range s {
		c.Feed(Event{Key: KeyRune, Rune: r})
	}
}

func TestComposerIdleToComposing(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "Hello ")
	if c.State() != Idle {
		t.Fatalf("state after plain text = %v, want Idle", c.State())
	}
	typeString(c, "@Git")
	if c.State() != Composing {
		t.Fatalf("state after @Git = %v, want Composing", c.State())
	}
	if c.Filter() != "Git" {
		t.Errorf("filter = %q, want %q", c.Filter(), "Git")
	}
}

func TestComposerCandidatesMatchFilter(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "@Git")

	cands := c.Candidates()
	if len(cands) != 2 {
		t.Fatalf("candidates = %d, want 2 (GitHub, GitLab)", len(cands))
	}
	if cands[0].Name != "GitHub" || cands[1].Name != "GitLab" {
		t.Errorf("candidates = %v", cands)
	}
}

func TestComposerCommitExcludesFromNextMention(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "@GitHub")
	c.Feed(Event{Key: KeyEnter})

	typeString(c, "then @Git")
	if c.State() != Composing {
		t.Fatalf("state = %v, want Composing", c.State())
	}
	for _, cand := range c.Candidates() {
		if cand.Name == "GitHub" {
			t.Error("just-committed GitHub should not be offered again")
		}
	}
}

func TestComposerExcludesConnected(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), []string{"GitHub"}, nil)
	typeString(c, "@Git")

	for _, cand := range c.Candidates() {
		if cand.Name == "GitHub" {
			t.Error("already-connected GitHub should not be a candidate")
		}
	}
}

func TestComposerCommitScenario(t *testing.T) {
	var committed []string
	c := NewComposer(catalog.NewRegistry(), nil, func(name string) {
		committed = append(committed, name)
	})

	typeString(c, "Hello @Git")
	if _, ok := c.Highlighted(); !ok {
		t.Fatal("expected a highlighted candidate")
	}
	c.Feed(Event{Key: KeyEnter})

	text := c.Text()
	if strings.Contains(text, "@Git") {
		t.Errorf("typed token should be gone: %q", text)
	}
	if n := strings.Count(text, `data-mention="GitHub"`); n != 1 {
		t.Errorf("data-mention marker count = %d, want 1: %q", n, text)
	}
	if c.State() != Idle {
		t.Errorf("state after commit = %v, want Idle", c.State())
	}
	if len(committed) != 1 || committed[0] != "GitHub" {
		t.Errorf("commit callback calls = %v, want [GitHub]", committed)
	}
}

func TestComposerTabCommits(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "@Slack")
	c.Feed(Event{Key: KeyTab})
	if !strings.Contains(c.Text(), `data-mention="Slack"`) {
		t.Errorf("tab should commit: %q", c.Text())
	}
}

func TestComposerArrowsMoveHighlight(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "@Git")

	c.Feed(Event{Key: KeyArrowDown})
	got, _ := c.Highlighted()
	if got.Name != "GitLab" {
		t.Errorf("after ArrowDown highlighted = %q, want GitLab", got.Name)
	}

	c.Feed(Event{Key: KeyArrowUp})
	got, _ = c.Highlighted()
	if got.Name != "GitHub" {
		t.Errorf("after ArrowUp highlighted = %q, want GitHub", got.Name)
	}

	// Wraps around.
	c.Feed(Event{Key: KeyArrowUp})
	got, _ = c.Highlighted()
	if got.Name != "GitLab" {
		t.Errorf("highlight should wrap: got %q", got.Name)
	}
}

func TestComposerEscapeCancelsWithoutEditing(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "Hello @Git")
	before := c.Text()

	c.Feed(Event{Key: KeyEscape})
	if c.State() != Idle {
		t.Errorf("state after escape = %v, want Idle", c.State())
	}
	if c.Text() != before {
		t.Errorf("escape modified text: %q → %q", before, c.Text())
	}
	if c.Candidates() != nil {
		t.Error("candidates should be empty while Idle")
	}
}

func TestComposerClickOutsideCancels(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "@No")
	c.Feed(Event{Key: KeyClickOutside})
	if c.State() != Idle {
		t.Errorf("state = %v, want Idle", c.State())
	}
}

func TestComposerWhitespaceTerminates(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "@Git ")
	if c.State() != Idle {
		t.Errorf("state after trailing space = %v, want Idle", c.State())
	}
}

func TestComposerBackspaceRederives(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "@Gitx")
	c.Feed(Event{Key: KeyBackspace})
	if c.State() != Composing || c.Filter() != "Git" {
		t.Errorf("state = %v filter = %q, want Composing/Git", c.State(), c.Filter())
	}

	// Deleting through the '@' leaves Idle.
	for i := 0; i < 4; i++ {
		c.Feed(Event{Key: KeyBackspace})
	}
	if c.State() != Idle {
		t.Errorf("state after deleting token = %v, want Idle", c.State())
	}
}

func TestComposerEnterWithNoCandidates(t *testing.T) {
	var commits int
	c := NewComposer(catalog.NewRegistry(), nil, func(string) { commits++ })
	typeString(c, "@zzzzz")
	before := c.Text()

	c.Feed(Event{Key: KeyEnter})
	if c.Text() != before {
		t.Errorf("enter with no candidates modified text: %q", c.Text())
	}
	if c.State() != Idle {
		t.Errorf("state = %v, want Idle", c.State())
	}
	if commits != 0 {
		t.Errorf("commit callback fired %d times, want 0", commits)
	}
}

func TestComposerEmbeddedAtDoesNotCompose(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)
	typeString(c, "user@Git")
	if c.State() != Idle {
		t.Errorf("embedded @ should not start composing, state = %v", c.State())
	}
}

func TestComposerSetTextDerivesFromCaret(t *testing.T) {
	c := NewComposer(catalog.NewRegistry(), nil, nil)

	c.SetText("Hello @Git world", 10) // caret right after "t" of @Git
	if c.State() != Composing || c.Filter() != "Git" {
		t.Errorf("state = %v filter = %q, want Composing/Git", c.State(), c.Filter())
	}

	c.SetText("Hello @Git world", 16)
	if c.State() != Idle {
		t.Errorf("caret past whitespace should be Idle, state = %v", c.State())
	}
}
