package mention

import (
	"strings"
	"testing"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
)

func TestRenderRecognizedMention(t *testing.T) {
	reg := catalog.NewRegistry()
	got := Render("Deploy via @GitHub today", reg)

	if strings.Contains(got, "@GitHub") {
		t.Errorf("raw token should be replaced, got %q", got)
	}
	if n := strings.Count(got, `data-mention="GitHub"`); n != 1 {
		t.Errorf("data-mention marker count = %d, want 1", n)
	}
	if !strings.HasPrefix(got, "Deploy via ") || !strings.HasSuffix(got, " today") {
		t.Errorf("surrounding text altered: %q", got)
	}
}

func TestRenderUnrecognizedLeftVerbatim(t *testing.T) {
	reg := catalog.NewRegistry()
	content := "ping @nobodyknows about this"
	if got := Render(content, reg); got != content {
		t.Errorf("Render(%q) = %q, want unchanged", content, got)
	}
}

func TestRenderCanonicalizesTokens(t *testing.T) {
	reg := catalog.NewRegistry()

	// First letter of each underscore segment is upper-cased, rest is kept,
	// so these all resolve while "@github" does not.
	got := Render("use @gitHub and @google_Drive", reg)
	if !strings.Contains(got, `data-mention="GitHub"`) {
		t.Errorf("@gitHub should resolve to GitHub: %q", got)
	}
	if !strings.Contains(got, `data-mention="Google Drive"`) {
		t.Errorf("@google_Drive should resolve to Google Drive: %q", got)
	}

	got = Render("use @github", reg)
	if strings.Contains(got, "data-mention") {
		t.Errorf("@github canonicalizes to Github, which is not registered: %q", got)
	}
}

func TestRenderRequiresTokenStart(t *testing.T) {
	reg := catalog.NewRegistry()
	content := "mailto:user@GitHub.example"
	if got := Render(content, reg); got != content {
		t.Errorf("embedded @ should not be treated as a mention: %q", got)
	}
}

func TestRenderBareAt(t *testing.T) {
	reg := catalog.NewRegistry()
	for _, content := range []string{"@", "@ GitHub", "say @, ok"} {
		if got := Render(content, reg); got != content {
			t.Errorf("Render(%q) = %q, want unchanged", content, got)
		}
	}
}

func TestRenderMultipleMentions(t *testing.T) {
	reg := catalog.NewRegistry()
	got := Render("@Slack then @Jira", reg)
	if strings.Count(got, "data-mention") != 2 {
		t.Errorf("expected two fragments: %q", got)
	}
}

func TestMentionsDeduplicates(t *testing.T) {
	reg := catalog.NewRegistry()
	got := Mentions("@Slack ping @GitHub, then @Slack again, skip @nobody", reg)

	want := []string{"Slack", "GitHub"}
	if len(got) != len(want) {
		t.Fatalf("Mentions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Mentions[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"GitHub", "GitHub"},
		{"gitHub", "GitHub"},
		{"github", "Github"},
		{"google_drive", "Google Drive"},
		{"google_Drive", "Google Drive"},
		{"slack", "Slack"},
	}
	for _, tt := range tests {
		if got := CanonicalName(tt.in); got != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
