package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nathoo/saucequest/content"
	"github.com/nathoo/saucequest/engine"
	"github.com/nathoo/saucequest/engine/save"
	"github.com/nathoo/saucequest/log"
	"github.com/nathoo/saucequest/scores"
)

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

type scoreLog struct {
	entries []scores.Entry
}

func (s *scoreLog) Append(ctx context.Context, e scores.Entry) error {
	s.entries = append(s.entries, e)
	return nil
}

func (s *scoreLog) Recent(ctx context.Context, n int) ([]scores.Entry, error) {
	out := make([]scores.Entry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

func testRepo() *content.MemoryRepository {
	return &content.MemoryRepository{
		Venues: []content.Venue{
			{ID: 1, Name: "Saffron House", Cuisine: "Emirati", City: "Dubai", Rating: 4.2},
			{ID: 2, Name: "Gulf Grill", Cuisine: "Emirati", City: "Dubai", Rating: 3.9},
		},
		Items: []content.MenuItem{
			{ID: 1, VenueID: 1, DisplayName: "Machboos"},
		},
	}
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	scoreStore := &scoreLog{}
	eng := engine.New(context.Background(), engine.Options{
		Repo:   testRepo(),
		Scores: scoreStore,
		Saves:  save.NewMemoryStore(),
		RunID:  "cli-test",
		Seed:   1,
		Logger: log.New(nullWriter{}, log.LevelError),
	})
	var out bytes.Buffer
	c := &CLI{
		Engine: eng,
		Scores: scoreStore,
		In:     strings.NewReader(input),
		Out:    &out,
	}
	return c, &out
}

func TestRunShowsOpeningAndPrompt(t *testing.T) {
	c, out := newTestCLI(t, "")
	c.Run(context.Background())
	text := out.String()
	if !strings.Contains(text, "Where is the Lamb Sauce?") {
		t.Errorf("opening missing:\n%s", text)
	}
	if !strings.Contains(text, "HP 10/10") {
		t.Errorf("stats missing:\n%s", text)
	}
	if !strings.Contains(text, "> ") {
		t.Errorf("prompt missing:\n%s", text)
	}
}

func TestMetaQuitExits(t *testing.T) {
	c, out := newTestCLI(t, "/quit\nlook\n")
	c.Run(context.Background())
	text := out.String()
	if !strings.Contains(text, "[Goodbye.]") {
		t.Errorf("no goodbye:\n%s", text)
	}
	if strings.Contains(text, "You step into") {
		t.Error("commands ran after /quit")
	}
}

func TestMetaHelp(t *testing.T) {
	c, out := newTestCLI(t, "/help\n")
	c.Run(context.Background())
	text := out.String()
	if !strings.Contains(text, "/scores") || !strings.Contains(text, "chant [hard]") {
		t.Errorf("help incomplete:\n%s", text)
	}
}

func TestGameCommandDispatch(t *testing.T) {
	c, out := newTestCLI(t, "stats\n")
	c.Run(context.Background())
	if !strings.Contains(out.String(), "Shards 0") {
		t.Errorf("stats not dispatched:\n%s", out.String())
	}
}

func TestEchoRepeatsScriptCommands(t *testing.T) {
	c, out := newTestCLI(t, "# warm-up\nstats\n")
	c.Echo = true
	c.Run(context.Background())
	if !strings.Contains(out.String(), "stats\n") {
		t.Errorf("command not echoed:\n%s", out.String())
	}
	if strings.Contains(out.String(), "warm-up") {
		t.Errorf("comment line should not be echoed:\n%s", out.String())
	}
}

func TestAgainRepeatsLastCommand(t *testing.T) {
	c, out := newTestCLI(t, "stats\ng\n")
	c.Run(context.Background())
	if strings.Count(out.String(), "HP 10/10 | Hunger") < 2 {
		t.Errorf("again did not repeat:\n%s", out.String())
	}
}

func TestDeathShowsScores(t *testing.T) {
	c, out := newTestCLI(t, "quit\n")
	c.Run(context.Background())
	text := out.String()
	if !strings.Contains(text, "YOU DIED: abandonment") {
		t.Fatalf("no death line:\n%s", text)
	}
	if !strings.Contains(text, "Hall of the Fallen:") {
		t.Errorf("no score list:\n%s", text)
	}
	if !strings.Contains(text, "abandonment") {
		t.Errorf("score entry missing:\n%s", text)
	}
}

func TestUnknownMetaCommand(t *testing.T) {
	c, out := newTestCLI(t, "/warp\n")
	c.Run(context.Background())
	if !strings.Contains(out.String(), "Unknown command: /warp") {
		t.Errorf("output:\n%s", out.String())
	}
}
