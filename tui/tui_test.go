package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

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

func newTestModel(t *testing.T) Model {
	t.Helper()
	repo := &content.MemoryRepository{
		Venues: []content.Venue{
			{ID: 1, Name: "Saffron House", Cuisine: "Emirati", City: "Dubai", Rating: 4.2},
			{ID: 2, Name: "Gulf Grill", Cuisine: "Emirati", City: "Dubai", Rating: 3.9},
		},
	}
	scoreStore := &scoreLog{}
	eng := engine.New(context.Background(), engine.Options{
		Repo:   repo,
		Scores: scoreStore,
		Saves:  save.NewMemoryStore(),
		RunID:  "tui-test",
		Seed:   1,
		Logger: log.New(nullWriter{}, log.LevelError),
	})
	m := New(context.Background(), eng, repo, scoreStore)

	// Simulate terminal setup.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func pressEnter(m Model) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestHistoryNavigation(t *testing.T) {
	h := NewHistory(3)
	h.Push("look")
	h.Push("look") // duplicate skipped
	h.Push("map")
	h.Push("stats")
	h.Push("inv") // evicts "look"

	if got, _ := h.Prev(); got != "inv" {
		t.Errorf("Prev = %q", got)
	}
	if got, _ := h.Prev(); got != "stats" {
		t.Errorf("Prev = %q", got)
	}
	if got, _ := h.Prev(); got != "map" {
		t.Errorf("Prev = %q", got)
	}
	// At the oldest entry, Prev stays put.
	if got, _ := h.Prev(); got != "map" {
		t.Errorf("Prev at start = %q", got)
	}
	if got, _ := h.Next(); got != "stats" {
		t.Errorf("Next = %q", got)
	}
	h.ResetCursor()
	if _, ok := h.Next(); ok {
		t.Error("Next after reset should report not navigating")
	}
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		line string
		want lineKind
	}{
		{"You step into Saffron House.", kindNarrative},
		{"On the chalkboard menu: Machboos, Harees ...and more.", kindMenu},
		{"Backpack: Machboos x2", kindMenu},
		{"A spectral receipt unfurls here. Its sum flickers. Speak: 'solve even' or 'solve odd'.", kindRite},
		{"Gahwa Ghoul appears! It hisses a riddle: \"What has keys?\"  (answer with: answer <your guess>)", kindMonster},
		{"You take 3 damage from backfired receipt magic.", kindDanger},
		{"*** YOU DIED: Perished by starvation ***  (Permadeath active)", kindDanger},
		{"A Sauce Shard crystallizes here. (3/20)", kindShard},
		{"All 20 shards resonate. You win!", kindShard},
		{"[Goodbye.]", kindSystem},
	}
	for _, c := range cases {
		if got := classifyLine(c.line); got != c.want {
			t.Errorf("classifyLine(%q) = %d, want %d", c.line, got, c.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	got := wordWrap("the quick brown fox jumps over the lazy dog", 15)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 15 {
			t.Errorf("line %q longer than 15", line)
		}
	}
	if wordWrap("short", 80) != "short" {
		t.Error("short text should be untouched")
	}
}

func TestEnterDispatchesCommand(t *testing.T) {
	m := newTestModel(t)
	m = typeString(m, "stats")
	m = pressEnter(m)

	var all []string
	for _, rl := range m.rawLines {
		all = append(all, rl.text)
	}
	text := strings.Join(all, "\n")
	if !strings.Contains(text, "> stats") {
		t.Errorf("input not echoed:\n%s", text)
	}
	if !strings.Contains(text, "HP 10/10") {
		t.Errorf("stats output missing:\n%s", text)
	}
}

func TestMetaQuit(t *testing.T) {
	m := newTestModel(t)
	m = typeString(m, "/quit")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if !m.quitting {
		t.Error("quitting flag not set")
	}
	if cmd == nil {
		t.Error("no quit command returned")
	}
	if m.View() != "" {
		t.Error("view should be empty when quitting")
	}
}

func TestDeathShowsHallOfTheFallen(t *testing.T) {
	m := newTestModel(t)
	m = typeString(m, "quit")
	m = pressEnter(m)

	var all []string
	for _, rl := range m.rawLines {
		all = append(all, rl.text)
	}
	text := strings.Join(all, "\n")
	if !strings.Contains(text, "YOU DIED: abandonment") {
		t.Fatalf("no death line:\n%s", text)
	}
	if !strings.Contains(text, "Hall of the Fallen:") {
		t.Errorf("no score list:\n%s", text)
	}
}

func TestStatusBarShowsVitals(t *testing.T) {
	m := newTestModel(t)
	bar := m.renderStatusBar()
	if !strings.Contains(bar, "HP 10/10") || !strings.Contains(bar, "Shards 0/20") {
		t.Errorf("bar = %q", bar)
	}
	if !strings.Contains(bar, "Danger ") {
		t.Errorf("danger missing from bar: %q", bar)
	}
}

func TestStatusBarAfterDeath(t *testing.T) {
	m := newTestModel(t)
	m = typeString(m, "quit")
	m = pressEnter(m)
	bar := m.renderStatusBar()
	if !strings.Contains(bar, "grave") {
		t.Errorf("bar = %q", bar)
	}
}
