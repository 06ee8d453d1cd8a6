package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/hallway/pkg/errors"
	hio "github.com/matzehuels/hallway/pkg/io"
)

var (
	groundFile = filepath.Join("..", "..", "examples", "floors", "ground.toml")
	annexFile  = filepath.Join("..", "..", "examples", "floors", "annex.toml")
)

// execute runs the root command with args and returns its error.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	var logs bytes.Buffer
	root := New(&logs, log.InfoLevel).RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func TestCacheDir(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error: %v", err)
		}
		if want := filepath.Join("/tmp/xdg-cache", appName); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "")
		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error: %v", err)
		}
		home, _ := os.UserHomeDir()
		if !strings.HasPrefix(dir, home) {
			t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
		}
		if !strings.HasSuffix(dir, filepath.Join(".cache", appName)) {
			t.Errorf("cacheDir() = %q, should end with .cache/%s", dir, appName)
		}
	})
}

func TestRootCommand(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()
	want := []string{"cache", "completion", "pick", "render", "route", "serve", "validate"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, name := range want {
		found := false
		for _, g := range got {
			if g == name {
				found = true
			}
		}
		if !found {
			t.Errorf("missing command %q in %v", name, got)
		}
	}
}

func readItinerary(t *testing.T, path string) hio.Itinerary {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var it hio.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		t.Fatalf("itinerary is not a JSON object: %v\n%s", err, data)
	}
	return it
}

func TestRouteCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "route.json")
	if err := execute(t, "route", groundFile, "-o", out, "--no-cache"); err != nil {
		t.Fatalf("route error = %v", err)
	}

	it := readItinerary(t, out)
	if it.Start != "0" {
		t.Errorf("Start = %q, want 0", it.Start)
	}
	if got := strings.Join(it.Order, ","); got != "24,18,17" {
		t.Errorf("Order = %s, want 24,18,17", got)
	}
	if it.Distance != 9 {
		t.Errorf("Distance = %d, want 9", it.Distance)
	}
}

func TestRouteCommand_Overrides(t *testing.T) {
	out := filepath.Join(t.TempDir(), "route.json")
	if err := execute(t, "route", groundFile, "--start", "5", "--visit", "", "-o", out); err != nil {
		t.Fatalf("route error = %v", err)
	}
	it := readItinerary(t, out)
	if it.Start != "5" || len(it.Order) != 0 || it.Distance != 0 {
		t.Errorf("itinerary = %+v, want a walk that stays at 5", it)
	}
	if len(it.Route) != 1 || it.Route[0].ID != "5" {
		t.Errorf("Route = %+v, want [5]", it.Route)
	}
}

func TestRouteCommand_Building(t *testing.T) {
	out := filepath.Join(t.TempDir(), "routes.json")
	if err := execute(t, "route", annexFile, "-o", out, "--no-cache"); err != nil {
		t.Fatalf("route error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var its []hio.Itinerary
	if err := json.Unmarshal(data, &its); err != nil {
		t.Fatalf("building route is not a JSON array: %v", err)
	}
	if len(its) != 2 {
		t.Fatalf("got %d itineraries, want 2", len(its))
	}
	if its[0].Floor != "ground" || its[1].Floor != "first" {
		t.Errorf("floors = %q, %q", its[0].Floor, its[1].Floor)
	}

	err = execute(t, "route", annexFile, "--start", "lobby")
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("override without --floor: code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestRouteCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"route", groundFile, "--format", "yaml"}, errors.ErrCodeInvalidFormat},
		{"unknown start", []string{"route", groundFile, "--start", "nowhere", "--no-cache"}, errors.ErrCodeUnknownHall},
		{"unknown floor", []string{"route", annexFile, "--floor", "roof"}, ""},
		{"missing file", []string{"route", "does-not-exist.toml"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.code != "" && errors.GetCode(err) != tt.code {
				t.Errorf("code = %q, want %q (err %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	if err := execute(t, "validate", groundFile, annexFile); err != nil {
		t.Fatalf("validate error = %v", err)
	}

	broken := filepath.Join(t.TempDir(), "broken.toml")
	plan := `
[[hall]]
id = "a"
x = 0.0
y = 0.0
neighbors = ["b"]

[[hall]]
id = "b"
x = 0.0
y = 0.0
`
	if err := os.WriteFile(broken, []byte(plan), 0o644); err != nil {
		t.Fatal(err)
	}
	err := execute(t, "validate", groundFile, broken)
	if errors.GetCode(err) != errors.ErrCodeInvalidPlan {
		t.Errorf("code = %q, want %q (err %v)", errors.GetCode(err), errors.ErrCodeInvalidPlan, err)
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "annex.dot")
	if err := execute(t, "render", annexFile, "--floor", "first", "--format", "dot", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	for _, want := range []string{"graph G {", `"stairs-1"`, "layout=neato"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q", want)
		}
	}

	err = execute(t, "render", groundFile, "--format", "pdf")
	if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		plan, floor, format string
		want                string
	}{
		{"plans/ground.toml", "ground", "svg", filepath.Join("plans", "ground.svg")},
		{"plans/annex.toml", "first", "png", filepath.Join("plans", "annex-first.png")},
		{"plan.json", "floor", "dot", "plan.dot"},
		{"plan.json", "", "svg", "plan.svg"},
	}
	for _, tt := range tests {
		if got := defaultOutputPath(tt.plan, tt.floor, tt.format); got != tt.want {
			t.Errorf("defaultOutputPath(%q, %q, %q) = %q, want %q", tt.plan, tt.floor, tt.format, got, tt.want)
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHallPickerModel(t *testing.T) {
	p, err := loadFloor(annexFile, "ground")
	if err != nil {
		t.Fatal(err)
	}
	m := NewHallPickerModel(p)
	if m.StartID() != "lobby" {
		t.Errorf("initial start = %q, want lobby", m.StartID())
	}
	if got := strings.Join(m.Visit(), ","); got != "cafe,stairs-0" {
		t.Errorf("initial visit = %s, want cafe,stairs-0", got)
	}

	press := func(keys ...string) {
		for _, k := range keys {
			next, _ := m.Update(key(k))
			m = next.(HallPickerModel)
		}
	}

	// clear, move to corridor-0 and start there, then pick lobby
	press("c", "down", "s", "up", " ")
	if m.StartID() != "corridor-0" {
		t.Errorf("start = %q, want corridor-0", m.StartID())
	}
	if got := strings.Join(m.Visit(), ","); got != "lobby" {
		t.Errorf("visit = %s, want lobby", got)
	}

	press("x")
	if len(m.Visit()) != 0 {
		t.Errorf("x should toggle lobby off, visit = %v", m.Visit())
	}

	press("enter")
	if !m.Confirmed {
		t.Error("enter with a start should confirm")
	}
	if !strings.Contains(m.View(), "corridor-0") {
		t.Error("view should list the halls")
	}
}

func TestHallPickerModel_NeedsStart(t *testing.T) {
	p, err := loadFloor(annexFile, "first")
	if err != nil {
		t.Fatal(err)
	}
	p.Start = ""
	m := NewHallPickerModel(p)

	next, cmd := m.Update(key("enter"))
	m = next.(HallPickerModel)
	if m.Confirmed || cmd != nil {
		t.Error("enter without a start should not confirm")
	}
	if m.Message == "" {
		t.Error("expected a hint message")
	}
}
