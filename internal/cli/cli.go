package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hallway/pkg/buildinfo"
	"github.com/matzehuels/hallway/pkg/cache"
	"github.com/matzehuels/hallway/pkg/errors"
	"github.com/matzehuels/hallway/pkg/floor"
	hio "github.com/matzehuels/hallway/pkg/io"
	"github.com/matzehuels/hallway/pkg/pipeline"
)

const appName = "hallway"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel changes the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Validate building floors and plan walks through their waypoints",
		Long: `hallway checks floor plans (halls joined by corridors) for one-way corridors
and halls drawn on top of each other, and plans a walk from a start hall
through every waypoint, always heading to the nearest unvisited one.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.validateCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner backed by the file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	ch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory, following XDG (~/.cache/hallway).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadFloors reads path and returns the named floor, or every floor when
// name is empty.
func loadFloors(path, name string) (*floor.Building, []*floor.Plan, error) {
	b, err := hio.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if name == "" {
		return b, b.Floors, nil
	}
	p, err := b.Floor(name)
	if err != nil {
		return nil, nil, err
	}
	return b, []*floor.Plan{p}, nil
}

// loadFloor reads path and returns a single floor. Building files need a
// floor name.
func loadFloor(path, name string) (*floor.Plan, error) {
	b, plans, err := loadFloors(path, name)
	if err != nil {
		return nil, err
	}
	if len(plans) != 1 {
		return nil, errMultipleFloors(path, b)
	}
	return plans[0], nil
}

func errMultipleFloors(path string, b *floor.Building) error {
	names := make([]string, len(b.Floors))
	for i, p := range b.Floors {
		names[i] = p.DisplayName()
	}
	return errors.New(errors.ErrCodeInvalidInput, "%s has %d floors (%s), pick one with --floor",
		path, len(b.Floors), strings.Join(names, ", "))
}
