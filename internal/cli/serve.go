package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hallway/internal/server"
	"github.com/matzehuels/hallway/pkg/cache"
	"github.com/matzehuels/hallway/pkg/pipeline"
)

type serveOpts struct {
	addr        string
	redisAddr   string
	redisPrefix string
	noCache     bool
}

func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve validation, routing and drawing over HTTP",
		Long: `Serve the JSON API:

  GET  /healthz
  POST /api/validate   {"plan": {...}}
  POST /api/route      {"plan": {...}, "start": "0", "visit": ["18", "17"]}
  POST /api/render     {"plan": {...}, "format": "svg"}

Results are cached in Redis when --redis-addr is set, otherwise in the
local file cache.`,
		Example: `  hallway serve --addr :8080
  hallway serve --redis-addr localhost:6379 --redis-prefix staging`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for the shared cache")
	cmd.Flags().StringVar(&opts.redisPrefix, "redis-prefix", appName, "key prefix in Redis")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()

	var runner *pipeline.Runner
	if opts.redisAddr != "" && !opts.noCache {
		rc, err := cache.NewRedisCache(ctx, opts.redisAddr)
		if err != nil {
			return err
		}
		keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), opts.redisPrefix)
		runner = pipeline.NewRunner(rc, keyer, c.Logger)
		c.Logger.Info("using redis cache", "addr", opts.redisAddr, "prefix", opts.redisPrefix)
	} else {
		var err error
		if runner, err = c.newRunner(opts.noCache); err != nil {
			return err
		}
	}
	defer runner.Cache.Close()

	return server.New(runner, c.Logger).ListenAndServe(ctx, opts.addr)
}
