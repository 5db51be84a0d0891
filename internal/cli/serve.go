package cli

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ontodot/internal/server"
	"github.com/matzehuels/ontodot/pkg/observability"
	"github.com/matzehuels/ontodot/pkg/pipeline"
)

// serveFlags holds the flags of the serve command.
type serveFlags struct {
	addr          string
	configPath    string
	renderTimeout time.Duration
	metrics       bool
	cache         cacheFlags
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

  POST /api/dot              ontology body in, DOT document out
  POST /api/render/{format}  ontology body in, rendered diagram out
  GET  /health               liveness and version
  GET  /metrics              Prometheus metrics (unless --metrics=false)

Query parameters names, synthesize, rankdir and prefix=p=ns override the
configuration per request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file used as the request baseline")
	cmd.Flags().DurationVar(&flags.renderTimeout, "render-timeout", pipeline.DefaultRenderTimeout, "maximum time for one Graphviz layout")
	cmd.Flags().BoolVar(&flags.metrics, "metrics", true, "expose Prometheus metrics on /metrics")
	flags.cache.register(cmd)

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, flags serveFlags) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	opts := server.Options{
		Addr:          flags.addr,
		Base:          cfg,
		RenderTimeout: flags.renderTimeout,
	}
	if flags.metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		observability.Register(observability.NewPrometheusHooks(reg))
		defer observability.Reset()
		opts.Gatherer = reg
	}

	runner, err := c.newRunner(ctx, flags.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	return server.New(runner, opts, c.Logger).ListenAndServe(ctx)
}
