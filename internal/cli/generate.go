package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/pipeline"
	"github.com/matzehuels/ontodot/pkg/render/dot"
)

// generateFlags holds the flags of the generate command.
type generateFlags struct {
	output        string
	configPath    string
	format        string
	names         string
	synthesize    bool
	prefixes      []string
	refresh       bool
	renderTimeout time.Duration
	cache         cacheFlags
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [ontology]",
		Short: "Transform an ontology into a Graphviz diagram",
		Long: `Transform an N-Triples or N-Quads ontology into a DOT document.

The DOT source is always written. With --format svg, png, jpg or pdf the
document is also laid out with Graphviz and the artifact written next to it.`,
		Example: `  ontodot generate people.nt
  ontodot generate people.nt -t svg -o people.svg
  ontodot generate people.nt --names prefixed --prefix ex=http://ex.org/
  ontodot generate people.nt -c ontodot.toml --synthesize`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], flags, cmd.Flags().Changed("synthesize"))
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: input name with the format extension)")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file (default: ~/.config/ontodot/config.toml if present)")
	cmd.Flags().StringVarP(&flags.format, "format", "t", pipeline.DefaultFormat, "output format: "+formatList())
	cmd.Flags().StringVar(&flags.names, "names", "", "node naming: localname, prefixed or fulluri (overrides config)")
	cmd.Flags().BoolVar(&flags.synthesize, "synthesize", false, "draw object properties as domain-to-range edges (overrides config)")
	cmd.Flags().StringArrayVar(&flags.prefixes, "prefix", nil, "declare a namespace prefix as prefix=namespace (repeatable)")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-render even if the artifact is cached")
	cmd.Flags().DurationVar(&flags.renderTimeout, "render-timeout", pipeline.DefaultRenderTimeout, "maximum time for the Graphviz layout")
	flags.cache.register(cmd)

	return cmd
}

// runGenerate executes the generate command.
func (c *CLI) runGenerate(ctx context.Context, input string, flags generateFlags, synthesizeSet bool) error {
	cfg, err := c.generateConfig(flags, synthesizeSet)
	if err != nil {
		return err
	}
	prefixes, err := parsePrefixes(flags.prefixes)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Input:         input,
		Output:        flags.output,
		Format:        flags.format,
		Config:        &cfg,
		Prefixes:      prefixes,
		RenderTimeout: flags.renderTimeout,
		Refresh:       flags.refresh,
		Logger:        c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done("generated", "output", res.ArtifactPath, "edges", res.Stats.Edges, "run", res.RunID[:8])

	printGenerateResult(res)
	return nil
}

// generateConfig loads the configuration and applies flag overrides.
func (c *CLI) generateConfig(flags generateFlags, synthesizeSet bool) (config.Config, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.names != "" {
		mode, err := config.ParseNameMode(flags.names)
		if err != nil {
			return cfg, err
		}
		cfg.NodeNames = mode
	}
	if synthesizeSet {
		cfg.Synthesize = flags.synthesize
	}
	return cfg, cfg.Validate()
}

func printGenerateResult(res *pipeline.Result) {
	printSuccess("Generated %s diagram", res.Format)
	printFile(res.SourcePath)
	if res.ArtifactPath != res.SourcePath {
		printFile(res.ArtifactPath)
	}
	printStats(res.Stats.Classes, res.Stats.Individuals, res.Stats.Edges, res.CacheHit)
	if res.Stats.Synthesized > 0 {
		printDetail("%d object properties drawn as direct edges", res.Stats.Synthesized)
	}
}

func formatList() string {
	names := make([]string, len(dot.Formats))
	for i, f := range dot.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
