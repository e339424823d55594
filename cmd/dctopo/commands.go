package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dctopo/builder"
	"github.com/katalvlaran/dctopo/config"
	"github.com/katalvlaran/dctopo/core"
	"github.com/katalvlaran/dctopo/export"
	"github.com/katalvlaran/dctopo/logging"
	"github.com/katalvlaran/dctopo/registry"
	"github.com/katalvlaran/dctopo/server"
	"github.com/katalvlaran/dctopo/stats"
)

// =============================================================================
// SHARED SETUP
// =============================================================================

// runEnv is what every command needs: the merged configuration and a logger.
type runEnv struct {
	cfg    *config.Config
	logger *zap.Logger
}

// setup loads --config (if any), applies command-line overrides and builds
// the logger. Flags win over file values.
func setup(c *cli.Context) (*runEnv, error) {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	} else {
		cfg.ApplyDefaults()
	}

	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-dev") {
		cfg.Log.Development = c.Bool("log-dev")
	}
	if c.IsSet("scope") {
		cfg.Scope = c.String("scope")
	}
	if c.IsSet("max-nodes") {
		cfg.MaxNodes = c.Int("max-nodes")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}

	return &runEnv{cfg: cfg, logger: logger}, nil
}

// topology resolves --topo, falling back to the config file.
func (e *runEnv) topology(c *cli.Context) (string, map[string]any, error) {
	if spec := c.String("topo"); spec != "" {
		return registry.ParseArgs(spec)
	}
	if e.cfg.Topology == "" {
		return "", nil, fmt.Errorf("no topology: pass --topo or set topology in --config")
	}

	return e.cfg.Topology, e.cfg.Params, nil
}

func (e *runEnv) builderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithLogger(e.logger), builder.WithScope(e.cfg.Scope)}
	if e.cfg.MaxNodes > 0 {
		opts = append(opts, builder.WithMaxNodes(e.cfg.MaxNodes))
	}

	return opts
}

// generate builds the requested fabric and returns it with resolved params.
func (e *runEnv) generate(c *cli.Context) (*core.Graph, string, map[string]int, error) {
	name, params, err := e.topology(c)
	if err != nil {
		return nil, "", nil, err
	}
	f, args, err := registry.Default.Resolve(name, params)
	if err != nil {
		return nil, "", nil, err
	}
	g, err := registry.Build(name, params, e.builderOptions()...)
	if err != nil {
		return nil, "", nil, err
	}
	resolved := make(map[string]int, len(args))
	for i, p := range f.Params {
		resolved[p.Name] = args[i]
	}

	return g, name, resolved, nil
}

var topoFlag = &cli.StringFlag{
	Name:    "topo",
	Aliases: []string{"t"},
	Usage:   `Topology spec, e.g. "bcube,1,4" or "fattree,k=4,r=2"`,
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Usage:   "Output format when writing to stdout (yaml, json)",
}

// =============================================================================
// LIST COMMAND
// =============================================================================

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List available topologies and their parameters",
		Action: func(c *cli.Context) error {
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPARAMS\tDESCRIPTION")
			for _, name := range registry.Names() {
				f, err := registry.Lookup(name)
				if err != nil {
					return err
				}
				params := make([]string, len(f.Params))
				for i, p := range f.Params {
					params[i] = fmt.Sprintf("%s=%d", p.Name, p.Default)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, strings.Join(params, ","), f.Description)
			}
			return tw.Flush()
		},
	}
}

// =============================================================================
// BUILD COMMAND
// =============================================================================

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Generate a topology description",
		Flags: []cli.Flag{
			topoFlag,
			formatFlag,
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to this file (.yaml, .yml or .json) instead of stdout",
			},
			&cli.StringFlag{
				Name:  "scope",
				Usage: "Prefix every node name with <scope>.",
			},
			&cli.IntFlag{
				Name:  "max-nodes",
				Usage: "Refuse fabrics with more nodes than this (0 = unlimited)",
			},
		},
		Action: runBuild,
	}
}

func runBuild(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.logger.Sync() //nolint:errcheck

	g, name, params, err := env.generate(c)
	if err != nil {
		return err
	}
	doc, err := export.FromGraph(g, name, params)
	if err != nil {
		return err
	}

	if env.cfg.Output != "" {
		if err = export.WriteFile(env.cfg.Output, doc); err != nil {
			return err
		}
		env.logger.Info("topology written", zap.String("path", env.cfg.Output), zap.String("id", doc.ID))
		return nil
	}

	f, err := export.ParseFormat(env.cfg.Format)
	if err != nil {
		return err
	}

	return export.Encode(c.App.Writer, doc, f)
}

// =============================================================================
// STATS COMMAND
// =============================================================================

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print structural statistics of a topology",
		Flags: []cli.Flag{
			topoFlag,
			formatFlag,
			&cli.IntFlag{
				Name:  "sources",
				Usage: "Hosts used as BFS sources for distances (0 = all)",
			},
		},
		Action: runStats,
	}
}

func runStats(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.logger.Sync() //nolint:errcheck

	g, _, _, err := env.generate(c)
	if err != nil {
		return err
	}
	sum, err := stats.Analyze(g, stats.WithContext(c.Context), stats.WithSources(c.Int("sources")))
	if err != nil {
		return err
	}

	f, err := export.ParseFormat(env.cfg.Format)
	if err != nil {
		return err
	}
	if f == export.FormatJSON {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "\t")
		return enc.Encode(sum)
	}
	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err = enc.Encode(sum); err != nil {
		return err
	}

	return enc.Close()
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve topologies over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "Listen address",
				EnvVars: []string{"DCTOPO_ADDR"},
			},
			&cli.IntFlag{
				Name:    "max-nodes",
				Usage:   "Per-request node limit (default 100000, 0 = unlimited)",
				EnvVars: []string{"DCTOPO_MAX_NODES"},
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.logger.Sync() //nolint:errcheck

	addr := env.cfg.Server.Addr
	if c.IsSet("addr") {
		addr = c.String("addr")
	}
	limit := env.cfg.Server.MaxNodes
	if c.IsSet("max-nodes") {
		limit = c.Int("max-nodes")
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(registry.Default, env.logger,
		server.WithMaxNodes(limit),
		server.WithReadTimeout(env.cfg.Server.ReadTimeout),
	)

	return srv.Run(ctx, addr)
}
