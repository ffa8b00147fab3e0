// Command roadplanner grows a road network one road at a time.
//
// Usage:
//
//	roadplanner run   [-scenario five|random|smallworld|file] [-graph FILE]
//	                  [-nodes N] [-p P] [-degree D] [-beta B] [-candidates C]
//	                  [-k K] [-rounds R] [-max-rounds M] [-seed S] [-out DIR]
//	                  [-env FILE] [-v]
//	roadplanner serve [-addr :8080] [-env FILE] [-v]
//
// Parameters not given on the command line come from -env (or ./.env) and
// ROADNET_* environment variables; see package config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/recorder"
	"github.com/katalvlaran/roadnet/selector"
	"github.com/katalvlaran/roadnet/server"
	"github.com/katalvlaran/roadnet/traffic"
)

// Scenario names accepted by -scenario.
const (
	scenarioFive       = "five"
	scenarioRandom     = "random"
	scenarioSmallWorld = "smallworld"
	scenarioFile       = "file"
)

var errUsage = errors.New("usage: roadplanner run|serve [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dispatch(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logrus.WithError(err).Error("roadplanner failed")
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "run":
		return runCmd(ctx, args[1:], stdout)
	case "serve":
		return serveCmd(ctx, args[1:])
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

// networkSource describes how to build the starting network.
type networkSource struct {
	scenario   string
	graphFile  string
	nodes      int
	p          float64
	degree     int
	beta       float64
	candidates int
	minWeight  int
	maxWeight  int
	seed       int64
}

// buildNetwork returns the starting network and its candidate pool.
// Generated networks are joined into one component and offered their first
// src.candidates absent pairs.
func buildNetwork(src networkSource) (*core.Graph, []core.EdgeKey, error) {
	if src.minWeight < 1 || src.maxWeight < src.minWeight {
		return nil, nil, fmt.Errorf("%w: need 1 ≤ min-weight ≤ max-weight, got %d and %d", errUsage, src.minWeight, src.maxWeight)
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(src.seed),
		builder.WithWeightFn(builder.UniformIntWeightFn(src.minWeight, src.maxWeight)),
	}

	var (
		g   *core.Graph
		err error
	)
	switch src.scenario {
	case scenarioFive:
		return builder.Scenario5()
	case scenarioRandom:
		g, err = builder.BuildGraph(bopts, builder.RandomSparse(src.nodes, src.p), builder.Connect())
	case scenarioSmallWorld:
		g, err = builder.BuildGraph(bopts, builder.WattsStrogatz(src.nodes, src.degree, src.beta), builder.Connect())
	case scenarioFile:
		var recs []core.EdgeRecord
		recs, err = recorder.ReadEdgesFile(src.graphFile)
		if err != nil {
			return nil, nil, err
		}
		g, err = builder.BuildGraph(nil, builder.Edges(recs))
	default:
		return nil, nil, fmt.Errorf("%w: unknown scenario %q", errUsage, src.scenario)
	}
	if err != nil {
		return nil, nil, err
	}

	return g, builder.Candidates(g, src.candidates), nil
}

func runCmd(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	var (
		src       networkSource
		envFile   string
		outDir    string
		k         int
		rounds    int
		maxRounds int
		seed      int64
		verbose   bool
	)
	fs.StringVar(&src.scenario, "scenario", scenarioFive, "starting network: five, random, smallworld or file")
	fs.StringVar(&src.graphFile, "graph", "GraphEdges.csv", "edge file for -scenario file")
	fs.IntVar(&src.nodes, "nodes", 60, "junction count for generated networks")
	fs.Float64Var(&src.p, "p", 0.1, "road probability for -scenario random")
	fs.IntVar(&src.degree, "degree", 4, "ring degree for -scenario smallworld (even)")
	fs.Float64Var(&src.beta, "beta", 0.5, "rewiring probability for -scenario smallworld")
	fs.IntVar(&src.candidates, "candidates", 20, "candidate pool size for generated networks; 0 offers every absent pair")
	fs.IntVar(&src.minWeight, "min-weight", 1, "smallest generated road length")
	fs.IntVar(&src.maxWeight, "max-weight", 20, "largest generated road length")
	fs.StringVar(&envFile, "env", "", "optional .env file")
	fs.StringVar(&outDir, "out", "", "directory for CSV output; empty disables it")
	fs.IntVar(&k, "k", 0, "roads committed per round (overrides config)")
	fs.IntVar(&rounds, "rounds", 0, "assignment rounds per simulation (overrides config)")
	fs.IntVar(&maxRounds, "max-rounds", 0, "selection round cap (overrides config)")
	fs.Int64Var(&seed, "seed", 0, "random seed for generation and trips (overrides config)")
	fs.BoolVar(&verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := newLogger(verbose)
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if k > 0 {
		cfg.RoadsPerRound = k
	}
	if rounds > 0 {
		cfg.Rounds = rounds
	}
	if maxRounds > 0 {
		cfg.MaxRounds = maxRounds
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	src.seed = cfg.Seed

	g, cands, err := buildNetwork(src)
	if err != nil {
		return err
	}

	opts := []selector.Option{
		selector.WithConfig(cfg),
		selector.WithLogger(log),
		selector.WithProgress(func(round int, p traffic.Progress) {
			log.WithFields(logrus.Fields{
				"round": round,
				"step":  fmt.Sprintf("%d/%d", p.Round, p.Total),
				"trip":  p.Path,
			}).Debug("traffic progress")
		}),
	}
	if outDir != "" {
		rec, err := recorder.NewCSV(outDir)
		if err != nil {
			return err
		}
		opts = append(opts, selector.WithRecorder(rec))
	}

	sel, err := selector.New(g, cands, opts...)
	if err != nil {
		return err
	}
	res, err := sel.Run(ctx)
	if res != nil {
		printSummary(stdout, res)
	}

	return err
}

func serveCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	var (
		addr    string
		envFile string
		verbose bool
	)
	fs.StringVar(&addr, "addr", "", "listen address (overrides config)")
	fs.StringVar(&envFile, "env", "", "optional .env file")
	fs.BoolVar(&verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := newLogger(verbose)
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	return server.New(cfg, server.WithLogger(log)).ListenAndServe(ctx, cfg.Addr)
}

func loadConfig(envFile string) (config.Config, error) {
	if envFile != "" {
		return config.Load(envFile)
	}

	return config.Load()
}

func newLogger(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}

func printSummary(w io.Writer, res *selector.Result) {
	fmt.Fprintf(w, "rounds: %d  committed: %d  remaining: %d  roads: %d\n",
		res.Rounds, len(res.Selected), len(res.Remaining), len(res.Edges))
	for _, s := range res.Selected {
		fmt.Fprintf(w, "  round %d  %-12s benefit %.2f  length %.2f (was %.2f)  volume %d\n",
			s.Round, s.Key, s.Benefit, s.Weight, s.CurrentLength, s.Volume)
	}
}
