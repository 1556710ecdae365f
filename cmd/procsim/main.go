// Command procsim runs the discrete-event CPU scheduling simulator core
// against a process input file and a random-number file, and prints the
// per-process report, scheduler header, and summary line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"procsim/internal/procsim"
	"procsim/internal/procsim/config"
	"procsim/internal/procsim/trace"
	"procsim/internal/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		schedSpec  string
		verbose    bool
		traceFlag  bool
		eventFlag  bool
		prioFlag   bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:          "procsim <input-file> <random-file>",
		Short:        "Discrete-event CPU scheduling simulator",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(runOptions{
				schedSpec:  schedSpec,
				verbose:    verbose || traceFlag || eventFlag || prioFlag,
				configPath: configPath,
				inputPath:  args[0],
				randPath:   args[1],
				stdout:     cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&schedSpec, "scheduler", "s", "", "scheduler spec: F, L, S, R<q>, P<q>[:<maxprio>], E<q>[:<maxprio>]")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose transition tracing")
	cmd.Flags().BoolVarP(&traceFlag, "trace-events", "t", false, "trace DES events to a CSV file")
	cmd.Flags().BoolVarP(&eventFlag, "event-log", "e", false, "same as -v: info logging and the CSV event trace")
	cmd.Flags().BoolVarP(&prioFlag, "prio-log", "p", false, "same as -v: info logging and the CSV event trace")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file overriding built-in defaults")

	return cmd
}

type runOptions struct {
	schedSpec  string
	verbose    bool
	configPath string
	inputPath  string
	randPath   string
	stdout     io.Writer
}

func run(opts runOptions) error {
	logger := buildLogger(opts.verbose)
	cfg := loadConfig(opts.configPath)

	scheduler, err := parseSchedulerSpec(opts.schedSpec, cfg.DefaultMaxPrio)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	logger.Info("scheduler selected", "header", scheduler.HeaderLine())

	randFile, err := os.Open(opts.randPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not open the rand file")
		return err
	}
	defer randFile.Close()

	oracle, err := procsim.LoadRandomOracle(randFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	inputFile, err := os.Open(opts.inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not open the input file")
		return err
	}
	defer inputFile.Close()

	sim := procsim.NewSimulation(scheduler, oracle)
	if err := sim.LoadProcesses(inputFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if opts.verbose {
		sink, tracePath, err := newTraceSink(cfg.TracePath)
		if err != nil {
			logger.Warn("could not open trace sink, continuing without it", "error", err)
		} else {
			logger.Info("tracing enabled", "path", tracePath)
			sim.Trace = sink
			defer sink.(*trace.CSVSink).Close()
		}
	}

	result := sim.Run()
	return report.Render(opts.stdout, result)
}

// loadConfig reads YAML defaults via config.Load, then lets environment
// variables override them: PROCSIM_DEFAULT_MAXPRIO and PROCSIM_TRACE_PATH
// take precedence over whatever the file (or the built-in defaults) set.
// This is a distinct layer from the YAML file itself, which config.Load
// already owns end to end.
func loadConfig(path string) config.Config {
	cfg := config.Load(path)

	viper.SetEnvPrefix("procsim")
	viper.AutomaticEnv()

	if maxprio := viper.GetInt("default_maxprio"); maxprio > 0 {
		cfg.DefaultMaxPrio = maxprio
	}
	if tracePath := viper.GetString("trace_path"); tracePath != "" {
		cfg.TracePath = tracePath
	}
	return cfg
}

func newTraceSink(basePath string) (trace.Sink, string, error) {
	path := basePath
	if path == "" {
		path = fmt.Sprintf("procsim-trace-%s.csv", uuid.New().String())
	}
	sink, err := trace.NewCSVSink(path)
	if err != nil {
		return nil, "", err
	}
	return sink, path, nil
}

func buildLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
