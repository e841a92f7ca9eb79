package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"which-llm/core/cache"
	"which-llm/core/config"
	"which-llm/core/logger"
	"which-llm/core/output"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	formatFlag  string
	refreshFlag bool
	quietFlag   bool
	profileFlag string
	useAPIFlag  bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "which-llm",
	Short: "Compare AI models on benchmarks, pricing and capabilities",
	Long: `which-llm fetches AI model benchmarks, pricing, speed and capability
data, merges it into one dataset, and lets you list, compare and query
models from the command line.

Data comes from Artificial Analysis and models.dev. Responses are cached
locally for an hour; pass --refresh to refetch.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "table",
		"output format (table, markdown, json, csv, plain)")
	RootCmd.PersistentFlags().BoolVar(&refreshFlag, "refresh", false,
		"bypass the cache and refetch data")
	RootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false,
		"suppress informational logging")
	RootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "",
		"credential profile to use")
	RootCmd.PersistentFlags().BoolVar(&useAPIFlag, "use-api", false,
		"fetch from the live APIs instead of hosted snapshots")
}

// env bundles the dependencies shared by every data command.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	cache  *cache.Cache
	format output.Format
}

func newEnv() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if quietFlag {
		cfg.Log.Level = "warn"
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	c, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logg, cache: c, format: format}, nil
}

// configDir is where profiles live, separate from the cache.
func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(base, "which-llm"), nil
}

// fmtFloat renders an optional metric, "-" when absent.
func fmtFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	if *v == float64(int64(*v)) {
		return fmt.Sprintf("%d", int64(*v))
	}
	return fmt.Sprintf("%.2f", *v)
}

// fmtInt renders an optional count, "-" when absent.
func fmtInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
