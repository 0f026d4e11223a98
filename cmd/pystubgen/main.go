// Package main provides the pystubgen CLI: it generates .pyi declaration
// stubs for compiled Python extension modules.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/MusicalNinjas/pyigen/tool/pyenv"
	"github.com/MusicalNinjas/pyigen/tool/pystub"
)

var (
	outputRoot string
	depth      int
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pystubgen <module>",
	Short: "Generate .pyi stubs for compiled Python modules",
	Long: `pystubgen imports a compiled Python module (e.g. built from Rust via
pyo3), reads the text signatures and docstrings of its functions and
classes, and writes a declarations-only .pyi stub next to your sources.

The stub is untyped: text signatures carry no annotations, so parameter
types are left for you or a downstream tool to add.

Example:

  pystubgen -o python pypkg.rustlib    creates ./python/pypkg/rustlib.pyi`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&outputRoot, "output", "o", ".", "project root to write stubs under")
	rootCmd.Flags().IntVarP(&depth, "depth", "d", 1, "submodule depth to generate stubs for")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to .pystubgen.yml config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	moduleName := args[0]
	if configPath != "" {
		if err := applyConfig(configPath, cmd, &outputRoot, &depth); err != nil {
			return err
		}
	}

	pyenv.Prepare()
	version, err := pyenv.Check(rootModule(moduleName))
	if err != nil {
		return err
	}
	logger.Info("python library ready",
		zap.String("module", moduleName),
		zap.String("version", version))

	modules := []string{moduleName}
	if depth > 1 {
		lib, err := pydumpList(moduleName, depth)
		if err != nil {
			return err
		}
		modules = lib.Modules
	}

	for _, name := range modules {
		mod, err := pydump(name)
		if err != nil {
			return err
		}
		path, err := pystub.WriteStub(outputRoot, mod)
		if err != nil {
			return fmt.Errorf("write stub for %s: %w", name, err)
		}
		logger.Info("stub written",
			zap.String("module", name),
			zap.String("path", path))
	}
	return nil
}

// rootModule returns the top-level import name of a dotted module path.
func rootModule(moduleName string) string {
	if idx := strings.Index(moduleName, "."); idx > 0 {
		return moduleName[:idx]
	}
	return moduleName
}

// applyConfig loads the yaml config and overrides flags the user did not set
// on the command line.
func applyConfig(path string, cmd *cobra.Command, outputRoot *string, depth *int) error {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var cfg struct {
		Stubgen struct {
			Output string `yaml:"output"`
			Depth  int    `yaml:"depth"`
		} `yaml:"stubgen"`
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if !cmd.Flags().Changed("output") && cfg.Stubgen.Output != "" {
		*outputRoot = cfg.Stubgen.Output
	}
	if !cmd.Flags().Changed("depth") && cfg.Stubgen.Depth > 0 {
		*depth = cfg.Stubgen.Depth
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
