// Package main provides the kastor-gen binary entry point.
// kastor-gen generates Go bindings (domain interfaces, graph-backed
// wrappers, and builder DSLs) from ontology model documents.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/kastor-go/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "kastor-gen"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		pkgName    string
		validation string
		strict     bool
		watch      bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "kastor-gen [model documents...]",
		Short: "Ontology-driven Go code generator",
		Long: `kastor-gen consumes ontology model documents (SHACL shapes plus a
JSON-LD context, serialized as JSON) and generates, per class:

- a pure domain interface
- a graph-backed wrapper with lazy, memoized accessors
- a validating builder DSL

Model documents are resolved from kastor.yaml or from command-line
arguments; generation is deterministic, so regenerating from an
unchanged model rewrites identical files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(runFlags{
				configPath: configPath,
				outDir:     outDir,
				pkgName:    pkgName,
				validation: validation,
				strict:     strict,
				watch:      watch,
				logLevel:   logLevel,
				models:     args,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&pkgName, "package", "", "Generated package name (overrides config)")
	cmd.Flags().StringVar(&validation, "validation", "", "Validation mode: none, embedded, external")
	cmd.Flags().BoolVar(&strict, "strict-datatypes", false, "Fail on unrecognized literal datatypes")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch model documents and regenerate on change")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	// Init command
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default kastor.yaml to the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.ProjectConfigFile); err == nil {
				return fmt.Errorf("%s already exists", config.ProjectConfigFile)
			}
			if err := config.DefaultConfig().SaveToFile(config.ProjectConfigFile); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", config.ProjectConfigFile)
			return nil
		},
	})

	return cmd
}

type runFlags struct {
	configPath string
	outDir     string
	pkgName    string
	validation string
	strict     bool
	watch      bool
	logLevel   string
	models     []string
}

func run(flags runFlags) error {
	// Configure logging
	level := slog.LevelInfo
	switch strings.ToLower(flags.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.NewLoader(logger).Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Command-line flags override config
	if len(flags.models) > 0 {
		cfg.Input.Models = flags.models
	}
	if flags.outDir != "" {
		cfg.Output.Dir = flags.outDir
	}
	if flags.pkgName != "" {
		cfg.Generation.Package = flags.pkgName
	}
	if flags.validation != "" {
		cfg.Generation.Validation = flags.validation
	}
	if flags.strict {
		cfg.Generation.StrictDatatypes = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	app, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	if err := app.RunOnce(); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}

	// Watch mode: regenerate until interrupted.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.Watch(ctx)
}
