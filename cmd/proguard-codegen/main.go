// Package main provides the CLI entrypoint for proguard-codegen.
//
// proguard-codegen converts a ProGuard/R8 obfuscation mapping file into a
// navigable Java source tree: one generated class per mapped class,
// mirroring the original package hierarchy, each exposing the original
// name, the obfuscated name, and lookup constants for every member.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"proguard-codegen/internal/config"
	"proguard-codegen/internal/gen"
	"proguard-codegen/internal/mapping"
	"proguard-codegen/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = defaults + MAPGEN_* env")
	inputPath := flag.String("input", "", "mapping file path (overrides config)")
	inputURL := flag.String("url", "", "mapping download URL used when the file is missing (overrides config)")
	outputDir := flag.String("output", "", "output root directory (overrides config)")
	basePackage := flag.String("base-package", "", "package prefix for generated classes (overrides config)")
	strategy := flag.String("strategy", "", "constant emission strategy: plain or static-init (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	applyOverrides(&cfg, *inputPath, *inputURL, *outputDir, *basePackage, *strategy)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}

	logger.Info("done", zap.Duration("elapsed", time.Since(start)))
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	data, err := mapping.Load(ctx, cfg.Input.Path, cfg.Input.URL, logger)
	if err != nil {
		return err
	}

	table, stats := mapping.Parse(data)
	logger.Info("parsed mapping file",
		zap.String("path", cfg.Input.Path),
		zap.Int("classes", stats.Classes),
		zap.Int("fields", stats.Fields),
		zap.Int("methods", stats.Methods),
		zap.Int("dropped_lines", stats.Dropped),
	)

	// Validated earlier, cannot fail here.
	emission, _ := gen.ParseStrategy(cfg.Output.Strategy)

	report, err := gen.Run(table, gen.GeneratorConfig{
		BasePackage: cfg.Output.BasePackage,
		OutputDir:   cfg.Output.Dir,
		Strategy:    emission,
	}, logger)

	logger.Info("generation summary",
		zap.String("output_dir", cfg.Output.Dir),
		zap.String("strategy", emission.String()),
		zap.Int("generated", report.Generated),
		zap.Int("skipped", report.Skipped),
	)

	return err
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default()
	}

	return config.Load(path)
}

// applyOverrides lets flags win over file and environment configuration.
func applyOverrides(cfg *config.Config, inputPath, inputURL, outputDir, basePackage, strategy string) {
	if inputPath != "" {
		cfg.Input.Path = inputPath
	}

	if inputURL != "" {
		cfg.Input.URL = inputURL
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	if basePackage != "" {
		cfg.Output.BasePackage = basePackage
	}

	if strategy != "" {
		cfg.Output.Strategy = strategy
	}
}
