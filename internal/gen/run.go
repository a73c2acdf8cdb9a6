package gen

import (
	"go.uber.org/zap"

	"proguard-codegen/internal/diagnostic"
	"proguard-codegen/internal/mapping"
)

// RunReport summarizes one generation run.
type RunReport struct {
	// Generated is the number of class artifacts written.
	Generated int
	// Skipped is the number of classes dropped because of path collisions.
	Skipped int
}

// Run generates the full source tree for table under config.OutputDir and
// writes the run manifest. Per-class problems are collected and surfaced as
// one aggregated error after the remaining classes have been generated;
// only output-root I/O failures abort mid-run.
func Run(table mapping.Table, config GeneratorConfig, logger *zap.Logger) (RunReport, error) {
	var (
		report RunReport
		diags  diagnostic.Diagnostics
	)

	generator := NewGenerator(config, &diags)
	writer := NewWriter(config.OutputDir, &diags)

	if err := writer.Reset(); err != nil {
		return report, err
	}

	records := generator.Records(table)
	manifest := Manifest{
		BasePackage: config.BasePackage,
		Strategy:    config.Strategy.String(),
	}

	for _, rec := range records {
		content, err := generator.Render(rec)
		if err != nil {
			return report, err
		}

		written, err := writer.Write(rec, content)
		if err != nil {
			return report, err
		}

		if !written {
			report.Skipped++

			continue
		}

		report.Generated++
		manifest.Classes = append(manifest.Classes, ManifestEntry{
			Original:   rec.OriginalName,
			Obfuscated: rec.ObfuscatedName,
			Artifact:   rec.RelPath,
		})
	}

	if err := WriteManifest(config.OutputDir, manifest); err != nil {
		return report, err
	}

	for _, w := range diags.Warnings {
		logger.Warn("generation warning", zap.String("diagnostic", w.String()))
	}

	for _, e := range diags.Errors {
		logger.Error("generation error", zap.String("diagnostic", e.String()))
	}

	return report, diags.Error()
}
