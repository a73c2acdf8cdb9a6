package gen

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"proguard-codegen/internal/diagnostic"
	"proguard-codegen/internal/mapping"
	"proguard-codegen/internal/naming"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// BasePackage is the dot-separated package prefix prepended to every
	// generated class's package. May be empty.
	BasePackage string
	// OutputDir is the root directory generated sources are written under.
	OutputDir string
	// Strategy selects plain or inlining-resistant constant emission.
	Strategy EmissionStrategy
}

// Constant is one generated lookup constant: the deduplicated final name and
// the obfuscated symbol it resolves to.
type Constant struct {
	Name  string
	Value string
}

// ClassRecord is the fully named, collision-free form of one mapped class,
// ready for rendering.
type ClassRecord struct {
	// OriginalName is the class's original fully-qualified name, verbatim.
	OriginalName string
	// ObfuscatedName is the obfuscated class name, possibly empty.
	ObfuscatedName string
	// PackageName is the full dotted Java package of the generated class,
	// empty when there is none.
	PackageName string
	// SimpleName is the sanitized simple class name.
	SimpleName string
	// RelPath is the artifact path relative to the output root.
	RelPath string
	// Fields and Methods hold the constants in emission order.
	Fields  []Constant
	Methods []Constant
}

// Generator builds class records from a parsed mapping table.
type Generator struct {
	config GeneratorConfig
	diags  *diagnostic.Diagnostics
}

// NewGenerator creates a Generator. Non-fatal issues found while building
// records are collected into diags.
func NewGenerator(config GeneratorConfig, diags *diagnostic.Diagnostics) *Generator {
	return &Generator{config: config, diags: diags}
}

// Records converts the table into class records, sorted lexicographically by
// original name so output order is stable across runs.
func (g *Generator) Records(table mapping.Table) []ClassRecord {
	records := make([]ClassRecord, 0, len(table))

	for _, name := range table.SortedNames() {
		records = append(records, g.record(table[name]))
	}

	return records
}

func (g *Generator) record(cm *mapping.ClassMapping) ClassRecord {
	segments := naming.ClassSegments(cm.OriginalName)
	simpleName := segments[len(segments)-1]

	packageParts := basePackageParts(g.config.BasePackage)
	packageParts = append(packageParts, segments[:len(segments)-1]...)

	relPath := filepath.Join(append(append([]string{}, packageParts...), simpleName+".java")...)

	return ClassRecord{
		OriginalName:   cm.OriginalName,
		ObfuscatedName: cm.ObfuscatedName,
		PackageName:    strings.Join(packageParts, "."),
		SimpleName:     simpleName,
		RelPath:        relPath,
		Fields:         g.fieldConstants(cm),
		Methods:        g.methodConstants(cm),
	}
}

// fieldConstants names the class's field constants. Fields are processed in
// lexicographic order of their named form; that order decides both which
// duplicate keeps the bare name and the emission order.
func (g *Generator) fieldConstants(cm *mapping.ClassMapping) []Constant {
	fields := make([]mapping.FieldMapping, len(cm.Fields))
	copy(fields, cm.Fields)

	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].NamedName < fields[j].NamedName
	})

	deduper := naming.NewDeduper()

	var constants []Constant

	for _, f := range fields {
		base := naming.ConstantName(f.NamedName)
		if base == "" {
			g.diags.AddWarning("empty-constant-name",
				"field "+strconv.Quote(f.NamedName)+" has no usable constant name, skipped",
				cm.OriginalName, "")

			continue
		}

		constants = append(constants, Constant{
			Name:  deduper.Assign(base),
			Value: f.ObfuscatedName,
		})
	}

	return constants
}

// methodConstants names the class's method constants. Methods are ordered by
// (named name, signature); the parameter-derived suffix separates overloads
// before the deduper sees them.
func (g *Generator) methodConstants(cm *mapping.ClassMapping) []Constant {
	methods := make([]mapping.MethodMapping, len(cm.Methods))
	copy(methods, cm.Methods)

	sort.SliceStable(methods, func(i, j int) bool {
		if methods[i].NamedName != methods[j].NamedName {
			return methods[i].NamedName < methods[j].NamedName
		}

		return methods[i].Signature < methods[j].Signature
	})

	deduper := naming.NewDeduper()

	var constants []Constant

	for _, m := range methods {
		base := naming.ConstantName(m.NamedName)
		if base == "" {
			g.diags.AddWarning("empty-constant-name",
				"method "+strconv.Quote(m.NamedName)+" has no usable constant name, skipped",
				cm.OriginalName, "")

			continue
		}

		constants = append(constants, Constant{
			Name:  deduper.Assign(base + naming.ParamSuffix(m.Signature)),
			Value: m.ObfuscatedName,
		})
	}

	return constants
}

// basePackageParts splits the base package, dropping empty segments so a
// leading/trailing dot in configuration cannot produce an empty directory.
func basePackageParts(basePackage string) []string {
	var parts []string

	for _, p := range strings.Split(basePackage, ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return parts
}
