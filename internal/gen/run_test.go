package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"proguard-codegen/internal/mapping"
)

const sampleMapping = `# compiler: R8
a.b.Foo -> x:
    int bar -> y
    void baz() -> z
    void baz(int) -> z2
a.b.Outer$Inner -> w:
    boolean flag -> f
util.Strings -> s:
`

func TestRunGeneratesTree(t *testing.T) {
	table, stats := mapping.Parse([]byte(sampleMapping))
	require.Equal(t, 3, stats.Classes)

	outputDir := filepath.Join(t.TempDir(), "out")
	config := GeneratorConfig{
		BasePackage: "base",
		OutputDir:   outputDir,
		Strategy:    StrategyStaticInit,
	}

	report, err := Run(table, config, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, RunReport{Generated: 3}, report)

	fooPath := filepath.Join(outputDir, "base", "a", "b", "Foo.java")
	require.FileExists(t, fooPath)

	src, err := os.ReadFile(fooPath)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package base.a.b;")
	assert.Contains(t, string(src), "static {")
	assert.Contains(t, string(src), `BAZ_INT = "z2";`)

	assert.FileExists(t, filepath.Join(outputDir, "base", "a", "b", "Outer_Inner.java"))
	assert.FileExists(t, filepath.Join(outputDir, "base", "util", "Strings.java"))
}

func TestRunWritesManifest(t *testing.T) {
	table, _ := mapping.Parse([]byte(sampleMapping))

	outputDir := filepath.Join(t.TempDir(), "out")
	config := GeneratorConfig{
		BasePackage: "base",
		OutputDir:   outputDir,
		Strategy:    StrategyPlain,
	}

	_, err := Run(table, config, zap.NewNop())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, ManifestFilename))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))

	assert.Equal(t, "base", m.BasePackage)
	assert.Equal(t, "plain", m.Strategy)
	require.Len(t, m.Classes, 3, spew.Sdump(m))

	// Lexicographic by original name.
	assert.Equal(t, "a.b.Foo", m.Classes[0].Original)
	assert.Equal(t, "x", m.Classes[0].Obfuscated)
	assert.Equal(t, filepath.Join("base", "a", "b", "Foo.java"), m.Classes[0].Artifact)
	assert.Equal(t, "a.b.Outer$Inner", m.Classes[1].Original)
	assert.Equal(t, "util.Strings", m.Classes[2].Original)
}

func TestRunClearsPreviousOutput(t *testing.T) {
	table, _ := mapping.Parse([]byte(sampleMapping))

	outputDir := filepath.Join(t.TempDir(), "out")
	stale := filepath.Join(outputDir, "base", "gone", "Removed.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	_, err := Run(table, GeneratorConfig{BasePackage: "base", OutputDir: outputDir}, zap.NewNop())
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
}

func TestRunReportsPathCollision(t *testing.T) {
	// Distinct original classes that sanitize to the same artifact path.
	table, _ := mapping.Parse([]byte("p.Cla$h -> a:\np.Cla-h -> b:\n"))

	outputDir := filepath.Join(t.TempDir(), "out")

	report, err := Run(table, GeneratorConfig{OutputDir: outputDir}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output-path-collision")
	assert.Equal(t, RunReport{Generated: 1, Skipped: 1}, report)

	// The run still produced the surviving class and the manifest.
	assert.FileExists(t, filepath.Join(outputDir, "p", "Cla_h.java"))

	data, readErr := os.ReadFile(filepath.Join(outputDir, ManifestFilename))
	require.NoError(t, readErr)

	var m Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	require.Len(t, m.Classes, 1)
}
