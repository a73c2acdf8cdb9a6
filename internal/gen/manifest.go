package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFilename is the name of the run manifest written at the output root.
const ManifestFilename = "manifest.yaml"

// Manifest lists every artifact produced by a run, for downstream tooling
// and for diffing one run against another.
type Manifest struct {
	BasePackage string          `yaml:"base_package,omitempty"`
	Strategy    string          `yaml:"strategy"`
	Classes     []ManifestEntry `yaml:"classes"`
}

// ManifestEntry describes one generated class artifact.
type ManifestEntry struct {
	Original   string `yaml:"original"`
	Obfuscated string `yaml:"obfuscated,omitempty"`
	Artifact   string `yaml:"artifact"`
}

// WriteManifest serializes the manifest to the output root.
func WriteManifest(root string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshalling manifest: %w", err)
	}

	path := filepath.Join(root, ManifestFilename)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}

	return nil
}
