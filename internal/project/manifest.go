// Package project locates and parses war.toml, the optional project
// manifest. A manifest lets `warlang build` run without arguments:
//
//	[package]
//	name = "campaign"
//	entry = "main.war"
//
//	[build]
//	out = "dist"
//	sources = ["extra/*.war"]
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const ManifestName = "war.toml"

// Manifest is the parsed war.toml.
type Manifest struct {
	// Name labels the project; defaults to the entry file's stem.
	Name string
	// Entry is the main source file, relative to the manifest dir.
	Entry string
	// Out is the output directory, relative to the manifest dir.
	Out string
	// Sources lists additional source globs to build alongside Entry.
	Sources []string
	// Dir is the directory the manifest was loaded from.
	Dir string
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrEntryMissing indicates that [package].entry is missing.
	ErrEntryMissing = errors.New("missing [package].entry")
)

type manifestFile struct {
	Package struct {
		Name  string `toml:"name"`
		Entry string `toml:"entry"`
	} `toml:"package"`
	Build struct {
		Out     string   `toml:"out"`
		Sources []string `toml:"sources"`
	} `toml:"build"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	entry := strings.TrimSpace(cfg.Package.Entry)
	if !meta.IsDefined("package", "entry") || entry == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrEntryMissing)
	}

	name := strings.TrimSpace(cfg.Package.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(entry), filepath.Ext(entry))
	}
	return &Manifest{
		Name:    name,
		Entry:   entry,
		Out:     strings.TrimSpace(cfg.Build.Out),
		Sources: cfg.Build.Sources,
		Dir:     filepath.Dir(path),
	}, nil
}

// SourcePaths expands Entry plus the Sources globs into concrete file
// paths, deduplicated, entry first.
func (m *Manifest) SourcePaths() ([]string, error) {
	seen := map[string]bool{}
	paths := []string{filepath.Join(m.Dir, m.Entry)}
	seen[paths[0]] = true

	for _, pattern := range m.Sources {
		matches, err := filepath.Glob(filepath.Join(m.Dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad sources pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}
	return paths, nil
}

// OutputPath maps a source path to its output file under Out (or next
// to the source when Out is empty).
func (m *Manifest) OutputPath(srcPath string) string {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath)) + ".py"
	if m.Out == "" {
		return filepath.Join(filepath.Dir(srcPath), base)
	}
	return filepath.Join(m.Dir, m.Out, base)
}
