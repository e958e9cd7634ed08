package packager

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/BurntSushi/toml"
)

//go:embed entry_main.go.tmpl
var entrySource string

var entryTemplate = template.Must(template.New("entry").Parse(entrySource))

// Metadata is the bundler's FyneApp.toml.
type Metadata struct {
	Website string          `toml:"Website,omitempty"`
	Details MetadataDetails `toml:"Details"`
}

type MetadataDetails struct {
	Icon    string `toml:"Icon"`
	Name    string `toml:"Name"`
	ID      string `toml:"ID"`
	Version string `toml:"Version"`
	Build   int    `toml:"Build"`
}

// RenderEntrySource returns the entry point written into the build
// directory for module.
func RenderEntrySource(module string) ([]byte, error) {
	var buf bytes.Buffer
	if err := entryTemplate.Execute(&buf, struct{ Module string }{module}); err != nil {
		return nil, fmt.Errorf("render entry source: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultMetadata describes the bundle produced by the packager.
func DefaultMetadata(version string) Metadata {
	return Metadata{
		Details: MetadataDetails{
			Icon:    IconFile,
			Name:    AppName,
			ID:      AppID,
			Version: version,
			Build:   1,
		},
	}
}

func writeMetadata(path string, meta Metadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(meta); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// materialize writes the entry source, metadata and icon into the build
// directory.
func (p *Packager) materialize() error {
	_, err := os.Stat(p.BuildDir())
	switch {
	case errors.Is(err, os.ErrNotExist):
		p.ownsBuildDir = true
	case err != nil:
		return fmt.Errorf("stat build dir: %w", err)
	}

	if err := os.MkdirAll(p.BuildDir(), 0o755); err != nil {
		return fmt.Errorf("create build dir: %w", err)
	}

	src, err := RenderEntrySource(p.opts.Module)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.SourcePath(), src, 0o644); err != nil {
		return fmt.Errorf("write source: %w", err)
	}

	if err := writeMetadata(p.MetadataPath(), DefaultMetadata(p.opts.Version)); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	if err := writeIcon(p.IconPath()); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}

	p.logger.Debug("Packager", "build sources written", map[string]interface{}{
		"dir": p.BuildDir(),
	})
	return nil
}
