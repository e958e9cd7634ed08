// Package packager turns the sequence window into a standalone desktop
// bundle by driving the fyne packaging tool.
package packager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"dna-sequence-pro/internal/logger"
	"dna-sequence-pro/internal/timing"
)

const (
	AppName       = "DNA_Pro_Modern"
	AppID         = "com.dnasequencepro.app"
	BundlerBinary = "fyne"

	BuildDirName = "build"
	DistDirName  = "dist"
	SourceFile   = "main.go"
	MetadataFile = "FyneApp.toml"
	IconFile     = "Icon.png"
)

// Options locate the build. None of them reach the bundler's argument
// list except GOOS.
type Options struct {
	// Dir is the working directory, normally the module root.
	Dir string
	// Module is the import path the generated entry source imports.
	Module string
	// Version is stamped into the bundle metadata.
	Version string
	// GOOS selects the bundle flavour. Defaults to runtime.GOOS.
	GOOS string
}

// Result describes one packaging run.
type Result struct {
	Success   bool
	Artifacts []string
	// BundlerErr is set when the bundler exited unsuccessfully or its
	// artifacts could not be collected.
	BundlerErr error
}

// Packager runs the dependency check, source materialization, bundling
// and cleanup steps of one build.
type Packager struct {
	runner Runner
	logger logger.Logger
	out    io.Writer
	timer  *timing.Tracker
	deps   []Dependency
	opts   Options

	// ownsBuildDir is set when this run created the build directory.
	ownsBuildDir bool
}

// New creates a packager. Human-readable build messages go to out.
func New(runner Runner, log logger.Logger, out io.Writer, opts Options) *Packager {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Module == "" {
		opts.Module = "dna-sequence-pro"
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}

	return &Packager{
		runner: runner,
		logger: log,
		out:    out,
		timer:  timing.NewTracker(),
		deps:   DefaultDependencies(),
		opts:   opts,
	}
}

func (p *Packager) BuildDir() string { return filepath.Join(p.opts.Dir, BuildDirName) }
func (p *Packager) DistDir() string { return filepath.Join(p.opts.Dir, DistDirName) }
func (p *Packager) SourcePath() string { return filepath.Join(p.BuildDir(), SourceFile) }
func (p *Packager) MetadataPath() string { return filepath.Join(p.BuildDir(), MetadataFile) }
func (p *Packager) IconPath() string { return filepath.Join(p.BuildDir(), IconFile) }

// Timings exposes the per-step durations of the last run.
func (p *Packager) Timings() *timing.Tracker {
	return p.timer
}

// BundlerArgs is the fixed argument list passed to the bundler.
func BundlerArgs(goos string) []string {
	return []string{
		"package",
		"--os", goos,
		"--name", AppName,
		"--app-id", AppID,
		"--icon", IconFile,
		"--release",
	}
}

// Build runs one packaging pass. A dependency install failure is
// returned as an error wrapping ErrDependencyInstall. A bundler failure
// is reported on out and in the Result, not as an error, and so is a
// bundler run that leaves no artifact behind. The generated sources are
// removed whatever the outcome, and so is the build directory when this
// run created it.
func (p *Packager) Build(ctx context.Context) (*Result, error) {
	p.timer.Reset()
	p.ownsBuildDir = false

	if err := p.timer.Measure("dependencies", func() error {
		return p.EnsureDependencies(ctx)
	}); err != nil {
		fmt.Fprintf(p.out, "Unable to install build dependencies: %v\n", err)
		return nil, err
	}

	fmt.Fprintln(p.out, "\n=== Building DNA Sequence Pro application ===")

	defer func() {
		p.timer.Measure("cleanup", func() error {
			p.cleanup()
			return nil
		})
		p.logger.Info("Packager", "build finished", p.timer.Summary())
	}()

	if err := p.timer.Measure("materialize", p.materialize); err != nil {
		return nil, err
	}

	result := &Result{}
	err := p.timer.Measure("bundle", func() error {
		return p.runner.Run(ctx, p.BuildDir(), BundlerBinary, BundlerArgs(p.opts.GOOS)...)
	})
	if err != nil {
		p.reportFailure(result, "bundle", err, "Build failed, see the bundler output above.")
		return result, nil
	}

	artifacts, err := p.collectArtifacts()
	if err != nil {
		p.reportFailure(result, "collect", err, fmt.Sprintf("Build failed: %v", err))
		return result, nil
	}
	result.Success = true
	result.Artifacts = artifacts

	p.reportSuccess(artifacts)
	return result, nil
}

// collectArtifacts moves everything the bundler named after the app from
// the build directory into the dist directory.
func (p *Packager) collectArtifacts() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(p.BuildDir(), AppName+"*"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("bundler produced no %s artifact in %s", AppName, p.BuildDir())
	}

	if err := os.MkdirAll(p.DistDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create dist dir: %w", err)
	}

	artifacts := make([]string, 0, len(matches))
	for _, src := range matches {
		dst := filepath.Join(p.DistDir(), filepath.Base(src))
		if err := os.RemoveAll(dst); err != nil {
			return nil, fmt.Errorf("replace %s: %w", dst, err)
		}
		if err := os.Rename(src, dst); err != nil {
			return nil, fmt.Errorf("move artifact: %w", err)
		}
		artifacts = append(artifacts, dst)
	}
	return artifacts, nil
}

func (p *Packager) reportFailure(result *Result, step string, err error, message string) {
	result.BundlerErr = err
	p.logger.Error("Packager", err, map[string]interface{}{
		"step": step,
	})
	fmt.Fprintln(p.out, message)
}

func (p *Packager) reportSuccess(artifacts []string) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(p.out, "\n"+rule)
	fmt.Fprintln(p.out, "Build succeeded")
	for _, a := range artifacts {
		fmt.Fprintf(p.out, "Output: %s\n", a)
	}
	fmt.Fprintln(p.out, rule+"\n")
}

// cleanup removes the generated files, and the build directory when this
// run created it. Failures are logged and do not abort the run.
func (p *Packager) cleanup() {
	for _, path := range []string{p.SourcePath(), p.MetadataPath(), p.IconPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			p.logger.Warning("Packager", "failed to remove generated file", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
	}

	if !p.ownsBuildDir {
		return
	}
	if err := os.RemoveAll(p.BuildDir()); err != nil {
		p.logger.Warning("Packager", "failed to remove build directory", map[string]interface{}{
			"path":  p.BuildDir(),
			"error": err.Error(),
		})
	}
}
