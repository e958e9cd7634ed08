package packager

import (
	"context"
	"errors"
	"fmt"
)

// ErrDependencyInstall is returned when a missing build dependency could
// not be installed. It is fatal to the packaging run.
var ErrDependencyInstall = errors.New("dependency installation failed")

const (
	FyneModule        = "fyne.io/fyne/v2"
	FyneModuleVersion = "v2.6.1"
	FyneToolsPackage  = "fyne.io/tools/cmd/fyne"
)

// Dependency is a build-time requirement with a presence probe and the
// command that installs it.
type Dependency struct {
	Name    string
	Probe   func(ctx context.Context, r Runner, dir string) error
	Install []string
}

// DefaultDependencies are the bundler CLI and the UI toolkit module.
func DefaultDependencies() []Dependency {
	return []Dependency{
		{
			Name: BundlerBinary,
			Probe: func(_ context.Context, r Runner, _ string) error {
				_, err := r.LookPath(BundlerBinary)
				return err
			},
			Install: []string{"go", "install", FyneToolsPackage + "@latest"},
		},
		{
			Name: FyneModule,
			Probe: func(ctx context.Context, r Runner, dir string) error {
				return r.Run(ctx, dir, "go", "list", "-m", FyneModule)
			},
			Install: []string{"go", "get", FyneModule + "@" + FyneModuleVersion},
		},
	}
}

// EnsureDependencies probes every dependency and installs the missing
// ones. The first failed install aborts with ErrDependencyInstall.
func (p *Packager) EnsureDependencies(ctx context.Context) error {
	for _, dep := range p.deps {
		p.logger.Info("Packager", "checking dependency", map[string]interface{}{
			"dependency": dep.Name,
		})

		if err := dep.Probe(ctx, p.runner, p.opts.Dir); err == nil {
			continue
		}

		p.logger.Info("Packager", "installing dependency", map[string]interface{}{
			"dependency": dep.Name,
			"command":    dep.Install,
		})

		if err := p.runner.Run(ctx, p.opts.Dir, dep.Install[0], dep.Install[1:]...); err != nil {
			p.logger.Error("Packager", err, map[string]interface{}{
				"dependency": dep.Name,
			})
			return fmt.Errorf("%w: %s: %v", ErrDependencyInstall, dep.Name, err)
		}
	}
	return nil
}
