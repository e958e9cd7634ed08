package packager

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dna-sequence-pro/internal/logger"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls   []call
	missing map[string]bool
	fail    map[string]error
	// onBundle runs in place of the bundler.
	onBundle func(dir string) error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})

	key := strings.Join(append([]string{name}, args...), " ")
	if err, ok := f.fail[key]; ok {
		return err
	}
	if name == BundlerBinary && f.onBundle != nil {
		return f.onBundle(dir)
	}
	return nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/local/bin/" + name, nil
}

func (f *fakeRunner) commands() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, strings.Join(append([]string{c.name}, c.args...), " "))
	}
	return out
}

func newTestPackager(t *testing.T, r *fakeRunner) (*Packager, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	p := New(r, logger.Nop(), &out, Options{Dir: t.TempDir(), GOOS: "linux"})
	return p, &out
}

func TestBuildSuccess(t *testing.T) {
	r := &fakeRunner{}
	p, out := newTestPackager(t, r)

	r.onBundle = func(dir string) error {
		assert.Equal(t, p.BuildDir(), dir)

		src, err := os.ReadFile(filepath.Join(dir, SourceFile))
		require.NoError(t, err)
		assert.Contains(t, string(src), `import "dna-sequence-pro/internal/cli"`)
		assert.FileExists(t, filepath.Join(dir, MetadataFile))
		assert.FileExists(t, filepath.Join(dir, IconFile))

		return os.WriteFile(filepath.Join(dir, AppName+".tar.xz"), []byte("bundle"), 0o644)
	}

	res, err := p.Build(context.Background())
	require.NoError(t, err)
	require.True(t, res.Success)

	want := filepath.Join(p.DistDir(), AppName+".tar.xz")
	assert.Equal(t, []string{want}, res.Artifacts)
	assert.FileExists(t, want)
	assert.Contains(t, out.String(), "Build succeeded")
	assert.Contains(t, out.String(), want)

	assert.NoFileExists(t, p.SourcePath())
	assert.NoDirExists(t, p.BuildDir())

	assert.Equal(t, "fyne package --os linux --name DNA_Pro_Modern --app-id com.dnasequencepro.app --icon Icon.png --release",
		r.commands()[len(r.calls)-1])
}

func TestBuildBundlerFailureStillCleansUp(t *testing.T) {
	r := &fakeRunner{
		onBundle: func(dir string) error {
			// leave partial output behind
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "tmp"), 0o755))
			return errors.New("exit status 1")
		},
	}
	p, out := newTestPackager(t, r)

	res, err := p.Build(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.EqualError(t, res.BundlerErr, "exit status 1")
	assert.Contains(t, out.String(), "Build failed")

	assert.NoFileExists(t, p.SourcePath())
	assert.NoDirExists(t, p.BuildDir())
	assert.NoDirExists(t, p.DistDir())
}

func TestBuildInstallsMissingDependencies(t *testing.T) {
	r := &fakeRunner{
		missing: map[string]bool{BundlerBinary: true},
		fail: map[string]error{
			"go list -m fyne.io/fyne/v2": errors.New("not a dependency"),
		},
		onBundle: func(dir string) error {
			return os.WriteFile(filepath.Join(dir, AppName+".exe"), nil, 0o644)
		},
	}
	p, _ := newTestPackager(t, r)

	res, err := p.Build(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)

	assert.Equal(t, []string{
		"go install fyne.io/tools/cmd/fyne@latest",
		"go list -m fyne.io/fyne/v2",
		"go get fyne.io/fyne/v2@v2.6.1",
		"fyne package --os linux --name DNA_Pro_Modern --app-id com.dnasequencepro.app --icon Icon.png --release",
	}, r.commands())
}

func TestBuildDependencyInstallFailureIsFatal(t *testing.T) {
	r := &fakeRunner{
		missing: map[string]bool{BundlerBinary: true},
		fail: map[string]error{
			"go install fyne.io/tools/cmd/fyne@latest": errors.New("network unreachable"),
		},
	}
	p, out := newTestPackager(t, r)

	res, err := p.Build(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrDependencyInstall)
	assert.Contains(t, out.String(), "Unable to install build dependencies")

	for _, c := range r.commands() {
		assert.NotContains(t, c, "fyne package")
	}
	assert.NoDirExists(t, p.BuildDir())
}

func TestBuildRecordsTimings(t *testing.T) {
	r := &fakeRunner{
		onBundle: func(dir string) error {
			return os.WriteFile(filepath.Join(dir, AppName+".exe"), nil, 0o644)
		},
	}
	p, _ := newTestPackager(t, r)

	_, err := p.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"bundle", "cleanup", "dependencies", "materialize"}, p.Timings().Operations())
}

func TestBuildWithoutArtifactIsReportedFailure(t *testing.T) {
	p, out := newTestPackager(t, &fakeRunner{})

	res, err := p.Build(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.ErrorContains(t, res.BundlerErr, "produced no")
	assert.Contains(t, out.String(), "Build failed")
	assert.NotContains(t, out.String(), "Build succeeded")
	assert.NoDirExists(t, p.BuildDir())
}

func TestBuildKeepsExistingBuildDir(t *testing.T) {
	r := &fakeRunner{
		onBundle: func(dir string) error {
			return os.WriteFile(filepath.Join(dir, AppName+".exe"), nil, 0o644)
		},
	}
	p, _ := newTestPackager(t, r)

	require.NoError(t, os.MkdirAll(p.BuildDir(), 0o755))
	keep := filepath.Join(p.BuildDir(), "keep.txt")
	require.NoError(t, os.WriteFile(keep, []byte("mine"), 0o644))

	res, err := p.Build(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)

	assert.DirExists(t, p.BuildDir())
	assert.FileExists(t, keep)
	assert.NoFileExists(t, p.SourcePath())
	assert.NoFileExists(t, p.MetadataPath())
	assert.NoFileExists(t, p.IconPath())
}

func TestDefaultMetadataEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), MetadataFile)
	require.NoError(t, writeMetadata(path, DefaultMetadata("2.0.0")))

	var got Metadata
	_, err := toml.DecodeFile(path, &got)
	require.NoError(t, err)
	assert.Equal(t, AppName, got.Details.Name)
	assert.Equal(t, AppID, got.Details.ID)
	assert.Equal(t, IconFile, got.Details.Icon)
	assert.Equal(t, "2.0.0", got.Details.Version)
	assert.Equal(t, 1, got.Details.Build)
}

func TestRenderEntrySource(t *testing.T) {
	src, err := RenderEntrySource("example.com/dna")
	require.NoError(t, err)
	assert.Contains(t, string(src), `import "example.com/dna/internal/cli"`)
	assert.Contains(t, string(src), "cli.ExecuteApp()")
}

func TestIcon(t *testing.T) {
	img := Icon()
	assert.Equal(t, iconSize, img.Bounds().Dx())
	assert.Equal(t, iconSize, img.Bounds().Dy())
}
