package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dna-sequence-pro/internal/logger"
	"dna-sequence-pro/internal/models"
	"dna-sequence-pro/internal/packager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppCmdFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dna-sequence-pro.yaml"),
		[]byte("appearance:\n  mode: light\nbatch:\n  char: G\n"), 0o644))

	var got models.WindowSettings
	cmd := newAppCmd(func(s models.WindowSettings, _ logger.Logger) error {
		got = s
		return nil
	})
	cmd.SetArgs([]string{"--color-theme", "green"})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, models.AppearanceLight, got.Appearance.Mode)
	assert.Equal(t, models.ColorThemeGreen, got.Appearance.ColorTheme)
	assert.Equal(t, "G", got.Batch.Char)
	assert.Equal(t, "10", got.Batch.Count)
}

func TestAppCmdRejectsBadAppearance(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := newAppCmd(func(models.WindowSettings, logger.Logger) error {
		t.Fatal("window must not start")
		return nil
	})
	cmd.SetArgs([]string{"--appearance", "sepia"})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetOut(&bytes.Buffer{})

	assert.ErrorContains(t, cmd.Execute(), "appearance.mode")
}

type stubRunner struct {
	bundleErr  error
	installErr error
}

func (s *stubRunner) Run(_ context.Context, dir, name string, args ...string) error {
	switch name {
	case packager.BundlerBinary:
		if s.bundleErr != nil {
			return s.bundleErr
		}
		return os.WriteFile(filepath.Join(dir, packager.AppName+".tar.xz"), nil, 0o644)
	case "go":
		if len(args) > 0 && args[0] == "install" {
			return s.installErr
		}
	}
	return nil
}

func (s *stubRunner) LookPath(name string) (string, error) {
	if s.installErr != nil {
		return "", errors.New("not found")
	}
	return "/bin/" + name, nil
}

func runPackager(t *testing.T, r packager.Runner) (string, string, error) {
	t.Helper()
	dir := t.TempDir()

	var out bytes.Buffer
	cmd := newPackagerCmd(r)
	cmd.SetArgs([]string{"--dir", dir, "--log-level", "error"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return dir, out.String(), err
}

func TestPackagerCmdSuccess(t *testing.T) {
	dir, out, err := runPackager(t, &stubRunner{})
	require.NoError(t, err)

	assert.Contains(t, out, "Build succeeded")
	assert.FileExists(t, filepath.Join(dir, packager.DistDirName, packager.AppName+".tar.xz"))
	assert.NoDirExists(t, filepath.Join(dir, packager.BuildDirName))
}

func TestPackagerCmdBundlerFailureIsNotAnError(t *testing.T) {
	dir, out, err := runPackager(t, &stubRunner{bundleErr: errors.New("exit status 2")})
	require.NoError(t, err)

	assert.Contains(t, out, "Build failed")
	assert.NoDirExists(t, filepath.Join(dir, packager.BuildDirName))
}

func TestPackagerCmdInstallFailureIsAnError(t *testing.T) {
	_, _, err := runPackager(t, &stubRunner{installErr: errors.New("offline")})
	assert.ErrorIs(t, err, packager.ErrDependencyInstall)
}

// chdir changes the working directory for the duration of the test,
// matching testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
