// Package integration provides CLI and store integration tests for
// snakecube.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// snakecubeBin is the path to the built snakecube binary.
	snakecubeBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// findProjectRoot finds the project root by walking up to the first go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// testEnv is one isolated CLI environment: its own config and data dirs.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

// cliResult holds the output of one CLI invocation.
type cliResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("snakecube binary not built: %v", buildErr)
	}
	return &testEnv{
		t:         t,
		configDir: t.TempDir(),
		dataDir:   t.TempDir(),
	}
}

// run invokes the snakecube binary with the env's config and data dirs.
func (e *testEnv) run(args ...string) cliResult {
	e.t.Helper()

	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	cmd := exec.Command(snakecubeBin, full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("running %v: %v", args, err)
	}

	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode}
}

// mustRun invokes the binary and fails the test on a nonzero exit.
func (e *testEnv) mustRun(args ...string) cliResult {
	e.t.Helper()
	result := e.run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("command %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
