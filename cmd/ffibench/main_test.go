package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/ffibench-go/internal/report"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRunThenReport(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, logs, err := execute(t, "run",
		"--iterations", "3", "--warmup", "1",
		"--category", "Function Call Overhead",
		"--output", "results.toml")
	require.NoError(t, err, logs)
	assert.Contains(t, out, "noop(42)")
	assert.Contains(t, out, "Speedup by benchmark")
	assert.Contains(t, logs, "results written")

	res, err := report.Load(filepath.Join(dir, "results.toml"))
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	assert.Equal(t, 3, res.Metadata.Iterations)
	assert.Equal(t, []string{"compiled", "dynamic"}, res.Metadata.Adapters)

	out, logs, err = execute(t, "report", "results.toml", "--no-render", "--report-output", "report.md")
	require.NoError(t, err, logs)
	assert.Contains(t, out, "Function Call Overhead")

	md, err := os.ReadFile(filepath.Join(dir, "report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# compiled vs dynamic Binding Benchmark Report")
	assert.Contains(t, string(md), "add_numbers(100, 200)")
}

func TestReportRenders(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, logs, err := execute(t, "run", "-n", "2", "--warmup", "0", "--filter", "popcount", "-o", "r.json")
	require.NoError(t, err, logs)

	out, logs, err := execute(t, "report", "r.json")
	require.NoError(t, err, logs)
	assert.Contains(t, out, "Overall Statistics")
	_, err = os.Stat(filepath.Join(dir, "benchmark_report.md"))
	require.NoError(t, err)
}

func TestRunRejectsBadSettings(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "run", "--filter", "no-such-benchmark")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--output", "../escape.json")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--output", "results.yaml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	_, _, err = execute(t, "run", "--iterations", "0")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--candidate", "compiled")
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, logs, err := execute(t, "verify")
	require.NoError(t, err, logs)
	assert.Contains(t, out, "compiled")
	assert.Contains(t, out, "compiled vs dynamic: 0 mismatches")

	out, logs, err = execute(t, "verify", "--all")
	require.NoError(t, err, logs)
	assert.Contains(t, out, "dynamic")
	assert.Contains(t, out, "cgo")
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Bitwise Operations")
	assert.Contains(t, out, "matrix_multiply(50x50)")
	assert.Contains(t, out, "size=50")
	assert.Contains(t, out, "33 benchmarks")

	out, _, err = execute(t, "list", "--category", "Pointer-Intensive")
	require.NoError(t, err)
	assert.Contains(t, out, "list_operations(1000)")
	assert.Contains(t, out, "1 benchmarks")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ffibench ")
	assert.Contains(t, out, "compiled  available")
	assert.Contains(t, out, "dynamic   available")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("ffibench.toml", []byte("filter = \"noop\"\n"), 0o600))

	out, _, err := execute(t, "list", "--config", "ffibench.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "noop(42)")
	assert.NotContains(t, out, "add_numbers")

	_, _, err = execute(t, "list", "--config", "missing.toml")
	require.Error(t, err)
}

func TestExitError(t *testing.T) {
	inner := errors.New("3 conformance checks failed")
	err := error(&ExitError{Code: 1, Err: inner})
	assert.Equal(t, "3 conformance checks failed", err.Error())
	assert.ErrorIs(t, err, inner)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)

	assert.Equal(t, "exit status 2", (&ExitError{Code: 2}).Error())
}
