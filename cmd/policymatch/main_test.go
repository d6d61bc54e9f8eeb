package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yashubustudio/policymatch/categorizer"
)

func writeInputs(t *testing.T) (refDir, motionsPath, codesPath string) {
	t.Helper()
	dir := t.TempDir()
	refDir = filepath.Join(dir, "refs")
	require.NoError(t, os.MkdirAll(refDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "manifesto.csv"),
		[]byte("text,code\nOpen markets and free trade,401\nExpand pensions and hospitals,504\n"), 0o644))
	motionsPath = filepath.Join(dir, "motions.csv")
	require.NoError(t, os.WriteFile(motionsPath,
		[]byte("id,title,text,code\n1,Pension motion,Raise pensions for hospitals,504\n2,Trade motion,Free trade with markets,401\n"), 0o644))
	codesPath = filepath.Join(dir, "codes.csv")
	require.NoError(t, os.WriteFile(codesPath,
		[]byte("code,name\n401,Free Market Economy\n504,Welfare State Expansion\n"), 0o644))
	return refDir, motionsPath, codesPath
}

func TestRunCommandWritesReport(t *testing.T) {
	chdir(t, t.TempDir())
	refDir, motionsPath, codesPath := writeInputs(t)
	out := filepath.Join(t.TempDir(), "report.json")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"run",
		"--references", refDir,
		"--motions", motionsPath,
		"--codes", codesPath,
		"--output", out,
		"--top-k", "2",
		"--summary=false",
	})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var report categorizer.Report
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.Motions, 2)
	assert.Equal(t, "504", report.Motions[0].Predicted)
	assert.Equal(t, "401", report.Motions[1].Predicted)
	assert.Equal(t, 2, report.MotionLevel.Correct)
	assert.Equal(t, "Welfare State Expansion", report.Motions[0].Sentences[0].Candidates[0].Name)
}

func TestRunCommandCSVToStdout(t *testing.T) {
	chdir(t, t.TempDir())
	refDir, motionsPath, _ := writeInputs(t)
	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"run", "--references", refDir, "--motions", motionsPath, "--format", "csv", "--summary=false"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "id,title,gold,predicted,match,sentences,sentence_matches")
	assert.Contains(t, stdout.String(), "1,Pension motion,504,504,true,1,1")
}

func TestRunCommandSummaryToErrWriter(t *testing.T) {
	chdir(t, t.TempDir())
	refDir, motionsPath, codesPath := writeInputs(t)
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"run", "--references", refDir, "--motions", motionsPath, "--codes", codesPath})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "motion-level agreement: 2/2 (100.00%)\n")
	assert.Contains(t, stderr.String(), "sentence-level agreement: 2/2 (100.00%)\n")
	assert.NotContains(t, stdout.String(), "agreement:")
}

func TestRunCommandConfigColumns(t *testing.T) {
	chdir(t, t.TempDir())
	t.Cleanup(func() { categorizer.SetColumnCandidates(categorizer.DefaultColumnCandidates()) })
	refDir, _, codesPath := writeInputs(t)
	dir := t.TempDir()
	motionsPath := filepath.Join(dir, "motions.csv")
	require.NoError(t, os.WriteFile(motionsPath,
		[]byte("motion_ref,title,text,cmp_label\n1,Pension motion,Raise pensions for hospitals,504\n"), 0o644))
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath,
		[]byte("columns:\n  id: [motion_ref]\n  code: [cmp_label]\n"), 0o644))

	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--config", configPath, "run",
		"--references", refDir, "--motions", motionsPath, "--codes", codesPath, "--summary=false"})
	require.NoError(t, cmd.Execute())

	var report categorizer.Report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	require.Len(t, report.Motions, 1)
	assert.Equal(t, "1", report.Motions[0].ID)
	assert.Equal(t, "504", report.Motions[0].Predicted)
}

func TestRunCommandRequiresInputs(t *testing.T) {
	chdir(t, t.TempDir())
	cmd := newRootCommand()
	cmd.SetArgs([]string{"run", "--motions", "motions.csv"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--references")
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"config", "init", path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "wrote "+path+"\n", stdout.String())

	cfg, err := categorizer.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.TopK)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
