package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praetorian-inc/backtrack/pkg/harness"
	"github.com/praetorian-inc/backtrack/pkg/store"
)

// resetMeasureFlags restores flag defaults between tests.
func resetMeasureFlags() {
	measureEngine = "backtracking"
	measureMultipliers = harness.DefaultMultipliers()
	measureTimeout = 0
	measureTolerant = false
	measureFormat = "text"
	measureColor = "never"
	measureDB = ""
}

func TestRunMeasure_TextReports(t *testing.T) {
	resetMeasureFlags()
	defer resetMeasureFlags()
	measureMultipliers = []int{1, 10, 100}

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runMeasure(cmd, nil))

	output := buf.String()
	assert.Equal(t, 3, strings.Count(output, "Multiplier: "))
	assert.Equal(t, 3, strings.Count(output, "------------------------------\n\n\n"))
	assert.Contains(t, output, "Multiplier: 1\n")
	assert.Contains(t, output, "Multiplier: 10\n")
	assert.Contains(t, output, "Multiplier: 100\n")
}

// The default run always produces six reports; the linear engine keeps the
// largest multiplier fast enough for a unit test.
func TestRunMeasure_DefaultMultipliersSixReports(t *testing.T) {
	resetMeasureFlags()
	defer resetMeasureFlags()
	measureEngine = "linear"

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runMeasure(cmd, nil))

	blocks := strings.Split(strings.TrimSuffix(buf.String(), "\n\n\n"), "------------------------------\n\n\n")
	require.Len(t, blocks, 6)

	for i, want := range []string{"1", "10", "100", "1000", "10000", "100000"} {
		lines := strings.Split(strings.TrimSuffix(blocks[i], "\n"), "\n")
		if i == len(blocks)-1 {
			lines = lines[:len(lines)-1] // trailing separator
		}
		require.Len(t, lines, 4, "block %d: %q", i, blocks[i])
		assert.Equal(t, "Multiplier: "+want, lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "Problematic Regex Time (ns): "))
		assert.True(t, strings.HasPrefix(lines[2], "Simple Regex Time (ns): "))
		assert.True(t, strings.HasPrefix(lines[3], "Ratio of Times: "))
	}
}

func TestRunMeasure_JSON(t *testing.T) {
	resetMeasureFlags()
	defer resetMeasureFlags()
	measureMultipliers = []int{0, 2}
	measureFormat = "json"

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runMeasure(cmd, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for i, want := range []float64{0, 2} {
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(lines[i]), &rec))
		assert.Equal(t, want, rec["multiplier"])
		assert.Equal(t, want*5, rec["input_length"])
		assert.GreaterOrEqual(t, rec["problematic_ns"].(float64), 0.0)
		assert.GreaterOrEqual(t, rec["simple_ns"].(float64), 0.0)
	}
}

func TestRunMeasure_PersistsRun(t *testing.T) {
	resetMeasureFlags()
	defer resetMeasureFlags()
	measureMultipliers = []int{1, 10}
	measureDB = filepath.Join(t.TempDir(), "runs.db")

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, runMeasure(cmd, nil))

	s, err := store.New(store.Config{Path: measureDB})
	require.NoError(t, err)
	defer s.Close()

	runs, err := store.LoadRuns(s)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "backtracking", string(runs[0].Engine))
	require.Len(t, runs[0].Measurements, 2)
	assert.Equal(t, 10, runs[0].Measurements[1].Multiplier)
}

func TestRunMeasure_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		set     func()
		wantErr string
	}{
		{"engine", func() { measureEngine = "pcre" }, "unknown engine"},
		{"format", func() { measureFormat = "sarif" }, "unknown output format"},
		{"multiplier", func() { measureMultipliers = []int{1, -1} }, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetMeasureFlags()
			defer resetMeasureFlags()
			tt.set()

			var buf bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&buf)

			err := runMeasure(cmd, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, buf.String())
		})
	}
}

func TestRootCommand_Execute(t *testing.T) {
	resetMeasureFlags()
	defer resetMeasureFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"--multipliers", "1,10", "--engine", "backtracking", "--format", "text", "--quiet"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, 2, strings.Count(out.String(), "Ratio of Times: "))
	assert.Empty(t, errOut.String())
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"extra"})
	defer rootCmd.SetArgs(nil)

	require.Error(t, rootCmd.Execute())
}
