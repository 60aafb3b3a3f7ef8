package backtrack

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	m, err := Measure(10)
	require.NoError(t, err)

	assert.Equal(t, 10, m.Multiplier)
	assert.Equal(t, 50, m.InputLength)
	assert.Equal(t, EngineBacktracking, m.Engine)
	assert.GreaterOrEqual(t, m.Problematic, time.Duration(0))
	assert.GreaterOrEqual(t, m.Simple, time.Duration(0))
}

func TestMeasure_LinearEngine(t *testing.T) {
	m, err := Measure(0, WithEngine(EngineLinear))
	require.NoError(t, err)
	assert.Equal(t, EngineLinear, m.Engine)
	assert.Equal(t, 0, m.InputLength)
}

func TestNewHarness_Reuse(t *testing.T) {
	h, err := NewHarness(WithTimeout(time.Minute))
	require.NoError(t, err)
	defer h.Close()

	for _, multiplier := range []int{1, 2, 3} {
		m, err := h.Measure(multiplier)
		require.NoError(t, err)
		assert.Equal(t, 5*multiplier, m.InputLength)
	}
}

func TestRunMultipliers(t *testing.T) {
	var buf bytes.Buffer
	err := RunMultipliers(context.Background(), &buf, []int{1, 10}, WithEngine(EngineLinear))
	require.NoError(t, err)

	output := buf.String()
	assert.Equal(t, 2, strings.Count(output, "Multiplier: "))
	assert.True(t, strings.HasPrefix(output, "Multiplier: 1\nProblematic Regex Time (ns): "))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Run(ctx, &buf)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
