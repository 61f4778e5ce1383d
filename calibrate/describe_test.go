package calibrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transitfit/domain/core"
)

func TestDescribe_SummarizesMatchSet(t *testing.T) {
	matches := []Match{
		{Alpha: 1.0, TauBarDays: 365.25},
		{Alpha: 2.0, TauBarDays: 730.50},
		{Alpha: 3.0, TauBarDays: 1095.75},
	}

	summary, err := Describe(matches)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 2.0, summary.AlphaMean, 1e-12)
	assert.Equal(t, 1.0, summary.AlphaMin)
	assert.Equal(t, 3.0, summary.AlphaMax)
	assert.InDelta(t, 730.50, summary.TauBarMeanDays, 1e-9)
	assert.Equal(t, 365.25, summary.TauBarMinDays)
	assert.Equal(t, 1095.75, summary.TauBarMaxDays)
}

func TestDescribe_EmptySetErrors(t *testing.T) {
	_, err := Describe(nil)
	require.Error(t, err)
	assert.True(t, core.IsInsufficientDataError(err))
}
