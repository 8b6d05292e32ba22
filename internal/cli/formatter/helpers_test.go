package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0h"},
		{-1, "0h"},
		{0.5, "30m"},
		{1, "1h"},
		{1.5, "1h 30m"},
		{2.25, "2h 15m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHours(tt.hours))
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Name"},
		[][]string{{"1", "Calculus"}, {"2", "Physics"}},
	)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Calculus")
	assert.Contains(t, out, "Physics")
}

func TestRenderProgressClamps(t *testing.T) {
	assert.NotEmpty(t, RenderProgress(-0.5, 10))
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
}

func TestRenderHourBarZero(t *testing.T) {
	out := RenderHourBar(0, 8, 10)
	assert.NotContains(t, out, filledBlock)
}
