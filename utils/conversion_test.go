package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLabelToMinutes(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"00:00", 0},
		{"09:15", 555},
		{"12:30", 750},
		{"23:45", 1425},
	}
	for _, tt := range tests {
		got, err := TimeLabelToMinutes(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestTimeLabelToMinutes_Rejects(t *testing.T) {
	for _, label := range []string{"", "9", "09:05", "09:16", "24:00", "noon", "09:00:00"} {
		_, err := TimeLabelToMinutes(label)
		assert.Error(t, err, label)
	}
}

func TestMinutesToTimeLabel_RoundTrips(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes += SlotMinutes {
		label := MinutesToTimeLabel(minutes)
		back, err := TimeLabelToMinutes(label)
		require.NoError(t, err, label)
		assert.Equal(t, minutes, back)
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-06-01"))
	assert.True(t, ValidDate("2024-02-29"))

	assert.False(t, ValidDate("2023-02-29"))
	assert.False(t, ValidDate("2024-13-01"))
	assert.False(t, ValidDate("01.06.2024"))
	assert.False(t, ValidDate("2024-6-1"))
	assert.False(t, ValidDate(""))
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 7.50, RoundPrice(7.5000001))
	assert.Equal(t, 24.00, RoundPrice(23.999999999))
	assert.Equal(t, 0.67, RoundPrice(2.0/3.0))
	assert.Equal(t, 0.0, RoundPrice(0))
}
