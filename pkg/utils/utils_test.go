package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{"Data simples", "2024-05-15", ptrTime(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)), false},
		{"Timestamp RFC3339 com fuso", "2024-05-15T22:30:00-03:00", ptrTime(time.Date(2024, 5, 16, 1, 30, 0, 0, time.UTC)), false},
		{"Timestamp sem fuso", "2024-05-15 08:00:00", ptrTime(time.Date(2024, 5, 15, 8, 0, 0, 0, time.UTC)), false},
		{"Vazio retorna nil", "", nil, false},
		{"Formato inválido", "15/05/2024", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundAndPercent(t *testing.T) {
	assert.Equal(t, -33.33, RoundWithTwoDecimalPlace(-33.333333))
	assert.Equal(t, 66.7, RoundWithOneDecimalPlace(66.66666))
	assert.Equal(t, 0.0, Round(0, 2))
	assert.InDelta(t, 40.0, Percent(400, 1000), 1e-9)
	assert.Equal(t, 0.0, Percent(400, 0))
}

func TestNewBatchID(t *testing.T) {
	id, err := NewBatchID()
	require.NoError(t, err)
	assert.Len(t, id, 8)
	assert.Regexp(t, `^[0-9a-z]+$`, id)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
