package fechas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangoInclusivo(t *testing.T) {
	inicio, fin, err := RangoInclusivo("2025-01-13", "2025-01-19")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local), inicio)
	assert.Equal(t, time.Date(2025, time.January, 19, 23, 59, 59, 999000000, time.Local), fin)
}

func TestRangoInclusivo_SingleDay(t *testing.T) {
	inicio, fin, err := RangoInclusivo("2025-06-01", "2025-06-01")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local), inicio)
	assert.Equal(t, time.Date(2025, time.June, 1, 23, 59, 59, 999000000, time.Local), fin)
	assert.True(t, fin.After(inicio))
}

func TestRangoInclusivo_OverflowNormalizes(t *testing.T) {
	// Day 32 of January rolls over to February 1st instead of erroring,
	// matching time.Date semantics.
	inicio, _, err := RangoInclusivo("2025-01-32", "2025-01-32")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local), inicio)

	// Month 13 rolls over to January of the next year.
	inicio, _, err = RangoInclusivo("2025-13-01", "2025-13-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local), inicio)
}

func TestRangoInclusivo_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		inicio string
		fin    string
	}{
		{"empty start", "", "2025-01-19"},
		{"empty end", "2025-01-13", ""},
		{"missing components", "2025-01", "2025-01-19"},
		{"non numeric year", "abcd-01-13", "2025-01-19"},
		{"non numeric day", "2025-01-xx", "2025-01-19"},
		{"garbage", "hoy", "mañana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := RangoInclusivo(tt.inicio, tt.fin)
			assert.Error(t, err)
		})
	}
}

func TestRangoDelDia(t *testing.T) {
	ahora := time.Date(2025, time.March, 10, 14, 35, 12, 0, time.Local)
	inicio, fin := RangoDelDia(ahora)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local), inicio)
	assert.Equal(t, time.Date(2025, time.March, 10, 23, 59, 59, 999000000, time.Local), fin)
}

func TestFormatoLargoEs(t *testing.T) {
	tests := []struct {
		fecha    time.Time
		esperado string
	}{
		{time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), "15 de enero de 2025"},
		{time.Date(2024, time.September, 1, 10, 30, 0, 0, time.UTC), "1 de septiembre de 2024"},
		{time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC), "31 de diciembre de 2023"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.esperado, FormatoLargoEs(tt.fecha))
	}
}
