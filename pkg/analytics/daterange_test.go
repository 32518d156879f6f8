package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"guia-compras/domain"
)

func TestResolveRangeDefaultsToThirtyDays(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, loc)

	for _, preset := range []string{"", "30days"} {
		r, err := ResolveRange(preset, "", "", now, loc)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, loc), r.Start)
		assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, loc), r.End)
	}
}

func TestResolveRangeYesterdayExcludesToday(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 0, 5, 0, 0, loc)

	r, err := ResolveRange("yesterday", "", "", now, loc)
	assert.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2024, 3, 14, 0, 0, 0, 0, loc)))
	assert.True(t, r.Contains(time.Date(2024, 3, 14, 23, 59, 59, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 3, 15, 0, 0, 0, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 3, 13, 23, 59, 59, 0, loc)))
}

func TestResolveRangePresetWidths(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, loc)

	cases := map[string]int{
		"today":   1,
		"7days":   7,
		"30days":  30,
		"90days":  90,
		"180days": 180,
		"365days": 365,
	}
	for preset, days := range cases {
		r, err := ResolveRange(preset, "", "", now, loc)
		assert.NoError(t, err, preset)
		assert.Equal(t, days, int(r.End.Sub(r.Start).Hours()/24), preset)
		assert.True(t, r.Contains(now), preset)
	}
}

func TestResolveRangeCustom(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, loc)

	r, err := ResolveRange("custom", "2024-01-10", "2024-01-20", now, loc)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, loc), r.Start)
	assert.Equal(t, time.Date(2024, 1, 21, 0, 0, 0, 0, loc), r.End)
	assert.True(t, r.Contains(time.Date(2024, 1, 20, 18, 0, 0, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 1, 21, 0, 0, 0, 0, loc)))

	// single-day custom range is valid
	r, err = ResolveRange("custom", "2024-01-10", "2024-01-10", now, loc)
	assert.NoError(t, err)
	assert.Equal(t, 24.0, r.End.Sub(r.Start).Hours())
}

func TestResolveRangeCustomInvalid(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, loc)

	cases := []struct{ from, to string }{
		{"", ""},
		{"2024-01-10", ""},
		{"", "2024-01-20"},
		{"10/01/2024", "2024-01-20"},
		{"2024-01-20", "2024-01-10"},
	}
	for _, tc := range cases {
		_, err := ResolveRange("custom", tc.from, tc.to, now, loc)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	}
}

func TestResolveRangeUnknownPreset(t *testing.T) {
	_, err := ResolveRange("fortnight", "", "", time.Now(), time.UTC)
	assert.ErrorIs(t, err, domain.ErrUnknownPreset)
}

func TestResolveRangeRespectsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	// 01:00 UTC is still the previous day in Sao Paulo (UTC-3)
	now := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	r, err := ResolveRange("today", "", "", now, loc)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, loc), r.Start)
}
