package extracting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolveDateRange_Presets(t *testing.T) {
	// Quarta-feira, meio do mês e do trimestre
	now := time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		preset        domain.DatePreset
		includeToday  bool
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "today",
			preset:        domain.PresetToday,
			expectedStart: date(2024, 5, 15),
			expectedEnd:   date(2024, 5, 15),
		},
		{
			name:          "yesterday",
			preset:        domain.PresetYesterday,
			expectedStart: date(2024, 5, 14),
			expectedEnd:   date(2024, 5, 14),
		},
		{
			name:          "last_7_days sem o dia de hoje",
			preset:        domain.PresetLast7Days,
			expectedStart: date(2024, 5, 8),
			expectedEnd:   date(2024, 5, 14),
		},
		{
			name:          "last_7_days incluindo hoje",
			preset:        domain.PresetLast7Days,
			includeToday:  true,
			expectedStart: date(2024, 5, 9),
			expectedEnd:   date(2024, 5, 15),
		},
		{
			name:          "last_30_days sem o dia de hoje",
			preset:        domain.PresetLast30Days,
			expectedStart: date(2024, 4, 15),
			expectedEnd:   date(2024, 5, 14),
		},
		{
			name:          "this_week começa no domingo",
			preset:        domain.PresetThisWeek,
			expectedStart: date(2024, 5, 12),
			expectedEnd:   date(2024, 5, 14),
		},
		{
			name:          "last_week é a semana anterior completa",
			preset:        domain.PresetLastWeek,
			expectedStart: date(2024, 5, 5),
			expectedEnd:   date(2024, 5, 11),
		},
		{
			name:          "this_month",
			preset:        domain.PresetThisMonth,
			expectedStart: date(2024, 5, 1),
			expectedEnd:   date(2024, 5, 14),
		},
		{
			name:          "last_month é o mês anterior completo",
			preset:        domain.PresetLastMonth,
			expectedStart: date(2024, 4, 1),
			expectedEnd:   date(2024, 4, 30),
		},
		{
			name:          "this_quarter",
			preset:        domain.PresetThisQuarter,
			expectedStart: date(2024, 4, 1),
			expectedEnd:   date(2024, 5, 14),
		},
		{
			name:          "last_quarter é o trimestre anterior completo",
			preset:        domain.PresetLastQuarter,
			expectedStart: date(2024, 1, 1),
			expectedEnd:   date(2024, 3, 31),
		},
		{
			name:          "this_year",
			preset:        domain.PresetThisYear,
			expectedStart: date(2024, 1, 1),
			expectedEnd:   date(2024, 5, 14),
		},
		{
			name:          "last_year é o ano anterior completo",
			preset:        domain.PresetLastYear,
			expectedStart: date(2023, 1, 1),
			expectedEnd:   date(2023, 12, 31),
		},
		{
			name:          "lifetime olha 36 meses para trás",
			preset:        domain.PresetLifetime,
			expectedStart: date(2021, 5, 15),
			expectedEnd:   date(2024, 5, 14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolveDateRange(domain.DateRangeConfig{
				Preset:       tt.preset,
				IncludeToday: tt.includeToday,
			}, now)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, resolved.StartDate)
			assert.Equal(t, tt.expectedEnd, resolved.EndDate)
		})
	}
}

func TestResolveDateRange_Deterministico(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	cfg := domain.DateRangeConfig{Preset: domain.PresetLast7Days}

	first, err := ResolveDateRange(cfg, now)
	require.NoError(t, err)

	second, err := ResolveDateRange(cfg, now)
	require.NoError(t, err)

	assert.Equal(t, first, second, "o mesmo preset no mesmo instante resolve sempre igual")
}

func TestResolveDateRange_Custom(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)

	start := date(2024, 3, 1)
	end := date(2024, 3, 31)

	resolved, err := ResolveDateRange(domain.DateRangeConfig{
		Preset:    domain.PresetCustom,
		StartDate: &start,
		EndDate:   &end,
	}, now)

	require.NoError(t, err)
	assert.Equal(t, start, resolved.StartDate)
	assert.Equal(t, end, resolved.EndDate)
}

func TestResolveDateRange_CustomSemDatasFalha(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	start := date(2024, 3, 1)

	_, err := ResolveDateRange(domain.DateRangeConfig{
		Preset:    domain.PresetCustom,
		StartDate: &start,
	}, now)

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestResolveDateRange_CustomInvertidoFalha(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	start := date(2024, 3, 31)
	end := date(2024, 3, 1)

	_, err := ResolveDateRange(domain.DateRangeConfig{
		Preset:    domain.PresetCustom,
		StartDate: &start,
		EndDate:   &end,
	}, now)

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestResolveDateRange_PresetDesconhecidoFalha(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)

	_, err := ResolveDateRange(domain.DateRangeConfig{Preset: "last_fortnight"}, now)

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}
