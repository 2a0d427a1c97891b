package extracting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

func validConfig() domain.ExtractionConfig {
	return domain.ExtractionConfig{
		ConnectionID:   "conn1",
		AccountID:      "987654",
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"impressions", "spend"},
		DateRange:      domain.DateRangeConfig{Preset: domain.PresetLast7Days},
	}
}

func TestValidate_ConfiguracaoValidaPassa(t *testing.T) {
	validator := NewValidator(catalog.New())

	assert.NoError(t, validator.Validate(validConfig()))
}

func TestValidate_FalhasDeConfiguracao(t *testing.T) {
	validator := NewValidator(catalog.New())

	tests := []struct {
		name   string
		mutate func(cfg *domain.ExtractionConfig)
	}{
		{
			name:   "sem conexão",
			mutate: func(cfg *domain.ExtractionConfig) { cfg.ConnectionID = "" },
		},
		{
			name:   "sem conta de anúncios",
			mutate: func(cfg *domain.ExtractionConfig) { cfg.AccountID = "" },
		},
		{
			name:   "nível desconhecido",
			mutate: func(cfg *domain.ExtractionConfig) { cfg.Level = "keyword" },
		},
		{
			name:   "nenhum campo selecionado",
			mutate: func(cfg *domain.ExtractionConfig) { cfg.SelectedFields = nil },
		},
		{
			name:   "campo desconhecido",
			mutate: func(cfg *domain.ExtractionConfig) { cfg.SelectedFields = []string{"impressions", "mindshare"} },
		},
		{
			name: "campo indisponível no nível",
			mutate: func(cfg *domain.ExtractionConfig) {
				// ad_name só existe no nível ad
				cfg.SelectedFields = []string{"ad_name"}
			},
		},
		{
			name:   "breakdown desconhecido",
			mutate: func(cfg *domain.ExtractionConfig) { cfg.Breakdowns = []string{"zodiac_sign"} },
		},
		{
			name:   "breakdowns demais",
			mutate: func(cfg *domain.ExtractionConfig) { cfg.Breakdowns = []string{"age", "gender", "country"} },
		},
		{
			name:   "preset desconhecido",
			mutate: func(cfg *domain.ExtractionConfig) { cfg.DateRange.Preset = "next_week" },
		},
		{
			name: "custom sem datas",
			mutate: func(cfg *domain.ExtractionConfig) {
				cfg.DateRange = domain.DateRangeConfig{Preset: domain.PresetCustom}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := validator.Validate(cfg)

			require.Error(t, err)
			assert.True(t, domain.IsConfigurationError(err))
		})
	}
}

func TestValidate_IncompatibilidadeDeBreakdownsESimetrica(t *testing.T) {
	validator := NewValidator(catalog.New())

	// region declara country como incompatível; country não declara region.
	// A validação precisa falhar nas duas ordens de seleção.
	for _, breakdowns := range [][]string{
		{"region", "country"},
		{"country", "region"},
	} {
		cfg := validConfig()
		cfg.Breakdowns = breakdowns

		err := validator.Validate(cfg)

		require.Error(t, err, "ordem %v", breakdowns)
		assert.True(t, domain.IsConfigurationError(err))
	}
}

func TestValidate_BreakdownsCompativeisPassam(t *testing.T) {
	validator := NewValidator(catalog.New())

	cfg := validConfig()
	cfg.Breakdowns = []string{"age", "gender"}

	assert.NoError(t, validator.Validate(cfg))
}
