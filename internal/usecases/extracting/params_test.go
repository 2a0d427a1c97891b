package extracting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

func TestBuild_IncluiIdentificadoresDoNivel(t *testing.T) {
	builder := NewParamsBuilder(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelAd,
		SelectedFields: []string{"impressions"},
	}

	apiFields, _, _, err := builder.Build(cfg)

	require.NoError(t, err)
	assert.Contains(t, apiFields, "campaign_id")
	assert.Contains(t, apiFields, "adset_id")
	assert.Contains(t, apiFields, "ad_id")
	assert.Contains(t, apiFields, "ad_name")
	assert.Contains(t, apiFields, "impressions")
}

func TestBuild_SempreIncluiAsDatasDaLinha(t *testing.T) {
	builder := NewParamsBuilder(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"impressions"},
	}

	apiFields, _, _, err := builder.Build(cfg)

	require.NoError(t, err)
	assert.Contains(t, apiFields, "date_start")
	assert.Contains(t, apiFields, "date_stop")
}

func TestBuild_DeduplicaColecoesDeAcoes(t *testing.T) {
	builder := NewParamsBuilder(catalog.New())

	// purchases e leads vivem ambos na coleção actions
	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"purchases", "leads", "impressions"},
	}

	apiFields, _, includesConversions, err := builder.Build(cfg)

	require.NoError(t, err)
	assert.True(t, includesConversions)

	occurrences := 0
	for _, field := range apiFields {
		if field == "actions" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences, "a coleção actions deve ser pedida uma única vez")
}

func TestBuild_NaoDuplicaIdentificadorSelecionado(t *testing.T) {
	builder := NewParamsBuilder(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"campaign_name", "spend"},
	}

	apiFields, _, _, err := builder.Build(cfg)

	require.NoError(t, err)

	occurrences := 0
	for _, field := range apiFields {
		if field == "campaign_name" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
}

func TestBuild_TraduzBreakdownsParaNomesDaAPI(t *testing.T) {
	builder := NewParamsBuilder(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"impressions"},
		Breakdowns:     []string{"age", "hourly"},
	}

	_, apiBreakdowns, _, err := builder.Build(cfg)

	require.NoError(t, err)
	assert.Equal(t, []string{"age", "hourly_stats_aggregated_by_advertiser_time_zone"}, apiBreakdowns)
}

func TestBuild_SemConversoes(t *testing.T) {
	builder := NewParamsBuilder(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"impressions", "clicks", "spend"},
	}

	_, _, includesConversions, err := builder.Build(cfg)

	require.NoError(t, err)
	assert.False(t, includesConversions)
}
