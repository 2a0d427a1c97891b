package extracting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

func TestProject_CamposDiretosEAninhados(t *testing.T) {
	projector := NewProjector(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"impressions", "purchases", "purchases_value"},
	}

	rows := []metadomain.InsightRow{
		{
			"date_start":    "2024-05-10",
			"date_stop":     "2024-05-10",
			"campaign_id":   "c1",
			"campaign_name": "Campanha A",
			"impressions":   "1500",
			"actions": []any{
				map[string]any{"action_type": "offsite_conversion.fb_pixel_purchase", "value": "12"},
				map[string]any{"action_type": "lead", "value": "3"},
			},
			"action_values": []any{
				map[string]any{"action_type": "offsite_conversion.fb_pixel_purchase", "value": "890.50"},
			},
		},
	}

	records := projector.Project(rows, cfg)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "2024-05-10", record["date"])
	assert.Equal(t, "c1", record["campaign_id"])
	assert.Equal(t, "Campanha A", record["campaign_name"])

	// Campo direto sai exatamente como a API devolveu
	assert.Equal(t, "1500", record["impressions"])

	// Campos aninhados viram número
	assert.Equal(t, float64(12), record["purchases"])
	assert.Equal(t, 890.50, record["purchases_value"])
}

func TestProject_CampoAusenteViraNil(t *testing.T) {
	projector := NewProjector(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"impressions", "purchases"},
	}

	// Linha sem a coleção actions e sem impressions: a conta não teve entrega
	rows := []metadomain.InsightRow{
		{
			"date_start":  "2024-05-10",
			"campaign_id": "c1",
		},
	}

	records := projector.Project(rows, cfg)
	require.Len(t, records, 1)

	record := records[0]

	value, present := record["impressions"]
	assert.True(t, present, "a chave existe mesmo sem valor")
	assert.Nil(t, value)

	value, present = record["purchases"]
	assert.True(t, present)
	assert.Nil(t, value, "ausência não pode virar zero")
}

func TestProject_AcaoAusenteNaColecaoViraNil(t *testing.T) {
	projector := NewProjector(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"purchases", "leads"},
	}

	rows := []metadomain.InsightRow{
		{
			"date_start": "2024-05-10",
			"actions": []any{
				map[string]any{"action_type": "lead", "value": "7"},
			},
		},
	}

	records := projector.Project(rows, cfg)
	require.Len(t, records, 1)

	assert.Nil(t, records[0]["purchases"])
	assert.Equal(t, float64(7), records[0]["leads"])
}

func TestProject_CopiaValoresDeBreakdown(t *testing.T) {
	projector := NewProjector(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"impressions"},
		Breakdowns:     []string{"age", "gender"},
	}

	rows := []metadomain.InsightRow{
		{
			"date_start":  "2024-05-10",
			"impressions": "100",
			"age":         "25-34",
			"gender":      "female",
		},
	}

	records := projector.Project(rows, cfg)
	require.Len(t, records, 1)

	assert.Equal(t, "25-34", records[0]["age"])
	assert.Equal(t, "female", records[0]["gender"])
}

func TestBuildColumns_OrdemEMetadados(t *testing.T) {
	projector := NewProjector(catalog.New())

	cfg := domain.ExtractionConfig{
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"spend", "impressions"},
		Breakdowns:     []string{"age"},
	}

	columns := projector.BuildColumns(cfg)

	// data, campaign_id, campaign_name, age, spend, impressions
	require.Len(t, columns, 6)

	assert.Equal(t, "date", columns[0].Key)
	assert.Equal(t, "campaign_id", columns[1].Key)
	assert.Equal(t, "campaign_name", columns[2].Key)
	assert.Equal(t, "age", columns[3].Key)

	// Os campos selecionados preservam a ordem de seleção
	assert.Equal(t, "spend", columns[4].Key)
	assert.Equal(t, "impressions", columns[5].Key)

	assert.Equal(t, "currency", columns[4].DataType)
	assert.Equal(t, "Faixa Etária", columns[3].DisplayName)
}
