package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

func TestNew_IDsUnicosENiveisNaoVazios(t *testing.T) {
	c := New()

	seenFields := make(map[string]bool)
	for _, field := range c.Fields() {
		assert.False(t, seenFields[field.ID], "id de campo duplicado: %s", field.ID)
		seenFields[field.ID] = true

		assert.NotEmpty(t, field.AvailableLevels, "campo sem níveis: %s", field.ID)
	}

	seenBreakdowns := make(map[string]bool)
	for _, breakdown := range c.Breakdowns() {
		assert.False(t, seenBreakdowns[breakdown.ID], "id de breakdown duplicado: %s", breakdown.ID)
		seenBreakdowns[breakdown.ID] = true
	}
}

func TestNew_IncompatibilidadesReferenciamBreakdownsExistentes(t *testing.T) {
	c := New()

	for _, breakdown := range c.Breakdowns() {
		for _, otherID := range breakdown.IncompatibleWith {
			_, ok := c.BreakdownByID(otherID)
			assert.True(t, ok, "breakdown %s declara incompatibilidade com id inexistente %s", breakdown.ID, otherID)
		}
	}
}

func TestFieldByID(t *testing.T) {
	c := New()

	field, ok := c.FieldByID("campaign_name")
	require.True(t, ok)
	assert.Equal(t, "campaign_name", field.APIField)
	assert.Equal(t, CategoryDimension, field.Category)

	_, ok = c.FieldByID("campo_que_nao_existe")
	assert.False(t, ok)
}

func TestFieldsForLevel(t *testing.T) {
	c := New()

	campaignFields := c.FieldsForLevel(domain.LevelCampaign)
	for _, field := range campaignFields {
		assert.True(t, field.AvailableAt(domain.LevelCampaign))
	}

	// ad_name só existe no nível de anúncio
	ids := make(map[string]bool)
	for _, field := range campaignFields {
		ids[field.ID] = true
	}
	assert.False(t, ids["ad_name"])
	assert.True(t, ids["campaign_name"])

	// A ordem de exibição deve ser estável e crescente
	for i := 1; i < len(campaignFields); i++ {
		assert.LessOrEqual(t, campaignFields[i-1].DisplayOrder, campaignFields[i].DisplayOrder)
	}
}

func TestParseAccessor(t *testing.T) {
	tests := []struct {
		name     string
		apiField string
		expected FieldAccessor
	}{
		{
			name:     "campo direto",
			apiField: "impressions",
			expected: FieldAccessor{Kind: AccessDirect, Name: "impressions"},
		},
		{
			name:     "ação aninhada em actions",
			apiField: "actions:lead",
			expected: FieldAccessor{Kind: AccessNestedAction, Name: "actions", ActionType: "lead"},
		},
		{
			name:     "ação aninhada em action_values com action_type contendo ponto",
			apiField: "action_values:offsite_conversion.fb_pixel_purchase",
			expected: FieldAccessor{Kind: AccessNestedAction, Name: "action_values", ActionType: "offsite_conversion.fb_pixel_purchase"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseAccessor(tt.apiField))
		})
	}
}

func TestIncompatible_Simetrica(t *testing.T) {
	c := New()

	// region declara country, mas country não declara region
	region, ok := c.BreakdownByID("region")
	require.True(t, ok)
	country, ok := c.BreakdownByID("country")
	require.True(t, ok)

	assert.True(t, c.Incompatible(region, country))
	assert.True(t, c.Incompatible(country, region))

	gender, ok := c.BreakdownByID("gender")
	require.True(t, ok)
	assert.False(t, c.Incompatible(gender, country))
}
