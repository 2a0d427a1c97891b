package extracting

import (
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

// identifierFieldsByLevel são os campos de identidade sempre requisitados,
// independentemente da seleção do usuário, para que cada linha seja rastreável
// até a entidade que a gerou.
var identifierFieldsByLevel = map[domain.ReportLevel][]string{
	domain.LevelCampaign: {"campaign_id", "campaign_name"},
	domain.LevelAdset:    {"campaign_id", "campaign_name", "adset_id", "adset_name"},
	domain.LevelAd:       {"campaign_id", "campaign_name", "adset_id", "adset_name", "ad_id", "ad_name"},
}

// ParamsBuilder traduz a seleção de campos do catálogo para os nomes que a
// API do Meta espera no parâmetro fields.
type ParamsBuilder struct {
	catalog *catalog.Catalog
}

func NewParamsBuilder(c *catalog.Catalog) *ParamsBuilder {
	return &ParamsBuilder{catalog: c}
}

// Build monta as listas de fields e breakdowns da requisição. Campos aninhados
// em coleções de ações (actions, action_values) são deduplicados: a coleção
// inteira é pedida uma única vez, não importa quantos campos vivam nela.
// Retorna também se a extração inclui métricas de conversão.
func (b *ParamsBuilder) Build(cfg domain.ExtractionConfig) (apiFields, apiBreakdowns []string, includesConversions bool, err error) {
	seen := make(map[string]struct{})
	apiFields = make([]string, 0, len(cfg.SelectedFields)+6)

	appendField := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		apiFields = append(apiFields, name)
	}

	for _, name := range identifierFieldsByLevel[cfg.Level] {
		appendField(name)
	}

	// As datas da linha sempre entram na requisição: o projetor depende de
	// date_start para montar a coluna de data
	appendField("date_start")
	appendField("date_stop")

	for _, fieldID := range cfg.SelectedFields {
		field, ok := b.catalog.FieldByID(fieldID)
		if !ok {
			return nil, nil, false, domain.NewConfigurationError("campo desconhecido: %q", fieldID)
		}

		accessor := field.Accessor()
		if accessor.IsNested() {
			includesConversions = true
		}

		appendField(accessor.Name)
	}

	apiBreakdowns = make([]string, 0, len(cfg.Breakdowns))
	for _, breakdownID := range cfg.Breakdowns {
		breakdown, ok := b.catalog.BreakdownByID(breakdownID)
		if !ok {
			return nil, nil, false, domain.NewConfigurationError("breakdown desconhecido: %q", breakdownID)
		}
		apiBreakdowns = append(apiBreakdowns, breakdown.APIField)
	}

	return apiFields, apiBreakdowns, includesConversions, nil
}
