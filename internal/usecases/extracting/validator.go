package extracting

import (
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

// maxBreakdowns é o limite de segmentações simultâneas aceito pela API
const maxBreakdowns = 2

// Validator verifica uma configuração de extração contra o catálogo antes de
// qualquer chamada de rede. Toda falha vira um ConfigurationError.
type Validator struct {
	catalog *catalog.Catalog
}

func NewValidator(c *catalog.Catalog) *Validator {
	return &Validator{catalog: c}
}

func (v *Validator) Validate(cfg domain.ExtractionConfig) error {
	if cfg.ConnectionID == "" {
		return domain.NewConfigurationError("conexão não informada")
	}

	if cfg.AccountID == "" {
		return domain.NewConfigurationError("conta de anúncios não informada")
	}

	if !cfg.Level.Valid() {
		return domain.NewConfigurationError("nível de relatório desconhecido: %q", cfg.Level)
	}

	if len(cfg.SelectedFields) == 0 {
		return domain.NewConfigurationError("nenhum campo selecionado")
	}

	for _, fieldID := range cfg.SelectedFields {
		field, ok := v.catalog.FieldByID(fieldID)
		if !ok {
			return domain.NewConfigurationError("campo desconhecido: %q", fieldID)
		}

		if !field.AvailableAt(cfg.Level) {
			return domain.NewConfigurationError(
				"campo %q não está disponível no nível %s", fieldID, cfg.Level,
			)
		}
	}

	if err := v.validateBreakdowns(cfg.Breakdowns); err != nil {
		return err
	}

	return v.validateDateRange(cfg.DateRange)
}

func (v *Validator) validateBreakdowns(ids []string) error {
	if len(ids) > maxBreakdowns {
		return domain.NewConfigurationError(
			"no máximo %d breakdowns por extração, %d informados", maxBreakdowns, len(ids),
		)
	}

	breakdowns := make([]*catalog.BreakdownDefinition, 0, len(ids))
	for _, id := range ids {
		breakdown, ok := v.catalog.BreakdownByID(id)
		if !ok {
			return domain.NewConfigurationError("breakdown desconhecido: %q", id)
		}
		breakdowns = append(breakdowns, breakdown)
	}

	// Verificação par a par, simétrica: a ordem de seleção não importa
	for i := 0; i < len(breakdowns); i++ {
		for j := i + 1; j < len(breakdowns); j++ {
			if v.catalog.Incompatible(breakdowns[i], breakdowns[j]) {
				return domain.NewConfigurationError(
					"breakdowns %q e %q não podem ser combinados",
					breakdowns[i].ID, breakdowns[j].ID,
				)
			}
		}
	}

	return nil
}

func (v *Validator) validateDateRange(cfg domain.DateRangeConfig) error {
	switch cfg.Preset {
	case domain.PresetToday, domain.PresetYesterday,
		domain.PresetLast7Days, domain.PresetLast14Days,
		domain.PresetLast30Days, domain.PresetLast90Days,
		domain.PresetThisWeek, domain.PresetLastWeek,
		domain.PresetThisMonth, domain.PresetLastMonth,
		domain.PresetThisQuarter, domain.PresetLastQuarter,
		domain.PresetThisYear, domain.PresetLastYear,
		domain.PresetLifetime:
		return nil

	case domain.PresetCustom:
		if cfg.StartDate == nil || cfg.EndDate == nil {
			return domain.NewConfigurationError("período custom exige data inicial e final")
		}
		if cfg.StartDate.After(*cfg.EndDate) {
			return domain.NewConfigurationError("data inicial posterior à data final")
		}
		return nil

	default:
		return domain.NewConfigurationError("período desconhecido: %q", cfg.Preset)
	}
}
