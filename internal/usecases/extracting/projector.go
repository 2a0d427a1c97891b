package extracting

import (
	"strconv"

	metadomain "github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/pkg/utils"
)

// dateColumnKey é a chave canônica da data nas linhas projetadas. A API
// devolve date_start/date_stop por linha diária; só a primeira interessa.
const dateColumnKey = "date"

// Projector achata as linhas cruas da API em registros com as chaves do
// catálogo, resolvendo os campos aninhados nas coleções de ações.
type Projector struct {
	catalog *catalog.Catalog
}

func NewProjector(c *catalog.Catalog) *Projector {
	return &Projector{catalog: c}
}

// Project converte as linhas cruas nos registros finais. Cada registro carrega
// a data, os identificadores do nível, os valores dos breakdowns e um valor
// por campo selecionado. Campo ausente na linha vira nil, nunca zero: ausência
// e zero são respostas diferentes da API.
func (p *Projector) Project(rows []metadomain.InsightRow, cfg domain.ExtractionConfig) []domain.Record {
	records := make([]domain.Record, 0, len(rows))

	for _, row := range rows {
		record := domain.Record{}

		if date, ok := row.String("date_start"); ok {
			record[dateColumnKey] = date
		} else {
			record[dateColumnKey] = nil
		}

		for _, name := range identifierFieldsByLevel[cfg.Level] {
			record[name] = valueOrNil(row, name)
		}

		for _, breakdownID := range cfg.Breakdowns {
			breakdown, ok := p.catalog.BreakdownByID(breakdownID)
			if !ok {
				continue
			}
			record[breakdownID] = valueOrNil(row, breakdown.APIField)
		}

		for _, fieldID := range cfg.SelectedFields {
			field, ok := p.catalog.FieldByID(fieldID)
			if !ok {
				continue
			}
			record[fieldID] = p.projectField(row, field)
		}

		records = append(records, record)
	}

	return records
}

// projectField resolve o valor de um campo numa linha. Campos diretos saem
// como a API devolveu; campos aninhados são procurados na coleção de ações e
// convertidos para número, já que a API os devolve como string.
func (p *Projector) projectField(row metadomain.InsightRow, field *catalog.FieldDefinition) any {
	accessor := field.Accessor()

	if !accessor.IsNested() {
		return valueOrNil(row, accessor.Name)
	}

	raw, ok := row.ActionValue(accessor.Name, accessor.ActionType)
	if !ok {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return utils.RoundWithTwoDecimalPlace(value)
}

// BuildColumns monta os metadados das colunas na ordem de apresentação:
// data, identificadores, breakdowns e por fim os campos selecionados na
// ordem em que o usuário os escolheu.
func (p *Projector) BuildColumns(cfg domain.ExtractionConfig) []domain.ColumnMeta {
	columns := make([]domain.ColumnMeta, 0, len(cfg.SelectedFields)+len(cfg.Breakdowns)+4)

	columns = append(columns, domain.ColumnMeta{
		Key:         dateColumnKey,
		DisplayName: "Data",
		DataType:    string(catalog.DataTypeDate),
		Category:    string(catalog.CategoryDimension),
	})

	for _, name := range identifierFieldsByLevel[cfg.Level] {
		if field, ok := p.catalog.FieldByID(name); ok {
			columns = append(columns, columnFromField(field))
		}
	}

	for _, breakdownID := range cfg.Breakdowns {
		breakdown, ok := p.catalog.BreakdownByID(breakdownID)
		if !ok {
			continue
		}
		columns = append(columns, domain.ColumnMeta{
			Key:         breakdown.ID,
			DisplayName: breakdown.DisplayName,
			DataType:    string(catalog.DataTypeString),
			Category:    string(catalog.CategoryDimension),
		})
	}

	seen := make(map[string]struct{}, len(identifierFieldsByLevel[cfg.Level]))
	for _, name := range identifierFieldsByLevel[cfg.Level] {
		seen[name] = struct{}{}
	}

	for _, fieldID := range cfg.SelectedFields {
		if _, dup := seen[fieldID]; dup {
			continue
		}
		field, ok := p.catalog.FieldByID(fieldID)
		if !ok {
			continue
		}
		columns = append(columns, columnFromField(field))
	}

	return columns
}

func columnFromField(field *catalog.FieldDefinition) domain.ColumnMeta {
	return domain.ColumnMeta{
		Key:         field.ID,
		DisplayName: field.DisplayName,
		DataType:    string(field.DataType),
		Category:    string(field.Category),
	}
}

func valueOrNil(row metadomain.InsightRow, key string) any {
	if value, ok := row[key]; ok {
		return value
	}
	return nil
}
