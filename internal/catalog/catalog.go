package catalog

import (
	"sort"

	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

// Catalog expõe consultas sobre as tabelas estáticas de campos e breakdowns.
// Construído uma vez na inicialização; somente leitura depois disso.
type Catalog struct {
	fields         []*FieldDefinition
	fieldsByID     map[string]*FieldDefinition
	breakdowns     []*BreakdownDefinition
	breakdownsByID map[string]*BreakdownDefinition
}

// New monta o catálogo a partir das tabelas estáticas, resolvendo o acessor
// de cada campo e ordenando por DisplayOrder.
func New() *Catalog {
	c := &Catalog{
		fields:         make([]*FieldDefinition, 0, len(fieldTable)),
		fieldsByID:     make(map[string]*FieldDefinition, len(fieldTable)),
		breakdowns:     make([]*BreakdownDefinition, 0, len(breakdownTable)),
		breakdownsByID: make(map[string]*BreakdownDefinition, len(breakdownTable)),
	}

	for i := range fieldTable {
		field := fieldTable[i]
		field.accessor = parseAccessor(field.APIField)

		c.fields = append(c.fields, &field)
		c.fieldsByID[field.ID] = &field
	}

	sort.SliceStable(c.fields, func(i, j int) bool {
		return c.fields[i].DisplayOrder < c.fields[j].DisplayOrder
	})

	for i := range breakdownTable {
		breakdown := breakdownTable[i]
		c.breakdowns = append(c.breakdowns, &breakdown)
		c.breakdownsByID[breakdown.ID] = &breakdown
	}

	return c
}

// FieldByID busca um campo pelo id. Não encontrar é um resultado válido.
func (c *Catalog) FieldByID(id string) (*FieldDefinition, bool) {
	field, ok := c.fieldsByID[id]
	return field, ok
}

// Fields retorna todos os campos em ordem estável de exibição
func (c *Catalog) Fields() []*FieldDefinition {
	return c.fields
}

// FieldsForLevel retorna os campos disponíveis no nível informado,
// preservando a ordem de exibição.
func (c *Catalog) FieldsForLevel(level domain.ReportLevel) []*FieldDefinition {
	fields := make([]*FieldDefinition, 0, len(c.fields))
	for _, field := range c.fields {
		if field.AvailableAt(level) {
			fields = append(fields, field)
		}
	}
	return fields
}

// PopularFieldsForLevel retorna os campos marcados como populares no nível,
// usados como seleção padrão nas sincronizações em lote.
func (c *Catalog) PopularFieldsForLevel(level domain.ReportLevel) []string {
	ids := make([]string, 0)
	for _, field := range c.fields {
		if field.IsPopular && field.AvailableAt(level) {
			ids = append(ids, field.ID)
		}
	}
	return ids
}

// BreakdownByID busca um breakdown pelo id
func (c *Catalog) BreakdownByID(id string) (*BreakdownDefinition, bool) {
	breakdown, ok := c.breakdownsByID[id]
	return breakdown, ok
}

// Breakdowns retorna todos os breakdowns na ordem da tabela
func (c *Catalog) Breakdowns() []*BreakdownDefinition {
	return c.breakdowns
}

// Incompatible verifica se dois breakdowns não podem coexistir em uma mesma
// extração. A relação é simétrica: basta um dos lados declarar o outro.
func (c *Catalog) Incompatible(a, b *BreakdownDefinition) bool {
	return declaresIncompatibility(a, b.ID) || declaresIncompatibility(b, a.ID)
}

func declaresIncompatibility(breakdown *BreakdownDefinition, otherID string) bool {
	for _, id := range breakdown.IncompatibleWith {
		if id == otherID {
			return true
		}
	}
	return false
}
