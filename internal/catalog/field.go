package catalog

import (
	"strings"

	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

// FieldCategory agrupa os campos extraíveis por tema
type FieldCategory string

const (
	CategoryDimension   FieldCategory = "dimension"
	CategoryDelivery    FieldCategory = "delivery"
	CategoryPerformance FieldCategory = "performance"
	CategoryCost        FieldCategory = "cost"
	CategoryConversion  FieldCategory = "conversion"
	CategoryEngagement  FieldCategory = "engagement"
	CategoryVideo       FieldCategory = "video"
	CategoryAttribution FieldCategory = "attribution"
)

// FieldDataType orienta a formatação do valor pelo consumidor
type FieldDataType string

const (
	DataTypeString     FieldDataType = "string"
	DataTypeInteger    FieldDataType = "integer"
	DataTypeNumber     FieldDataType = "number"
	DataTypeCurrency   FieldDataType = "currency"
	DataTypePercentage FieldDataType = "percentage"
	DataTypeDate       FieldDataType = "date"
)

// AccessorKind distingue campos lidos direto da linha dos que vivem dentro
// das coleções de ações ({action_type, value}) retornadas pela API do Meta.
type AccessorKind int

const (
	AccessDirect AccessorKind = iota
	AccessNestedAction
)

// FieldAccessor descreve como extrair o valor do campo de uma linha crua.
// Resolvido uma única vez na construção do catálogo, nunca por linha.
type FieldAccessor struct {
	Kind       AccessorKind
	Name       string // nome do campo na API, ou da coleção quando aninhado
	ActionType string // action_type procurado dentro da coleção
}

// IsNested indica se o campo exige busca dentro de actions/action_values
func (a FieldAccessor) IsNested() bool {
	return a.Kind == AccessNestedAction
}

// FieldDefinition é um campo extraível (métrica ou dimensão) do catálogo
type FieldDefinition struct {
	ID              string               `json:"id"`
	DisplayName     string               `json:"display_name"`
	Description     string               `json:"description"`
	APIField        string               `json:"api_field"`
	Category        FieldCategory        `json:"category"`
	DataType        FieldDataType        `json:"data_type"`
	AvailableLevels []domain.ReportLevel `json:"available_levels"`
	IsPopular       bool                 `json:"is_popular"`
	DisplayOrder    int                  `json:"-"`

	accessor FieldAccessor
}

// Accessor retorna o acessor resolvido do campo
func (f *FieldDefinition) Accessor() FieldAccessor {
	return f.accessor
}

// AvailableAt verifica se o campo pode ser usado no nível informado
func (f *FieldDefinition) AvailableAt(level domain.ReportLevel) bool {
	for _, l := range f.AvailableLevels {
		if l == level {
			return true
		}
	}
	return false
}

// parseAccessor resolve a convenção "coleção:action_type" usada no APIField
// dos campos de conversão (ex.: "actions:offsite_conversion.fb_pixel_purchase").
func parseAccessor(apiField string) FieldAccessor {
	collection, actionType, found := strings.Cut(apiField, ":")
	if !found {
		return FieldAccessor{Kind: AccessDirect, Name: apiField}
	}

	return FieldAccessor{
		Kind:       AccessNestedAction,
		Name:       collection,
		ActionType: actionType,
	}
}
