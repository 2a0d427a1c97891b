package domain

import (
	"time"
)

// ReportLevel representa a granularidade de agregação de uma extração
type ReportLevel string

const (
	LevelCampaign ReportLevel = "campaign"
	LevelAdset    ReportLevel = "adset"
	LevelAd       ReportLevel = "ad"
)

// Valid verifica se o nível informado é um dos níveis suportados
func (l ReportLevel) Valid() bool {
	return l == LevelCampaign || l == LevelAdset || l == LevelAd
}

// DatePreset é um período simbólico resolvido em datas concretas no momento da extração
type DatePreset string

const (
	PresetToday       DatePreset = "today"
	PresetYesterday   DatePreset = "yesterday"
	PresetLast7Days   DatePreset = "last_7_days"
	PresetLast14Days  DatePreset = "last_14_days"
	PresetLast30Days  DatePreset = "last_30_days"
	PresetLast90Days  DatePreset = "last_90_days"
	PresetThisWeek    DatePreset = "this_week"
	PresetLastWeek    DatePreset = "last_week"
	PresetThisMonth   DatePreset = "this_month"
	PresetLastMonth   DatePreset = "last_month"
	PresetThisQuarter DatePreset = "this_quarter"
	PresetLastQuarter DatePreset = "last_quarter"
	PresetThisYear    DatePreset = "this_year"
	PresetLastYear    DatePreset = "last_year"
	PresetLifetime    DatePreset = "lifetime"
	PresetCustom      DatePreset = "custom"
)

// DateRangeConfig descreve o período solicitado pelo usuário
type DateRangeConfig struct {
	Preset       DatePreset `json:"preset"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	IncludeToday bool       `json:"include_today"`
}

// ResolvedDateRange é o período concreto calculado a partir do preset
type ResolvedDateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// ExtractionConfig representa uma requisição de extração emitida pelo usuário.
// Imutável após entregue ao serviço de extração.
type ExtractionConfig struct {
	ConnectionID   string          `json:"connection_id"`
	AccountID      string          `json:"account_id"`
	Level          ReportLevel     `json:"level"`
	SelectedFields []string        `json:"selected_fields"`
	Breakdowns     []string        `json:"breakdowns"`
	DateRange      DateRangeConfig `json:"date_range"`
	TemplateID     *string         `json:"template_id,omitempty"`
	Limit          int             `json:"limit,omitempty"`
}

// Record é uma linha achatada do resultado: field id -> valor escalar
type Record map[string]any

// ColumnMeta descreve uma coluna do resultado na ordem dos campos selecionados
type ColumnMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	DataType    string `json:"data_type"`
	Category    string `json:"category"`
}

// ExtractionResult é o resultado de uma chamada de extração
type ExtractionResult struct {
	Success      bool               `json:"success"`
	Data         []Record           `json:"data"`
	Columns      []ColumnMeta       `json:"columns"`
	TotalRecords int                `json:"total_records"`
	DateRange    *ResolvedDateRange `json:"date_range,omitempty"`
	DurationMs   int64              `json:"duration_ms"`
	Error        string             `json:"error,omitempty"`
}
