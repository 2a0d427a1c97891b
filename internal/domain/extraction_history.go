package domain

import (
	"time"
)

type ExtractionStatus string

const (
	ExtractionStatusCompleted ExtractionStatus = "COMPLETED"
	ExtractionStatusFailed    ExtractionStatus = "FAILED"
)

// ExtractionHistoryEntry é o registro de auditoria de uma extração concluída
// (ou falha), independente dos dados extraídos. A falha ao persistir este
// registro nunca falha a extração em si.
type ExtractionHistoryEntry struct {
	ID                  string           `json:"id"`
	ConnectionID        string           `json:"connection_id"`
	Level               ReportLevel      `json:"level"`
	Fields              []string         `json:"fields"`
	Breakdowns          []string         `json:"breakdowns"`
	IncludesConversions bool             `json:"includes_conversions"`
	StartDate           time.Time        `json:"start_date"`
	EndDate             time.Time        `json:"end_date"`
	RecordCount         int              `json:"record_count"`
	DurationMs          int64            `json:"duration_ms"`
	Status              ExtractionStatus `json:"status"`
	ErrorMessage        *string          `json:"error_message,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
}

// Dataset é o snapshot persistido de uma extração bem-sucedida
type Dataset struct {
	ID           string       `json:"id"`
	ConnectionID string       `json:"connection_id"`
	Level        ReportLevel  `json:"level"`
	Rows         []Record     `json:"rows"`
	Columns      []ColumnMeta `json:"columns"`
	CreatedAt    time.Time    `json:"created_at"`
}
