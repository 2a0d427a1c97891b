package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-extractor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/pkg/utils"
)

const extractionHistoryTable = "extraction_history"

type ExtractionHistoryRepository interface {
	SaveEntry(entry *domain.ExtractionHistoryEntry) error
	ListByConnection(connectionID string, limit int) ([]*domain.ExtractionHistoryEntry, error)
	ListRecent(limit int) ([]*domain.ExtractionHistoryEntry, error)
}

type extractionHistoryRepository struct {
	conn *postgres.Connection
}

func NewExtractionHistoryRepository(conn *postgres.Connection) ExtractionHistoryRepository {
	return &extractionHistoryRepository{
		conn: conn,
	}
}

const extractionHistoryColumns = "id, connection_id, level, fields, breakdowns, includes_conversions, start_date, end_date, record_count, duration_ms, status, error_message, created_at"

func (r *extractionHistoryRepository) SaveEntry(entry *domain.ExtractionHistoryEntry) error {
	id, err := utils.GenerateID()
	if err != nil {
		return err
	}
	entry.ID = id

	historySQL, historyArgs, err := squirrel.
		Insert(extractionHistoryTable).
		Columns(
			"id", "connection_id", "level", "fields", "breakdowns",
			"includes_conversions", "start_date", "end_date",
			"record_count", "duration_ms", "status", "error_message",
		).
		Values(
			entry.ID,
			entry.ConnectionID,
			entry.Level,
			pq.Array(entry.Fields),
			pq.Array(entry.Breakdowns),
			entry.IncludesConversions,
			entry.StartDate,
			entry.EndDate,
			entry.RecordCount,
			entry.DurationMs,
			entry.Status,
			entry.ErrorMessage,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.QueryRow(historySQL, historyArgs...).Scan(&entry.CreatedAt)
}

func (r *extractionHistoryRepository) ListByConnection(connectionID string, limit int) ([]*domain.ExtractionHistoryEntry, error) {
	return r.listEntries(squirrel.Eq{"connection_id": connectionID}, limit)
}

func (r *extractionHistoryRepository) ListRecent(limit int) ([]*domain.ExtractionHistoryEntry, error) {
	return r.listEntries(nil, limit)
}

func (r *extractionHistoryRepository) listEntries(whereClause map[string]interface{}, limit int) ([]*domain.ExtractionHistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	queryBuilder := squirrel.
		Select(extractionHistoryColumns).
		From(extractionHistoryTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	historySQL, historyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(historySQL, historyArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ExtractionHistoryEntry, 0)
	for rows.Next() {
		entry := &domain.ExtractionHistoryEntry{}

		if err := rows.Scan(
			&entry.ID,
			&entry.ConnectionID,
			&entry.Level,
			pq.Array(&entry.Fields),
			pq.Array(&entry.Breakdowns),
			&entry.IncludesConversions,
			&entry.StartDate,
			&entry.EndDate,
			&entry.RecordCount,
			&entry.DurationMs,
			&entry.Status,
			&entry.ErrorMessage,
			&entry.CreatedAt,
		); err != nil {
			logrus.WithField("error", err.Error()).Error("Erro ao deserializar histórico de extração")
			continue
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
