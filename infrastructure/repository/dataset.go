package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/ad-extractor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/pkg/utils"
)

const datasetsTable = "datasets"

type DatasetRepository interface {
	SaveDataset(dataset *domain.Dataset) error
	GetDatasetByID(datasetID string) (*domain.Dataset, error)
	GetLatestByConnection(connectionID string, level domain.ReportLevel) (*domain.Dataset, error)
}

type datasetRepository struct {
	conn *postgres.Connection
}

func NewDatasetRepository(conn *postgres.Connection) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

// SaveDataset persiste o snapshot completo de uma extração. Linhas e colunas
// ficam em colunas JSONB, já que o formato varia conforme os campos pedidos.
func (r *datasetRepository) SaveDataset(dataset *domain.Dataset) error {
	id, err := utils.GenerateID()
	if err != nil {
		return err
	}
	dataset.ID = id

	rowsJSON, err := json.Marshal(dataset.Rows)
	if err != nil {
		return err
	}

	columnsJSON, err := json.Marshal(dataset.Columns)
	if err != nil {
		return err
	}

	datasetSQL, datasetArgs, err := squirrel.
		Insert(datasetsTable).
		Columns("id", "connection_id", "level", "rows", "columns").
		Values(dataset.ID, dataset.ConnectionID, dataset.Level, rowsJSON, columnsJSON).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.QueryRow(datasetSQL, datasetArgs...).Scan(&dataset.CreatedAt)
}

func (r *datasetRepository) GetDatasetByID(datasetID string) (*domain.Dataset, error) {
	return r.getDataset(squirrel.Eq{"id": datasetID})
}

func (r *datasetRepository) GetLatestByConnection(connectionID string, level domain.ReportLevel) (*domain.Dataset, error) {
	return r.getDataset(squirrel.Eq{"connection_id": connectionID, "level": level})
}

func (r *datasetRepository) getDataset(whereClause map[string]interface{}) (*domain.Dataset, error) {
	datasetSQL, datasetArgs, err := squirrel.
		Select("id, connection_id, level, rows, columns, created_at").
		From(datasetsTable).
		Where(whereClause).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	dataset := &domain.Dataset{}
	var rowsJSON, columnsJSON []byte

	err = r.conn.QueryRow(datasetSQL, datasetArgs...).Scan(
		&dataset.ID,
		&dataset.ConnectionID,
		&dataset.Level,
		&rowsJSON,
		&columnsJSON,
		&dataset.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(rowsJSON, &dataset.Rows); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(columnsJSON, &dataset.Columns); err != nil {
		return nil, err
	}

	return dataset, nil
}
