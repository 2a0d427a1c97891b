package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-extractor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/pkg/utils"
)

const connectionsTable = "connections"

type ConnectionRepository interface {
	GetConnectionByID(connectionID string) (*domain.Connection, error)
	GetConnectionByAccountID(accountID string) (*domain.Connection, error)
	ListConnections(availableStatus []domain.ConnectionStatus) ([]*domain.Connection, error)
	CreateConnection(connection *domain.Connection) (*domain.Connection, error)
	UpdateConnection(connection *domain.UpdateConnectionRequest) error
	MarkSynced(connectionID string, syncedAt time.Time) error
	DeleteConnection(connectionID string) error
}

type connectionRepository struct {
	conn *postgres.Connection
}

func NewConnectionRepository(conn *postgres.Connection) ConnectionRepository {
	return &connectionRepository{
		conn: conn,
	}
}

const connectionColumns = "id, account_id, name, nickname, access_token, status, last_synced_at, created_at, updated_at"

func (r *connectionRepository) GetConnectionByID(connectionID string) (*domain.Connection, error) {
	return r.getConnection(squirrel.Eq{"id": connectionID})
}

func (r *connectionRepository) GetConnectionByAccountID(accountID string) (*domain.Connection, error) {
	return r.getConnection(squirrel.Eq{"account_id": accountID})
}

func (r *connectionRepository) getConnection(whereClause map[string]interface{}) (*domain.Connection, error) {
	connectionSQL, connectionArgs, err := squirrel.
		Select(connectionColumns).
		From(connectionsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(connectionSQL, connectionArgs...)

	connection, err := deserializeConnection(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return connection, nil
}

func (r *connectionRepository) ListConnections(availableStatus []domain.ConnectionStatus) ([]*domain.Connection, error) {
	queryBuilder := squirrel.
		Select(connectionColumns).
		From(connectionsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": availableStatus})
	}

	connectionsSQL, connectionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(connectionsSQL, connectionsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	connections := make([]*domain.Connection, 0)
	for rows.Next() {
		connection, err := deserializeConnection(rows.Scan)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Erro ao deserializar conexão")
			continue
		}
		connections = append(connections, connection)
	}

	return connections, rows.Err()
}

func (r *connectionRepository) CreateConnection(connection *domain.Connection) (*domain.Connection, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	connection.ID = id

	connectionSQL, connectionArgs, err := squirrel.
		Insert(connectionsTable).
		Columns("id", "account_id", "name", "nickname", "access_token", "status").
		Values(
			connection.ID,
			connection.AccountID,
			connection.Name,
			connection.Nickname,
			connection.AccessToken,
			connection.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(connectionSQL, connectionArgs...).
		Scan(&connection.CreatedAt, &connection.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return connection, nil
}

func (r *connectionRepository) UpdateConnection(connection *domain.UpdateConnectionRequest) error {
	queryBuilder := squirrel.
		Update(connectionsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": connection.ID})

	if connection.Name != nil && *connection.Name != "" {
		queryBuilder = queryBuilder.Set("name", *connection.Name)
	}

	if connection.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", connection.Nickname)
	}

	if connection.AccessToken != nil && *connection.AccessToken != "" {
		queryBuilder = queryBuilder.Set("access_token", *connection.AccessToken)
	}

	if connection.Status != nil && *connection.Status != "" {
		queryBuilder = queryBuilder.Set("status", *connection.Status)
	}

	connectionSQL, connectionArgs, err := queryBuilder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(connectionSQL, connectionArgs...)
	return err
}

// MarkSynced registra o instante da última sincronização em lote bem-sucedida
func (r *connectionRepository) MarkSynced(connectionID string, syncedAt time.Time) error {
	connectionSQL, connectionArgs, err := squirrel.
		Update(connectionsTable).
		Set("last_synced_at", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": connectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(connectionSQL, connectionArgs...)
	return err
}

func (r *connectionRepository) DeleteConnection(connectionID string) error {
	connectionSQL, connectionArgs, err := squirrel.
		Delete(connectionsTable).
		Where(squirrel.Eq{"id": connectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(connectionSQL, connectionArgs...)
	return err
}

func deserializeConnection(scan func(dest ...any) error) (*domain.Connection, error) {
	connection := &domain.Connection{}

	if err := scan(
		&connection.ID,
		&connection.AccountID,
		&connection.Name,
		&connection.Nickname,
		&connection.AccessToken,
		&connection.Status,
		&connection.LastSyncedAt,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return connection, nil
}
