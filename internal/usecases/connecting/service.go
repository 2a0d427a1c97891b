package connecting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-extractor-api/infrastructure/repository"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

var (
	// ErrConnectionNotFound indica que a conexão referenciada não existe
	ErrConnectionNotFound = errors.New("conexão não encontrada")
	// ErrConnectionExists indica que a conta já está conectada
	ErrConnectionExists = errors.New("conta já conectada")
	// ErrMissingRequiredData indica cadastro sem conta ou token
	ErrMissingRequiredData = errors.New("conta e token de acesso são obrigatórios")
)

// AccountNameResolver valida um token de acesso contra a API do Meta
// retornando o nome da conta de anúncios.
type AccountNameResolver interface {
	ResolveAccountName(ctx context.Context, accountID, accessToken string) (string, error)
}

// Manager gerencia o ciclo de vida das conexões com contas de anúncios
type Manager interface {
	CreateConnection(ctx context.Context, req *domain.CreateConnectionRequest) (*domain.Connection, error)
	GetConnection(connectionID string) (*domain.Connection, error)
	ListConnections() ([]*domain.ConnectionResponse, error)
	UpdateConnection(ctx context.Context, req *domain.UpdateConnectionRequest) error
	DeleteConnection(connectionID string) error
}

type Service struct {
	connectionRepo repository.ConnectionRepository
	resolver       AccountNameResolver
}

func NewService(connectionRepo repository.ConnectionRepository, resolver AccountNameResolver) Manager {
	return &Service{
		connectionRepo: connectionRepo,
		resolver:       resolver,
	}
}

// CreateConnection valida o token contra a API antes de persistir. Um token
// que não consegue ler o nome da conta não consegue ler insights.
func (s *Service) CreateConnection(ctx context.Context, req *domain.CreateConnectionRequest) (*domain.Connection, error) {
	if req.AccountID == "" || req.AccessToken == "" {
		return nil, ErrMissingRequiredData
	}

	existing, err := s.connectionRepo.GetConnectionByAccountID(req.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao verificar conexão existente")
	}
	if existing != nil {
		return nil, ErrConnectionExists
	}

	accountName, err := s.resolver.ResolveAccountName(ctx, req.AccountID, req.AccessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": req.AccountID,
			"error":      err.Error(),
		}).Warn("Token recusado pela API ao criar conexão")
		return nil, errors.Wrap(err, "token inválido para a conta informada")
	}

	name := req.Name
	if name == "" {
		name = accountName
	}

	connection := &domain.Connection{
		AccountID:   req.AccountID,
		Name:        name,
		Nickname:    req.Nickname,
		AccessToken: req.AccessToken,
		Status:      domain.ConnectionStatusActive,
	}

	connection, err = s.connectionRepo.CreateConnection(connection)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao salvar a conexão")
	}

	logrus.WithFields(logrus.Fields{
		"connection_id": connection.ID,
		"account_id":    connection.AccountID,
	}).Info("Conexão criada")

	return connection, nil
}

func (s *Service) GetConnection(connectionID string) (*domain.Connection, error) {
	connection, err := s.connectionRepo.GetConnectionByID(connectionID)
	if err != nil {
		return nil, err
	}
	if connection == nil {
		return nil, ErrConnectionNotFound
	}
	return connection, nil
}

func (s *Service) ListConnections() ([]*domain.ConnectionResponse, error) {
	connections, err := s.connectionRepo.ListConnections(nil)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.ConnectionResponse, 0, len(connections))
	for _, connection := range connections {
		responses = append(responses, &domain.ConnectionResponse{
			ID:           connection.ID,
			AccountID:    connection.AccountID,
			Name:         connection.Name,
			Nickname:     connection.Nickname,
			HasToken:     connection.AccessToken != "",
			Status:       connection.Status,
			LastSyncedAt: connection.LastSyncedAt,
		})
	}

	return responses, nil
}

// UpdateConnection revalida o token quando ele é trocado
func (s *Service) UpdateConnection(ctx context.Context, req *domain.UpdateConnectionRequest) error {
	connection, err := s.connectionRepo.GetConnectionByID(req.ID)
	if err != nil {
		return err
	}
	if connection == nil {
		return ErrConnectionNotFound
	}

	if req.AccessToken != nil && *req.AccessToken != "" {
		if _, err := s.resolver.ResolveAccountName(ctx, connection.AccountID, *req.AccessToken); err != nil {
			return errors.Wrap(err, "novo token recusado pela API")
		}

		// Token novo válido reativa uma conexão marcada com erro
		if connection.Status == domain.ConnectionStatusError {
			active := string(domain.ConnectionStatusActive)
			req.Status = &active
		}
	}

	return s.connectionRepo.UpdateConnection(req)
}

func (s *Service) DeleteConnection(connectionID string) error {
	connection, err := s.connectionRepo.GetConnectionByID(connectionID)
	if err != nil {
		return err
	}
	if connection == nil {
		return ErrConnectionNotFound
	}

	return s.connectionRepo.DeleteConnection(connectionID)
}
