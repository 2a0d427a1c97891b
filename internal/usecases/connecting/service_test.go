package connecting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/ad-extractor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/connecting"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/connecting/mocks"
)

func TestCreateConnection_ValidaTokenAntesDeSalvar(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := repomocks.NewMockConnectionRepository(ctrl)
	resolver := mocks.NewMockAccountNameResolver(ctrl)
	service := connecting.NewService(repo, resolver)

	repo.EXPECT().GetConnectionByAccountID("123").Return(nil, nil)
	resolver.EXPECT().ResolveAccountName(gomock.Any(), "123", "tok").Return("Conta Demo", nil)
	repo.EXPECT().
		CreateConnection(gomock.Any()).
		DoAndReturn(func(connection *domain.Connection) (*domain.Connection, error) {
			connection.ID = "conn1"
			return connection, nil
		})

	connection, err := service.CreateConnection(context.Background(), &domain.CreateConnectionRequest{
		AccountID:   "123",
		AccessToken: "tok",
	})

	require.NoError(t, err)
	assert.Equal(t, "conn1", connection.ID)
	// Sem nome no cadastro, usa o nome retornado pela API
	assert.Equal(t, "Conta Demo", connection.Name)
	assert.Equal(t, domain.ConnectionStatusActive, connection.Status)
}

func TestCreateConnection_TokenRecusadoNaoSalva(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := repomocks.NewMockConnectionRepository(ctrl)
	resolver := mocks.NewMockAccountNameResolver(ctrl)
	service := connecting.NewService(repo, resolver)

	repo.EXPECT().GetConnectionByAccountID("123").Return(nil, nil)
	resolver.EXPECT().
		ResolveAccountName(gomock.Any(), "123", "tok-invalido").
		Return("", assert.AnError)

	_, err := service.CreateConnection(context.Background(), &domain.CreateConnectionRequest{
		AccountID:   "123",
		AccessToken: "tok-invalido",
	})

	require.Error(t, err)
}

func TestCreateConnection_ContaJaConectada(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := repomocks.NewMockConnectionRepository(ctrl)
	resolver := mocks.NewMockAccountNameResolver(ctrl)
	service := connecting.NewService(repo, resolver)

	repo.EXPECT().
		GetConnectionByAccountID("123").
		Return(&domain.Connection{ID: "conn1", AccountID: "123"}, nil)

	_, err := service.CreateConnection(context.Background(), &domain.CreateConnectionRequest{
		AccountID:   "123",
		AccessToken: "tok",
	})

	require.ErrorIs(t, err, connecting.ErrConnectionExists)
}

func TestCreateConnection_DadosObrigatorios(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := connecting.NewService(
		repomocks.NewMockConnectionRepository(ctrl),
		mocks.NewMockAccountNameResolver(ctrl),
	)

	_, err := service.CreateConnection(context.Background(), &domain.CreateConnectionRequest{
		AccountID: "123",
	})

	require.ErrorIs(t, err, connecting.ErrMissingRequiredData)
}

func TestUpdateConnection_TokenNovoReativaConexaoComErro(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := repomocks.NewMockConnectionRepository(ctrl)
	resolver := mocks.NewMockAccountNameResolver(ctrl)
	service := connecting.NewService(repo, resolver)

	repo.EXPECT().GetConnectionByID("conn1").Return(&domain.Connection{
		ID:        "conn1",
		AccountID: "123",
		Status:    domain.ConnectionStatusError,
	}, nil)

	newToken := "tok-novo"
	resolver.EXPECT().ResolveAccountName(gomock.Any(), "123", newToken).Return("Conta Demo", nil)

	var updated *domain.UpdateConnectionRequest
	repo.EXPECT().
		UpdateConnection(gomock.Any()).
		DoAndReturn(func(req *domain.UpdateConnectionRequest) error {
			updated = req
			return nil
		})

	err := service.UpdateConnection(context.Background(), &domain.UpdateConnectionRequest{
		ID:          "conn1",
		AccessToken: &newToken,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Status)
	assert.Equal(t, string(domain.ConnectionStatusActive), *updated.Status)
}

func TestDeleteConnection_Inexistente(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := repomocks.NewMockConnectionRepository(ctrl)
	service := connecting.NewService(repo, mocks.NewMockAccountNameResolver(ctrl))

	repo.EXPECT().GetConnectionByID("ghost").Return(nil, nil)

	err := service.DeleteConnection("ghost")

	require.ErrorIs(t, err, connecting.ErrConnectionNotFound)
}
