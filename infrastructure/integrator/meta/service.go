package meta

import (
	"context"

	metadomain "github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-extractor-api/internal/config"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/extracting"
)

// MetaIntegrator liga o caso de uso de extração ao cliente da Graph API
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchInsights implementa extracting.InsightsFetcher delegando ao cliente
// paginado da API.
func (s *MetaIntegrator) FetchInsights(ctx context.Context, params extracting.FetchParams, progress domain.ProgressFunc) ([]metadomain.InsightRow, error) {
	return s.Client.GetInsights(ctx, metaclient.InsightsRequest{
		AccountID:   params.AccountID,
		AccessToken: params.AccessToken,
		Level:       params.Level,
		Fields:      params.APIFields,
		Breakdowns:  params.Breakdowns,
		Window:      params.Window,
		Limit:       params.Limit,
	}, progress)
}

// ResolveAccountName valida o token contra a API buscando o nome da conta.
// Usado no cadastro e na atualização de conexões.
func (s *MetaIntegrator) ResolveAccountName(ctx context.Context, accountID, accessToken string) (string, error) {
	return s.Client.GetAdAccountName(ctx, accountID, accessToken)
}
