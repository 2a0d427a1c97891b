package extracting

import (
	"context"

	metadomain "github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

// FetchParams são os parâmetros já traduzidos para o vocabulário da API do
// Meta, prontos para o motor de busca paginado.
type FetchParams struct {
	AccountID   string
	AccessToken string
	Level       domain.ReportLevel
	APIFields   []string
	Breakdowns  []string
	Window      domain.ResolvedDateRange
	Limit       int
}

// InsightsFetcher abstrai o motor de busca paginado contra a API do Meta
type InsightsFetcher interface {
	FetchInsights(ctx context.Context, params FetchParams, progress domain.ProgressFunc) ([]metadomain.InsightRow, error)
}

// Extractor executa extrações configuráveis de ponta a ponta
type Extractor interface {
	Extract(ctx context.Context, cfg domain.ExtractionConfig, progress domain.ProgressFunc) (*domain.ExtractionResult, error)
}
