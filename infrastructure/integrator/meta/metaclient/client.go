package metaclient

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	metadomain "github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-extractor-api/internal/config"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/pkg/metrics"
)

// InsightsRequest descreve uma consulta ao relatório de insights de uma conta
type InsightsRequest struct {
	AccountID   string
	AccessToken string
	Level       domain.ReportLevel
	Fields      []string
	Breakdowns  []string
	Window      domain.ResolvedDateRange
	Limit       int
}

type Client interface {
	GetInsights(ctx context.Context, req InsightsRequest, progress domain.ProgressFunc) ([]metadomain.InsightRow, error)
	GetAdAccountName(ctx context.Context, accountID, accessToken string) (string, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	timeout := time.Duration(cfg.Meta.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	rps := cfg.Meta.RequestsPerSecond
	if rps <= 0 {
		rps = 2.0
	}

	// Espaça todas as requisições, inclusive a primeira de cada extração,
	// para ficar abaixo dos limites informais da API mesmo no caminho feliz
	limiter := rate.NewLimiter(rate.Limit(rps), 1)
	limiter.Allow()

	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
		metrics: m,
	}
}
