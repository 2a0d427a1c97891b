package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ad-extractor-api/internal/config"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/pkg/metrics"
)

func newTestClient(serverURL string, baseDelayMs int) Client {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.MaxRetries = 3
	cfg.Meta.RetryBaseDelayMs = baseDelayMs
	cfg.Meta.RequestsPerSecond = 1000 // sem espaçamento perceptível nos testes
	cfg.Meta.PageSize = 500
	cfg.Meta.TimeoutSeconds = 5

	return NewClient(cfg, metrics.NewWith(prometheus.NewRegistry()))
}

func testRequest() InsightsRequest {
	return InsightsRequest{
		AccountID:   "123",
		AccessToken: "token",
		Level:       domain.LevelCampaign,
		Fields:      []string{"campaign_id", "campaign_name", "impressions"},
		Window: domain.ResolvedDateRange{
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestGetInsights_SeguePaginacaoAteOFim(t *testing.T) {
	var requests atomic.Int32
	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := requests.Add(1)

		w.Header().Set("Content-Type", "application/json")
		if n == 1 {
			assert.Equal(t, "campaign", r.URL.Query().Get("level"))
			assert.Equal(t, "1", r.URL.Query().Get("time_increment"))
			assert.NotEmpty(t, r.URL.Query().Get("time_range"))

			fmt.Fprintf(w, `{
				"data": [
					{"campaign_id": "c1", "impressions": "100", "date_start": "2024-01-01"},
					{"campaign_id": "c2", "impressions": "200", "date_start": "2024-01-01"}
				],
				"paging": {"next": "%s/page2"}
			}`, server.URL)
			return
		}

		fmt.Fprint(w, `{
			"data": [
				{"campaign_id": "c3", "impressions": "300", "date_start": "2024-01-02"}
			]
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 10)

	var events []domain.Progress
	rows, err := client.GetInsights(context.Background(), testRequest(), func(p domain.Progress) {
		events = append(events, p)
	})

	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load(), "deve emitir exatamente uma requisição por página")
	require.Len(t, rows, 3)

	// A ordem das linhas preserva a ordem das páginas
	id1, _ := rows[0].String("campaign_id")
	id3, _ := rows[2].String("campaign_id")
	assert.Equal(t, "c1", id1)
	assert.Equal(t, "c3", id3)

	require.Len(t, events, 2)
	assert.Equal(t, domain.PhaseFetchingData, events[0].Phase)
	assert.Equal(t, 2, events[0].Current)
	assert.Equal(t, 3, events[1].Current)
}

func TestGetInsights_RetryAposRateLimit(t *testing.T) {
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := requests.Add(1)

		w.Header().Set("Content-Type", "application/json")
		if n == 1 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"message": "User request limit reached", "type": "OAuthException", "code": 17}}`)
			return
		}

		fmt.Fprint(w, `{"data": [{"campaign_id": "c1", "date_start": "2024-01-01"}]}`)
	}))
	defer server.Close()

	const baseDelayMs = 80
	client := newTestClient(server.URL, baseDelayMs)

	start := time.Now()
	rows, err := client.GetInsights(context.Background(), testRequest(), nil)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, int32(2), requests.Load(), "deve retornar após exatamente um retry")
	assert.GreaterOrEqual(t, elapsed, baseDelayMs*time.Millisecond, "deve aguardar pelo menos o atraso base antes do retry")
}

func TestGetInsights_RateLimitEsgotadoViraErroDeAPI(t *testing.T) {
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "Application request limit reached", "type": "OAuthException", "code": 4}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 1)

	_, err := client.GetInsights(context.Background(), testRequest(), nil)
	require.Error(t, err)

	var apiErr *domain.UpstreamApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 4, apiErr.Code)
	assert.Contains(t, apiErr.Message, "Application request limit reached")
	assert.Equal(t, int32(4), requests.Load(), "1 tentativa inicial + 3 retries")
}

func TestGetInsights_ErroDeNegocioNaoTemRetry(t *testing.T) {
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "Invalid OAuth access token", "type": "OAuthException", "code": 190}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 1)

	_, err := client.GetInsights(context.Background(), testRequest(), nil)
	require.Error(t, err)

	var apiErr *domain.UpstreamApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 190, apiErr.Code)
	assert.Equal(t, int32(1), requests.Load(), "erro de negócio não deve gerar retry")
}
