package extracting_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta/domain"
	repomocks "github.com/vfg2006/ad-extractor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/extracting"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/extracting/mocks"
	"github.com/vfg2006/ad-extractor-api/pkg/metrics"
)

type serviceFixture struct {
	service        *extracting.Service
	fetcher        *mocks.MockInsightsFetcher
	connectionRepo *repomocks.MockConnectionRepository
	historyRepo    *repomocks.MockExtractionHistoryRepository
	datasetRepo    *repomocks.MockDatasetRepository
}

func newServiceFixture(t *testing.T, now time.Time) *serviceFixture {
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		fetcher:        mocks.NewMockInsightsFetcher(ctrl),
		connectionRepo: repomocks.NewMockConnectionRepository(ctrl),
		historyRepo:    repomocks.NewMockExtractionHistoryRepository(ctrl),
		datasetRepo:    repomocks.NewMockDatasetRepository(ctrl),
	}

	f.service = extracting.NewService(
		catalog.New(),
		f.fetcher,
		f.connectionRepo,
		f.historyRepo,
		f.datasetRepo,
		metrics.NewWith(prometheus.NewRegistry()),
	).WithClock(func() time.Time { return now })

	return f
}

func extractionConfig() domain.ExtractionConfig {
	return domain.ExtractionConfig{
		ConnectionID:   "conn1",
		AccountID:      "987654",
		Level:          domain.LevelCampaign,
		SelectedFields: []string{"impressions", "spend", "purchases"},
		DateRange:      domain.DateRangeConfig{Preset: domain.PresetLast7Days},
	}
}

func activeConnection() *domain.Connection {
	return &domain.Connection{
		ID:          "conn1",
		AccountID:   "987654",
		Name:        "Conta Demo",
		AccessToken: "token-demo",
		Status:      domain.ConnectionStatusActive,
	}
}

func TestExtract_FluxoCompleto(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	f := newServiceFixture(t, now)

	f.connectionRepo.EXPECT().GetConnectionByID("conn1").Return(activeConnection(), nil)

	var fetchedParams extracting.FetchParams
	f.fetcher.EXPECT().
		FetchInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params extracting.FetchParams, _ domain.ProgressFunc) ([]metadomain.InsightRow, error) {
			fetchedParams = params
			return []metadomain.InsightRow{
				{"date_start": "2024-05-08", "campaign_id": "c1", "impressions": "100", "spend": "10.50"},
				{"date_start": "2024-05-09", "campaign_id": "c1", "impressions": "200", "spend": "20.00"},
				{"date_start": "2024-05-10", "campaign_id": "c2", "impressions": "300", "spend": "30.00"},
			}, nil
		})

	f.datasetRepo.EXPECT().SaveDataset(gomock.Any()).Return(nil)

	var savedEntry *domain.ExtractionHistoryEntry
	f.historyRepo.EXPECT().
		SaveEntry(gomock.Any()).
		DoAndReturn(func(entry *domain.ExtractionHistoryEntry) error {
			savedEntry = entry
			return nil
		})

	var phases []domain.ExtractionPhase
	result, err := f.service.Extract(context.Background(), extractionConfig(), func(p domain.Progress) {
		phases = append(phases, p.Phase)
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.TotalRecords)
	assert.Len(t, result.Data, 3)

	// data, campaign_id, campaign_name, impressions, spend, purchases
	assert.Len(t, result.Columns, 6)

	// last_7_days sem o dia de hoje: 08/05 a 14/05
	require.NotNil(t, result.DateRange)
	assert.Equal(t, time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), result.DateRange.StartDate)
	assert.Equal(t, time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC), result.DateRange.EndDate)

	// A busca recebe o token da conexão e a conta informada na configuração
	assert.Equal(t, "987654", fetchedParams.AccountID)
	assert.Equal(t, "token-demo", fetchedParams.AccessToken)
	assert.Contains(t, fetchedParams.APIFields, "actions")

	require.NotNil(t, savedEntry)
	assert.Equal(t, domain.ExtractionStatusCompleted, savedEntry.Status)
	assert.Equal(t, 3, savedEntry.RecordCount)
	assert.True(t, savedEntry.IncludesConversions)

	assert.Equal(t, domain.PhaseValidating, phases[0])
	assert.Equal(t, domain.PhaseComplete, phases[len(phases)-1])
}

func TestExtract_FalhaUpstreamRegistraHistorico(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	f := newServiceFixture(t, now)

	f.connectionRepo.EXPECT().GetConnectionByID("conn1").Return(activeConnection(), nil)

	f.fetcher.EXPECT().
		FetchInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &domain.UpstreamApiError{Code: 190, Message: "Invalid OAuth access token"})

	var savedEntry *domain.ExtractionHistoryEntry
	f.historyRepo.EXPECT().
		SaveEntry(gomock.Any()).
		DoAndReturn(func(entry *domain.ExtractionHistoryEntry) error {
			savedEntry = entry
			return nil
		})

	result, err := f.service.Extract(context.Background(), extractionConfig(), nil)

	require.NoError(t, err, "falha upstream não vira erro de transporte")
	require.NotNil(t, result)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Invalid OAuth access token")
	assert.Zero(t, result.TotalRecords)

	require.NotNil(t, savedEntry)
	assert.Equal(t, domain.ExtractionStatusFailed, savedEntry.Status)
	require.NotNil(t, savedEntry.ErrorMessage)
}

func TestExtract_FalhaNoHistoricoNaoFalhaAExtracao(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	f := newServiceFixture(t, now)

	f.connectionRepo.EXPECT().GetConnectionByID("conn1").Return(activeConnection(), nil)

	f.fetcher.EXPECT().
		FetchInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]metadomain.InsightRow{
			{"date_start": "2024-05-08", "impressions": "100"},
		}, nil)

	f.datasetRepo.EXPECT().SaveDataset(gomock.Any()).Return(nil)
	f.historyRepo.EXPECT().SaveEntry(gomock.Any()).Return(assert.AnError)

	result, err := f.service.Extract(context.Background(), extractionConfig(), nil)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.TotalRecords)
}

func TestExtract_ConexaoInexistente(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	f := newServiceFixture(t, now)

	f.connectionRepo.EXPECT().GetConnectionByID("conn1").Return(nil, nil)

	result, err := f.service.Extract(context.Background(), extractionConfig(), nil)

	require.ErrorIs(t, err, extracting.ErrConnectionNotFound)
	assert.Nil(t, result)
}

func TestExtract_ConfiguracaoInvalidaNaoTocaARede(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	f := newServiceFixture(t, now)

	cfg := extractionConfig()
	cfg.SelectedFields = []string{"mindshare"}

	// Nenhuma expectativa nos mocks: validação falha antes de qualquer chamada
	result, err := f.service.Extract(context.Background(), cfg, nil)

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
	assert.Nil(t, result)
}
