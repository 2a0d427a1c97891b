package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/ad-extractor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/config"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	extractingmocks "github.com/vfg2006/ad-extractor-api/internal/usecases/extracting/mocks"
)

func newSyncService(t *testing.T) (*ExtractionSyncService, *repomocks.MockConnectionRepository, *extractingmocks.MockExtractor) {
	ctrl := gomock.NewController(t)

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	extractor := extractingmocks.NewMockExtractor(ctrl)

	cfg := &config.Config{}
	cfg.ExtractionSync.CronSchedule = "0 3 * * *"
	cfg.ExtractionSync.MaxConcurrentJobs = 1
	cfg.ExtractionSync.SkipIfSyncedWithinH = 12
	cfg.ExtractionSync.Enabled = true

	service := NewExtractionSyncService(connectionRepo, extractor, catalog.New(), cfg)

	return service, connectionRepo, extractor
}

func TestSyncAllConnections_PulaConexoesSincronizadasRecentemente(t *testing.T) {
	service, connectionRepo, extractor := newSyncService(t)

	recent := time.Now().Add(-1 * time.Hour)
	stale := time.Now().Add(-48 * time.Hour)

	connectionRepo.EXPECT().
		ListConnections([]domain.ConnectionStatus{domain.ConnectionStatusActive}).
		Return([]*domain.Connection{
			{ID: "recente", AccountID: "1", LastSyncedAt: &recent},
			{ID: "antiga", AccountID: "2", LastSyncedAt: &stale},
			{ID: "nunca", AccountID: "3"},
		}, nil)

	// Só as conexões fora da janela de corte são extraídas
	var extracted []string
	extractor.EXPECT().
		Extract(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg domain.ExtractionConfig, _ domain.ProgressFunc) (*domain.ExtractionResult, error) {
			extracted = append(extracted, cfg.ConnectionID)

			assert.Equal(t, domain.LevelCampaign, cfg.Level)
			assert.Equal(t, domain.PresetLast7Days, cfg.DateRange.Preset)
			assert.False(t, cfg.DateRange.IncludeToday)
			assert.NotEmpty(t, cfg.SelectedFields)

			return &domain.ExtractionResult{Success: true, TotalRecords: 10}, nil
		}).
		Times(2)

	connectionRepo.EXPECT().MarkSynced("antiga", gomock.Any()).Return(nil)
	connectionRepo.EXPECT().MarkSynced("nunca", gomock.Any()).Return(nil)

	service.syncAllConnections(context.Background())

	assert.ElementsMatch(t, []string{"antiga", "nunca"}, extracted)
}

func TestSyncAllConnections_FalhaNaoMarcaComoSincronizada(t *testing.T) {
	service, connectionRepo, extractor := newSyncService(t)

	connectionRepo.EXPECT().
		ListConnections(gomock.Any()).
		Return([]*domain.Connection{{ID: "conn1", AccountID: "1"}}, nil)

	extractor.EXPECT().
		Extract(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ExtractionResult{Success: false, Error: "token expirado"}, nil)

	// Nenhuma expectativa de MarkSynced: extração falhou
	service.syncAllConnections(context.Background())
}

func TestTriggerManualSync_RecusaExecucaoConcorrente(t *testing.T) {
	service, _, _ := newSyncService(t)

	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	err := service.TriggerManualSync(context.Background())

	require.Error(t, err)
}

func TestGetStatus(t *testing.T) {
	service, _, _ := newSyncService(t)

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 3 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["running"])
}
