package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-extractor-api/infrastructure/repository"
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/config"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/extracting"
	"github.com/vfg2006/ad-extractor-api/pkg/utils"
)

// ExtractionSyncConfig representa a configuração do agendador de extrações em lote
type ExtractionSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SkipIfSyncedWithinH int
	SyncEnabled         bool
}

// ExtractionSyncService agenda e executa a extração diária de todas as
// conexões ativas, usando os campos populares do catálogo como seleção padrão.
type ExtractionSyncService struct {
	scheduler           *gocron.Scheduler
	config              ExtractionSyncConfig
	catalog             *catalog.Catalog
	connectionRepo      repository.ConnectionRepository
	extractor           extracting.Extractor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewExtractionSyncService cria uma nova instância do agendador de extrações
func NewExtractionSyncService(
	connectionRepo repository.ConnectionRepository,
	extractor extracting.Extractor,
	c *catalog.Catalog,
	appConfig *config.Config,
) *ExtractionSyncService {
	syncConfig := ExtractionSyncConfig{
		CronSchedule:        appConfig.ExtractionSync.CronSchedule,
		RequestDelaySeconds: appConfig.ExtractionSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.ExtractionSync.MaxConcurrentJobs,
		SkipIfSyncedWithinH: appConfig.ExtractionSync.SkipIfSyncedWithinH,
		SyncEnabled:         appConfig.ExtractionSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"skip_within_hours":     syncConfig.SkipIfSyncedWithinH,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de extrações carregada")

	return &ExtractionSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         syncConfig,
		catalog:        c,
		connectionRepo: connectionRepo,
		extractor:      extractor,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *ExtractionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de extrações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de extrações em lote")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllConnections(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de extrações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de extrações em lote")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização fora do horário agendado.
// Retorna erro se já houver uma execução em andamento.
func (s *ExtractionSyncService) TriggerManualSync(ctx context.Context) error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		return fmt.Errorf("sincronização de extrações já em andamento")
	}

	go s.syncAllConnections(ctx)
	return nil
}

// GetStatus retorna o estado atual do agendador
func (s *ExtractionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.SyncEnabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt
	}

	return status
}

// syncAllConnections executa a extração padrão para todas as conexões ativas
func (s *ExtractionSyncService) syncAllConnections(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de extrações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando sincronização de extrações para todas as conexões ativas")

	connections, err := s.getConnectionsToSync()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conexões para sincronização de extrações")
		return
	}

	if len(connections) == 0 {
		logrus.Info("Nenhuma conexão pendente de sincronização")
		return
	}

	s.processConnections(ctx, connections)

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"connections": len(connections),
	}).Info("Sincronização de extrações concluída")
}

// getConnectionsToSync lista as conexões ativas, descartando as sincronizadas
// dentro da janela de corte.
func (s *ExtractionSyncService) getConnectionsToSync() ([]*domain.Connection, error) {
	connections, err := s.connectionRepo.ListConnections([]domain.ConnectionStatus{domain.ConnectionStatusActive})
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-time.Duration(s.config.SkipIfSyncedWithinH) * time.Hour)

	pending := make([]*domain.Connection, 0, len(connections))
	for _, connection := range connections {
		if connection.LastSyncedAt != nil && connection.LastSyncedAt.After(cutoff) {
			logrus.WithFields(logrus.Fields{
				"connection_id":  connection.ID,
				"last_synced_at": connection.LastSyncedAt,
			}).Debug("Conexão sincronizada recentemente. Pulando.")
			continue
		}
		pending = append(pending, connection)
	}

	logrus.WithFields(logrus.Fields{
		"active":  len(connections),
		"pending": len(pending),
	}).Info("Conexões encontradas para sincronização de extrações")

	return pending, nil
}

// processConnections executa as extrações com concorrência limitada por semáforo
func (s *ExtractionSyncService) processConnections(ctx context.Context, connections []*domain.Connection) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, connection := range connections {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(conn *domain.Connection) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncConnection(ctx, conn)

			// Espaçar as conexões para não saturar a API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(connection)
	}

	wg.Wait()
}

// syncConnection executa a extração padrão de uma conexão: campos populares
// do nível campanha, últimos 7 dias sem o dia corrente.
func (s *ExtractionSyncService) syncConnection(ctx context.Context, connection *domain.Connection) {
	cfg := domain.ExtractionConfig{
		ConnectionID:   connection.ID,
		AccountID:      connection.AccountID,
		Level:          domain.LevelCampaign,
		SelectedFields: s.catalog.PopularFieldsForLevel(domain.LevelCampaign),
		DateRange: domain.DateRangeConfig{
			Preset:       domain.PresetLast7Days,
			IncludeToday: false,
		},
	}

	logrus.WithFields(logrus.Fields{
		"connection_id": connection.ID,
		"account_id":    connection.AccountID,
		"fields":        len(cfg.SelectedFields),
	}).Info("Sincronizando extração da conexão")

	result, err := s.extractor.Extract(ctx, cfg, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"connection_id": connection.ID,
			"error":         err.Error(),
		}).Error("Erro ao extrair dados da conexão")
		logrus.Debugf("Configuração da extração que falhou: %s", utils.PrettyJson(cfg))
		return
	}

	if !result.Success {
		logrus.WithFields(logrus.Fields{
			"connection_id": connection.ID,
			"error":         result.Error,
		}).Warn("Extração da conexão falhou")
		return
	}

	if err := s.connectionRepo.MarkSynced(connection.ID, time.Now()); err != nil {
		logrus.WithFields(logrus.Fields{
			"connection_id": connection.ID,
			"error":         err.Error(),
		}).Warn("Falha ao registrar a sincronização da conexão")
	}

	logrus.WithFields(logrus.Fields{
		"connection_id": connection.ID,
		"records":       result.TotalRecords,
	}).Info("Extração da conexão concluída")
}
