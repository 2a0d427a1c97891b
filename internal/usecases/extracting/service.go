package extracting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-extractor-api/infrastructure/repository"
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/pkg/metrics"
)

// ErrConnectionNotFound indica que a conexão referenciada não existe
var ErrConnectionNotFound = errors.New("conexão não encontrada")

// Service orquestra a extração de ponta a ponta: validação, resolução do
// período, busca paginada, projeção e persistência do resultado.
type Service struct {
	catalog              *catalog.Catalog
	validator            *Validator
	paramsBuilder        *ParamsBuilder
	projector            *Projector
	fetcher              InsightsFetcher
	connectionRepository repository.ConnectionRepository
	historyRepository    repository.ExtractionHistoryRepository
	datasetRepository    repository.DatasetRepository
	metrics              *metrics.Metrics

	// Injetável nos testes para fixar o relógio
	now func() time.Time
}

func NewService(
	c *catalog.Catalog,
	fetcher InsightsFetcher,
	connectionRepo repository.ConnectionRepository,
	historyRepo repository.ExtractionHistoryRepository,
	datasetRepo repository.DatasetRepository,
	m *metrics.Metrics,
) *Service {
	return &Service{
		catalog:              c,
		validator:            NewValidator(c),
		paramsBuilder:        NewParamsBuilder(c),
		projector:            NewProjector(c),
		fetcher:              fetcher,
		connectionRepository: connectionRepo,
		historyRepository:    historyRepo,
		datasetRepository:    datasetRepo,
		metrics:              m,
		now:                  time.Now,
	}
}

// WithClock troca a fonte de tempo usada para resolver presets e medir duração
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Extract executa uma extração completa. Erros de configuração e conexão
// inexistente retornam como erro; falhas da API externa retornam um resultado
// com Success=false, já registrado no histórico.
func (s *Service) Extract(ctx context.Context, cfg domain.ExtractionConfig, progress domain.ProgressFunc) (*domain.ExtractionResult, error) {
	start := s.now()

	progress.Report(domain.Progress{
		Phase:      domain.PhaseValidating,
		Message:    "Validando configuração",
		Percentage: 5,
	})

	if err := s.validator.Validate(cfg); err != nil {
		return nil, err
	}

	window, err := ResolveDateRange(cfg.DateRange, start)
	if err != nil {
		return nil, err
	}

	connection, err := s.connectionRepository.GetConnectionByID(cfg.ConnectionID)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao carregar a conexão")
	}
	if connection == nil {
		return nil, ErrConnectionNotFound
	}

	apiFields, apiBreakdowns, includesConversions, err := s.paramsBuilder.Build(cfg)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"connection_id": cfg.ConnectionID,
		"account_id":    cfg.AccountID,
		"level":         cfg.Level,
		"fields":        len(apiFields),
		"breakdowns":    cfg.Breakdowns,
		"start_date":    window.StartDate.Format(time.DateOnly),
		"end_date":      window.EndDate.Format(time.DateOnly),
	}).Info("Iniciando extração")

	rows, err := s.fetcher.FetchInsights(ctx, FetchParams{
		AccountID:   cfg.AccountID,
		AccessToken: connection.AccessToken,
		Level:       cfg.Level,
		APIFields:   apiFields,
		Breakdowns:  apiBreakdowns,
		Window:      window,
		Limit:       cfg.Limit,
	}, progress)
	if err != nil {
		return s.failExtraction(cfg, window, includesConversions, start, err, progress), nil
	}

	progress.Report(domain.Progress{
		Phase:      domain.PhaseProcessing,
		Current:    len(rows),
		Total:      len(rows),
		Message:    "Processando registros",
		Percentage: 80,
	})

	records := s.projector.Project(rows, cfg)
	columns := s.projector.BuildColumns(cfg)

	progress.Report(domain.Progress{
		Phase:      domain.PhaseSaving,
		Message:    "Salvando resultado",
		Percentage: 90,
	})

	duration := s.now().Sub(start)

	s.saveDataset(cfg, records, columns)
	s.saveHistory(cfg, window, includesConversions, len(records), duration, domain.ExtractionStatusCompleted, nil)

	s.metrics.RecordExtraction(string(cfg.Level), "completed", duration, len(records))

	progress.Report(domain.Progress{
		Phase:      domain.PhaseComplete,
		Current:    len(records),
		Total:      len(records),
		Message:    "Extração concluída",
		Percentage: 100,
	})

	logrus.WithFields(logrus.Fields{
		"connection_id": cfg.ConnectionID,
		"level":         cfg.Level,
		"records":       len(records),
		"duration_ms":   duration.Milliseconds(),
	}).Info("Extração concluída")

	return &domain.ExtractionResult{
		Success:      true,
		Data:         records,
		Columns:      columns,
		TotalRecords: len(records),
		DateRange:    &window,
		DurationMs:   duration.Milliseconds(),
	}, nil
}

// failExtraction registra a falha no histórico e monta o resultado de erro.
// A falha upstream não vira erro de transporte: o chamador recebe o envelope
// com Success=false e a mensagem.
func (s *Service) failExtraction(
	cfg domain.ExtractionConfig,
	window domain.ResolvedDateRange,
	includesConversions bool,
	start time.Time,
	cause error,
	progress domain.ProgressFunc,
) *domain.ExtractionResult {
	duration := s.now().Sub(start)
	message := cause.Error()

	logrus.WithFields(logrus.Fields{
		"connection_id": cfg.ConnectionID,
		"level":         cfg.Level,
		"error":         message,
	}).Error("Extração falhou")

	s.saveHistory(cfg, window, includesConversions, 0, duration, domain.ExtractionStatusFailed, &message)
	s.metrics.RecordExtraction(string(cfg.Level), "failed", duration, 0)

	progress.Report(domain.Progress{
		Phase:   domain.PhaseError,
		Message: message,
	})

	return &domain.ExtractionResult{
		Success:    false,
		DateRange:  &window,
		DurationMs: duration.Milliseconds(),
		Error:      message,
	}
}

// saveDataset persiste o snapshot. Falha aqui não falha a extração: os dados
// já estão no resultado que o chamador vai receber.
func (s *Service) saveDataset(cfg domain.ExtractionConfig, records []domain.Record, columns []domain.ColumnMeta) {
	dataset := &domain.Dataset{
		ConnectionID: cfg.ConnectionID,
		Level:        cfg.Level,
		Rows:         records,
		Columns:      columns,
	}

	if err := s.datasetRepository.SaveDataset(dataset); err != nil {
		logrus.WithFields(logrus.Fields{
			"connection_id": cfg.ConnectionID,
			"error":         err.Error(),
		}).Warn("Falha ao salvar o dataset da extração")
	}
}

// saveHistory grava o registro de auditoria. Falha aqui também não falha a
// extração; só é logada e contada na métrica.
func (s *Service) saveHistory(
	cfg domain.ExtractionConfig,
	window domain.ResolvedDateRange,
	includesConversions bool,
	recordCount int,
	duration time.Duration,
	status domain.ExtractionStatus,
	errorMessage *string,
) {
	entry := &domain.ExtractionHistoryEntry{
		ConnectionID:        cfg.ConnectionID,
		Level:               cfg.Level,
		Fields:              cfg.SelectedFields,
		Breakdowns:          cfg.Breakdowns,
		IncludesConversions: includesConversions,
		StartDate:           window.StartDate,
		EndDate:             window.EndDate,
		RecordCount:         recordCount,
		DurationMs:          duration.Milliseconds(),
		Status:              status,
		ErrorMessage:        errorMessage,
	}

	if err := s.historyRepository.SaveEntry(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"connection_id": cfg.ConnectionID,
			"error":         err.Error(),
		}).Warn("Falha ao gravar o histórico da extração")
		s.metrics.RecordHistoryWriteFailure()
	}
}
