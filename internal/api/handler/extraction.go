package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-extractor-api/infrastructure/repository"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/extracting"
	"github.com/vfg2006/ad-extractor-api/pkg/apiErrors"
	"github.com/vfg2006/ad-extractor-api/pkg/utils"
)

// ExtractionRequest é o corpo aceito pela rota de extração. As datas do
// período custom chegam como string no formato YYYY-MM-DD.
type ExtractionRequest struct {
	ConnectionID   string           `json:"connection_id"`
	AccountID      string           `json:"account_id"`
	Level          string           `json:"level"`
	SelectedFields []string         `json:"selected_fields"`
	Breakdowns     []string         `json:"breakdowns"`
	DateRange      DateRangePayload `json:"date_range"`
	TemplateID     *string          `json:"template_id,omitempty"`
	Limit          int              `json:"limit,omitempty"`
}

type DateRangePayload struct {
	Preset       string `json:"preset"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	IncludeToday bool   `json:"include_today"`
}

func (req ExtractionRequest) toConfig() (domain.ExtractionConfig, error) {
	cfg := domain.ExtractionConfig{
		ConnectionID:   req.ConnectionID,
		AccountID:      req.AccountID,
		Level:          domain.ReportLevel(req.Level),
		SelectedFields: req.SelectedFields,
		Breakdowns:     req.Breakdowns,
		TemplateID:     req.TemplateID,
		Limit:          req.Limit,
		DateRange: domain.DateRangeConfig{
			Preset:       domain.DatePreset(req.DateRange.Preset),
			IncludeToday: req.DateRange.IncludeToday,
		},
	}

	if req.DateRange.StartDate != "" {
		startDate, err := utils.ParseDate(req.DateRange.StartDate)
		if err != nil {
			return cfg, err
		}
		cfg.DateRange.StartDate = startDate
	}

	if req.DateRange.EndDate != "" {
		endDate, err := utils.ParseDate(req.DateRange.EndDate)
		if err != nil {
			return cfg, err
		}
		cfg.DateRange.EndDate = endDate
	}

	return cfg, nil
}

// RunExtraction executa uma extração sob demanda. A resposta sempre carrega o
// envelope de resultado; falhas da API externa voltam com Success=false.
func RunExtraction(extractor extracting.Extractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExtractionRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		cfg, err := req.toConfig()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		result, err := extractor.Extract(r.Context(), cfg, nil)
		if err != nil {
			handleExtractionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
		}
	}
}

// ListExtractionHistory lista o histórico de extrações, opcionalmente
// filtrado por conexão.
func ListExtractionHistory(historyRepo repository.ExtractionHistoryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		var entries []*domain.ExtractionHistoryEntry
		var err error

		if connectionID := r.URL.Query().Get("connection_id"); connectionID != "" {
			entries, err = historyRepo.ListByConnection(connectionID, limit)
		} else {
			entries, err = historyRepo.ListRecent(limit)
		}

		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar histórico de extrações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"history": entries,
			"total":   len(entries),
		})
	}
}

func handleExtractionError(w http.ResponseWriter, err error) {
	if domain.IsConfigurationError(err) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidExtractionConfig, err.Error(), nil)
		return
	}

	if errors.Is(err, extracting.ErrConnectionNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrConnectionNotFound, "Conexão não encontrada", nil)
		return
	}

	var rateLimitErr *domain.UpstreamRateLimitError
	if errors.As(err, &rateLimitErr) {
		apiErrors.WriteError(w, apiErrors.ErrUpstreamRateLimit, rateLimitErr.Message, nil)
		return
	}

	var upstreamErr *domain.UpstreamApiError
	if errors.As(err, &upstreamErr) {
		apiErrors.WriteError(w, apiErrors.ErrUpstreamFailure, upstreamErr.Message, nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao executar extração", nil)
}
