package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

// GetInsights consulta o relatório de insights da conta, seguindo os cursores
// de paginação até o fim e acumulando todas as linhas antes de retornar.
// As páginas são buscadas estritamente em sequência, então a ordem das linhas
// preserva a ordem retornada pela API.
func (c *MetaClient) GetInsights(ctx context.Context, req InsightsRequest, progress domain.ProgressFunc) ([]metadomain.InsightRow, error) {
	pageURL := c.buildInsightsURL(req)

	rows := make([]metadomain.InsightRow, 0)
	page := 0

	for pageURL != "" {
		response, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		rows = append(rows, response.Data...)
		page++

		progress.Report(domain.Progress{
			Phase:   domain.PhaseFetchingData,
			Current: len(rows),
			Message: fmt.Sprintf("Página %d processada, %d registros acumulados", page, len(rows)),
		})

		pageURL = ""
		if response.Paging != nil {
			pageURL = response.Paging.Next
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": req.AccountID,
		"level":      req.Level,
		"pages":      page,
		"rows":       len(rows),
	}).Debug("insights: fetch completed")

	return rows, nil
}

func (c *MetaClient) buildInsightsURL(req InsightsRequest) string {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, req.AccountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
		req.Window.StartDate.Format(time.DateOnly),
		req.Window.EndDate.Format(time.DateOnly),
	)

	limit := req.Limit
	if limit <= 0 {
		limit = c.Cfg.Meta.PageSize
	}

	params := &url.Values{}
	params.Add("level", string(req.Level))
	params.Add("fields", strings.Join(req.Fields, ","))
	params.Add("time_range", timeRange)
	// time_increment=1 força granularidade diária nas linhas
	params.Add("time_increment", "1")
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}
	if len(req.Breakdowns) > 0 {
		params.Add("breakdowns", strings.Join(req.Breakdowns, ","))
	}
	params.Add("access_token", req.AccessToken)

	return baseURL + "?" + params.Encode()
}

// fetchPage busca uma página com retry limitado: backoff linear para erros de
// rate limit, atraso fixo para falhas de transporte, nenhum retry para os
// demais erros de negócio reportados pela API.
func (c *MetaClient) fetchPage(ctx context.Context, pageURL string) (*metadomain.InsightsResponse, error) {
	baseDelay := time.Duration(c.Cfg.Meta.RetryBaseDelayMs) * time.Millisecond
	maxRetries := c.Cfg.Meta.MaxRetries

	var lastErr error

	for attempt := 1; attempt <= maxRetries+1; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		response, err := c.doRequest(ctx, pageURL)
		if err != nil {
			// Falha de transporte: retry com atraso fixo
			lastErr = err
			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
				"error":   err.Error(),
			}).Warn("insights: transport failure, will retry")

			if attempt <= maxRetries {
				c.metrics.RecordUpstreamRetry("transport")
				if err := sleepCtx(ctx, baseDelay); err != nil {
					return nil, err
				}
				continue
			}
			break
		}

		if response.Error != nil {
			if response.Error.IsRateLimit() {
				lastErr = &domain.UpstreamRateLimitError{
					Code:    response.Error.Code,
					Subcode: response.Error.ErrorSubcode,
					Message: response.Error.Message,
				}

				logrus.WithFields(logrus.Fields{
					"attempt": attempt,
					"code":    response.Error.Code,
				}).Warn("insights: rate limited by upstream")

				if attempt <= maxRetries {
					c.metrics.RecordUpstreamRetry("rate_limit")
					// Backoff linear: base × número da tentativa
					if err := sleepCtx(ctx, baseDelay*time.Duration(attempt)); err != nil {
						return nil, err
					}
					continue
				}

				// Orçamento de retries esgotado: escala para erro terminal
				return nil, &domain.UpstreamApiError{
					Code:    response.Error.Code,
					Message: response.Error.Message,
				}
			}

			if response.Error.IsTokenError() {
				logrus.WithField("code", response.Error.Code).Error("insights: access token expired or invalid")
			}

			// Erro de negócio da API: terminal, sem retry
			return nil, &domain.UpstreamApiError{
				Code:    response.Error.Code,
				Message: response.Error.Message,
			}
		}

		return response, nil
	}

	return nil, fmt.Errorf("falha ao consultar a API do Meta após %d tentativas: %w", maxRetries+1, lastErr)
}

func (c *MetaClient) doRequest(ctx context.Context, pageURL string) (*metadomain.InsightsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstreamCall("network_error", time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordUpstreamCall("read_error", time.Since(start))
		return nil, err
	}

	// A API do Meta devolve o envelope de erro com status != 200,
	// então o decode acontece antes de qualquer verificação de status
	var response metadomain.InsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		c.metrics.RecordUpstreamCall("decode_error", time.Since(start))
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("resposta inesperada da API (status %d)", resp.StatusCode)
		}
		return nil, err
	}

	status := "success"
	if response.Error != nil {
		status = "upstream_error"
	}
	c.metrics.RecordUpstreamCall(status, time.Since(start))

	return &response, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
