package domain

import (
	"errors"
	"fmt"
)

// ConfigurationError indica uma requisição de extração inválida. Sempre
// detectado antes de qualquer chamada de rede e nunca passível de retry.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuração de extração inválida: %s", e.Reason)
}

// NewConfigurationError cria um erro de configuração com o motivo formatado
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigurationError verifica se o erro (ou sua cadeia) é de configuração
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// UpstreamRateLimitError sinaliza limite de requisições da API do Meta.
// Transitório: o motor de busca faz retry com backoff antes de escalar.
type UpstreamRateLimitError struct {
	Code    int
	Subcode int
	Message string
}

func (e *UpstreamRateLimitError) Error() string {
	return fmt.Sprintf("limite de requisições da API atingido (code=%d): %s", e.Code, e.Message)
}

// UpstreamApiError é qualquer outra falha reportada pela API externa
// (token inválido, permissão negada, requisição malformada).
type UpstreamApiError struct {
	Code    int
	Message string
}

func (e *UpstreamApiError) Error() string {
	return fmt.Sprintf("erro da API externa (code=%d): %s", e.Code, e.Message)
}
