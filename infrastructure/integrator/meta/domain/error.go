package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsRateLimit verifica se o erro é de limite de requisições.
// Códigos 4 (app), 17 (usuário), 32 (página) e 613 (chamadas por hora);
// o subcódigo 2446079 aparece em limites de contas de anúncio.
func (e *ErrorDetails) IsRateLimit() bool {
	switch e.Code {
	case 4, 17, 32, 613:
		return true
	}
	return e.ErrorSubcode == 2446079
}

// IsTokenError verifica se o erro é de token expirado ou inválido.
// O código 190 representa "token expirado" nas respostas da API do Meta.
// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
func (e *ErrorDetails) IsTokenError() bool {
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}
