package mldomain

import "strings"

// ErrorResponse representa a estrutura de erro da API do Mercado Livre
type ErrorResponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error"`
	Status    int    `json:"status"`
	Cause     []any  `json:"cause"`
}

// IsInvalidGrant indica refresh token revogado, expirado ou já utilizado
func (e *ErrorResponse) IsInvalidGrant() bool {
	return strings.EqualFold(e.ErrorCode, "invalid_grant")
}
