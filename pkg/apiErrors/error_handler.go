package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrResourceNotFound    = "VAL_004" // Rota ou recurso inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método HTTP não suportado na rota

	// Erros de sincronização (3000-3999)
	ErrReauthorizationRequired = "SYNC_001" // Conta precisa ser reconectada ao marketplace
	ErrSyncAlreadyRunning      = "SYNC_002" // Sincronização da conta já em andamento
	ErrAccountNotFound         = "SYNC_003" // Conta do marketplace não encontrada
	ErrMetricsNotFound         = "SYNC_004" // Conta ainda sem métricas calculadas

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:            http.StatusUnauthorized,
	ErrExpiredToken:            http.StatusUnauthorized,
	ErrInsufficientPrivilege:   http.StatusForbidden,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrMissingRequiredData:     http.StatusBadRequest,
	ErrInvalidFormat:           http.StatusBadRequest,
	ErrResourceNotFound:        http.StatusNotFound,
	ErrMethodNotAllowed:        http.StatusMethodNotAllowed,
	ErrReauthorizationRequired: http.StatusPreconditionFailed,
	ErrSyncAlreadyRunning:      http.StatusConflict,
	ErrAccountNotFound:         http.StatusNotFound,
	ErrMetricsNotFound:         http.StatusNotFound,
	ErrInternalServer:          http.StatusInternalServerError,
	ErrDatabaseOperation:       http.StatusInternalServerError,
	ErrExternalService:         http.StatusBadGateway,
	ErrCommunication:           http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código, 500 para códigos desconhecidos
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
