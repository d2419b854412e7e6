package domain

import (
	"errors"
	"fmt"
)

var (
	ErrReauthorizationRequired = errors.New("conta precisa ser reautorizada no marketplace")
	ErrInvalidGrant            = errors.New("refresh token rejeitado (invalid_grant)")
	ErrUnauthorized            = errors.New("marketplace rejeitou o access token")
	ErrNotFound                = errors.New("recurso não encontrado no marketplace")
	ErrRateLimited             = errors.New("limite de requisições do marketplace atingido")
	ErrUpstreamUnavailable     = errors.New("marketplace indisponível")
	ErrFeatureUnavailable      = errors.New("funcionalidade não habilitada para a conta")
	ErrAccountNotFound         = errors.New("conta não encontrada")
)

// AuthError indica falha na renovação do token; aborta a sincronização da conta
type AuthError struct {
	AccountID string
	Err       error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("account %s: %s: %v", e.AccountID, ErrReauthorizationRequired.Error(), e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) Is(target error) bool {
	return target == ErrReauthorizationRequired
}

func NewAuthError(accountID string, err error) *AuthError {
	return &AuthError{AccountID: accountID, Err: err}
}

func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// PersistenceError é a falha de um único upsert
type PersistenceError struct {
	Resource ResourceType
	Key      string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s %s: %v", e.Resource, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsRetryable indica falhas transitórias do marketplace, contadas por item/página
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUpstreamUnavailable)
}
