package middleware

import (
	"net/http"

	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-sync-api/pkg/log"
)

const (
	RoleAdmin    = 1
	RoleOperator = 2
	RoleViewer   = 3
)

// RoleMiddleware restringe a rota aos roles informados; depende das claims gravadas pelo AuthMiddleware
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r)
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			for _, role := range allowedRoles {
				if claims.UserRoleID == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.ForContext(r.Context()).WithFields(log.Fields{
				"user_id":      claims.UserID,
				"user_role_id": claims.UserRoleID,
			}).Warn("Acesso negado")
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

func ClaimsFromContext(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin)
}

// AdminOrOperator libera disparos de sincronização para o time de operação
func AdminOrOperator() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleOperator)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleOperator, RoleViewer)
}
