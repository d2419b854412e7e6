package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

func TestService_IssueAndValidateToken(t *testing.T) {
	svc := NewService(&config.Config{SecretKey: "segredo"})

	token, err := svc.IssueToken(domain.Claims{UserID: 7, UserEmail: "ops@example.com", UserRoleID: 1}, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 1, claims.UserRoleID)
	assert.Equal(t, "ops@example.com", claims.UserEmail)
}

func TestService_ValidateToken(t *testing.T) {
	tests := []struct {
		name      string
		setup     func() (Authenticator, string)
		expectErr error
	}{
		{
			name: "token assinado com outra chave",
			setup: func() (Authenticator, string) {
				other := NewService(&config.Config{SecretKey: "outra"})
				token, _ := other.IssueToken(domain.Claims{UserID: 1}, time.Hour)
				return NewService(&config.Config{SecretKey: "segredo"}), token
			},
			expectErr: ErrInvalidToken,
		},
		{
			name: "token expirado",
			setup: func() (Authenticator, string) {
				svc := &Service{
					cfg: &config.Config{SecretKey: "segredo"},
					now: func() time.Time { return time.Now().Add(-48 * time.Hour) },
				}
				token, _ := svc.IssueToken(domain.Claims{UserID: 1}, time.Hour)
				return svc, token
			},
			expectErr: ErrExpiredToken,
		},
		{
			name: "token malformado",
			setup: func() (Authenticator, string) {
				return NewService(&config.Config{SecretKey: "segredo"}), "nao-e-um-jwt"
			},
			expectErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, token := tt.setup()

			claims, err := svc.ValidateToken(token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestService_IssueTokenWithoutKey(t *testing.T) {
	svc := NewService(&config.Config{})

	_, err := svc.IssueToken(domain.Claims{UserID: 1}, time.Hour)

	assert.ErrorIs(t, err, ErrMissingKey)
}
