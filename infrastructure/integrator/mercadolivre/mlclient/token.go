package mlclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	mldomain "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

// RefreshToken troca o refresh token por um novo par de tokens (grant_type=refresh_token)
func (c *MLClient) RefreshToken(ctx context.Context, refreshToken string) (*mldomain.TokenResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", c.Cfg.MercadoLivre.ClientID)
	form.Set("client_secret", c.Cfg.MercadoLivre.ClientSecret)
	form.Set("refresh_token", refreshToken)

	endpoint := strings.TrimRight(c.Cfg.MercadoLivre.BaseURL, "/") + "/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var token mldomain.TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token: %w", err)
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: resposta sem access_token", domain.ErrInvalidGrant)
	}

	return &token, nil
}
