package mlclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	mldomain "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mlclient_mocks.go -package=mocks
type Client interface {
	RefreshToken(ctx context.Context, refreshToken string) (*mldomain.TokenResponse, error)
	GetUser(ctx context.Context, token, userID string) (*mldomain.User, error)
	SearchItems(ctx context.Context, token, userID string, offset, limit int) (*mldomain.ItemSearchResponse, error)
	GetItem(ctx context.Context, token, itemID string) (*mldomain.Item, error)
	GetItemDescription(ctx context.Context, token, itemID string) (*mldomain.ItemDescription, error)
	SearchOrders(ctx context.Context, token, sellerID string, from, to time.Time, offset, limit int) (*mldomain.OrderSearchResponse, error)
	GetOrder(ctx context.Context, token, orderID string) (*mldomain.Order, error)
	GetFulfillmentStock(ctx context.Context, token, inventoryID string) (*mldomain.FulfillmentStock, error)
	GetAdvertisers(ctx context.Context, token string) (*mldomain.AdvertiserResponse, error)
	GetCampaigns(ctx context.Context, token, advertiserID string, from, to time.Time, offset, limit int) (*mldomain.CampaignsResponse, error)
	GetItemAd(ctx context.Context, token, itemID string) (*mldomain.ItemAd, error)
	GetRecoveryStatus(ctx context.Context, token, userID string) (*mldomain.RecoveryStatus, error)
}

type MLClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.MercadoLivre.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.MercadoLivre.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.MercadoLivre.RequestsPerSecond)
	}

	return &MLClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

type requestOption func(req *http.Request)

func withHeader(key, value string) requestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// get executa um GET autenticado e decodifica o corpo em out
func (c *MLClient) get(ctx context.Context, token, path string, params url.Values, out any, opts ...requestOption) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := strings.TrimRight(c.Cfg.MercadoLivre.BaseURL, "/") + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("GET %s: %w: %v", path, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao decodificar JSON")
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}

	return nil
}

// HandleResponse traduz o status HTTP na taxonomia de erros do domínio
func (c *MLClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao ler resposta: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var apiErr mldomain.ErrorResponse
	_ = json.Unmarshal(body, &apiErr)

	switch {
	case resp.StatusCode == http.StatusBadRequest && apiErr.IsInvalidGrant():
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidGrant, apiErr.Message)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, apiErr.Message)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, apiErr.Message)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, domain.ErrRateLimited
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("status %d: %s (%s)", resp.StatusCode, apiErr.Message, apiErr.ErrorCode)
	}
}
