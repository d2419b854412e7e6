package mlclient

import (
	"context"

	mldomain "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/domain"
)

func (c *MLClient) GetUser(ctx context.Context, token, userID string) (*mldomain.User, error) {
	var user mldomain.User
	if err := c.get(ctx, token, "/users/"+userID, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *MLClient) GetRecoveryStatus(ctx context.Context, token, userID string) (*mldomain.RecoveryStatus, error) {
	var status mldomain.RecoveryStatus
	if err := c.get(ctx, token, "/users/"+userID+"/reputation/recovery", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
