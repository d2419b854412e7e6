package mlclient

import (
	"context"

	mldomain "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/domain"
)

func (c *MLClient) GetFulfillmentStock(ctx context.Context, token, inventoryID string) (*mldomain.FulfillmentStock, error) {
	var stock mldomain.FulfillmentStock
	if err := c.get(ctx, token, "/inventories/"+inventoryID+"/stock/fulfillment", nil, &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}
