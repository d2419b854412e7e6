package mlclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	mldomain "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/domain"
)

const orderDateLayout = "2006-01-02T15:04:05.000-07:00"

func (c *MLClient) SearchOrders(ctx context.Context, token, sellerID string, from, to time.Time, offset, limit int) (*mldomain.OrderSearchResponse, error) {
	params := url.Values{}
	params.Add("seller", sellerID)
	params.Add("order.date_created.from", from.Format(orderDateLayout))
	params.Add("order.date_created.to", to.Format(orderDateLayout))
	params.Add("sort", "date_desc")
	params.Add("offset", strconv.Itoa(offset))
	params.Add("limit", strconv.Itoa(limit))

	var response mldomain.OrderSearchResponse
	if err := c.get(ctx, token, "/orders/search", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MLClient) GetOrder(ctx context.Context, token, orderID string) (*mldomain.Order, error) {
	var order mldomain.Order
	if err := c.get(ctx, token, "/orders/"+orderID, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
