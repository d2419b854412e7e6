package mlclient

import (
	"context"
	"net/url"
	"strconv"

	mldomain "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/domain"
)

func (c *MLClient) SearchItems(ctx context.Context, token, userID string, offset, limit int) (*mldomain.ItemSearchResponse, error) {
	params := url.Values{}
	params.Add("status", "active")
	params.Add("offset", strconv.Itoa(offset))
	params.Add("limit", strconv.Itoa(limit))

	var response mldomain.ItemSearchResponse
	if err := c.get(ctx, token, "/users/"+userID+"/items/search", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MLClient) GetItem(ctx context.Context, token, itemID string) (*mldomain.Item, error) {
	params := url.Values{}
	params.Add("include_attributes", "all")

	var item mldomain.Item
	if err := c.get(ctx, token, "/items/"+itemID, params, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *MLClient) GetItemDescription(ctx context.Context, token, itemID string) (*mldomain.ItemDescription, error) {
	var description mldomain.ItemDescription
	if err := c.get(ctx, token, "/items/"+itemID+"/description", nil, &description); err != nil {
		return nil, err
	}
	return &description, nil
}
