package mlclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	mldomain "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/domain"
)

const (
	adsAPIVersion  = "2"
	adsDateLayout  = "2006-01-02"
	adsMetricsList = "clicks,prints,cost,direct_amount,indirect_amount,total_amount,units_quantity"
)

func (c *MLClient) GetAdvertisers(ctx context.Context, token string) (*mldomain.AdvertiserResponse, error) {
	params := url.Values{}
	params.Add("product_id", "PADS")

	var response mldomain.AdvertiserResponse
	if err := c.get(ctx, token, "/advertising/advertisers", params, &response, withHeader("Api-Version", "1")); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MLClient) GetCampaigns(ctx context.Context, token, advertiserID string, from, to time.Time, offset, limit int) (*mldomain.CampaignsResponse, error) {
	params := url.Values{}
	params.Add("date_from", from.Format(adsDateLayout))
	params.Add("date_to", to.Format(adsDateLayout))
	params.Add("metrics", adsMetricsList)
	params.Add("offset", strconv.Itoa(offset))
	params.Add("limit", strconv.Itoa(limit))

	path := "/advertising/advertisers/" + advertiserID + "/product_ads/campaigns"

	var response mldomain.CampaignsResponse
	if err := c.get(ctx, token, path, params, &response, withHeader("Api-Version", adsAPIVersion)); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MLClient) GetItemAd(ctx context.Context, token, itemID string) (*mldomain.ItemAd, error) {
	var ad mldomain.ItemAd
	if err := c.get(ctx, token, "/advertising/product_ads/items/"+itemID, nil, &ad, withHeader("Api-Version", adsAPIVersion)); err != nil {
		return nil, err
	}
	return &ad, nil
}
