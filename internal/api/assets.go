package api

import (
	"context"
	"fmt"

	"github.com/Vancheszz/Registry/internal/models"
)

// AssetFilter — фильтры списка кейсов; пустые поля не отправляются.
type AssetFilter struct {
	AssetType string
	Status    string
	Search    string
}

func (c *Client) Assets(ctx context.Context, token string, filter AssetFilter) ([]models.Asset, error) {
	r := c.req(ctx, token)
	if filter.AssetType != "" {
		r.SetQueryParam("asset_type", filter.AssetType)
	}
	if filter.Status != "" {
		r.SetQueryParam("status", filter.Status)
	}
	if filter.Search != "" {
		r.SetQueryParam("search", filter.Search)
	}

	var assets []models.Asset
	resp, err := r.SetResult(&assets).Get("/api/assets/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return assets, nil
}

func (c *Client) Asset(ctx context.Context, token string, id int) (*models.Asset, error) {
	var asset models.Asset
	resp, err := c.req(ctx, token).
		SetResult(&asset).
		Get(fmt.Sprintf("/api/assets/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *Client) CreateAsset(ctx context.Context, token string, asset models.CreateAsset) (*models.Asset, error) {
	var created models.Asset
	resp, err := c.req(ctx, token).
		SetBody(asset).
		SetResult(&created).
		Post("/api/assets/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAsset(ctx context.Context, token string, id int, asset models.UpdateAsset) (*models.Asset, error) {
	var updated models.Asset
	resp, err := c.req(ctx, token).
		SetBody(asset).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/assets/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAsset(ctx context.Context, token string, id int) error {
	resp, err := c.req(ctx, token).
		Delete(fmt.Sprintf("/api/assets/%d", id))
	return check(resp, err)
}
