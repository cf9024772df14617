package api

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Vancheszz/Registry/internal/models"
)

func (c *Client) Handovers(ctx context.Context, token string) ([]models.Handover, error) {
	var handovers []models.Handover
	resp, err := c.req(ctx, token).
		SetResult(&handovers).
		Get("/api/handovers/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return handovers, nil
}

func (c *Client) Handover(ctx context.Context, token string, id int) (*models.Handover, error) {
	var handover models.Handover
	resp, err := c.req(ctx, token).
		SetResult(&handover).
		Get(fmt.Sprintf("/api/handovers/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &handover, nil
}

func (c *Client) CreateHandover(ctx context.Context, token string, handover models.CreateHandover) (*models.Handover, error) {
	var created models.Handover
	resp, err := c.req(ctx, token).
		SetBody(handover).
		SetResult(&created).
		Post("/api/handovers/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateHandover(ctx context.Context, token string, id int, handover models.CreateHandover) (*models.Handover, error) {
	var updated models.Handover
	resp, err := c.req(ctx, token).
		SetBody(handover).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/handovers/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteHandover(ctx context.Context, token string, id int) error {
	resp, err := c.req(ctx, token).
		Delete(fmt.Sprintf("/api/handovers/%d", id))
	return check(resp, err)
}

// ExportHandovers — упрощённые логи передач для выгрузки в CSV.
// 403 и 422 различаются на уровне сообщений пользователю, поэтому
// статус сохраняется в StatusError.
func (c *Client) ExportHandovers(ctx context.Context, token string) (*models.ExportResponse, error) {
	var export models.ExportResponse
	resp, err := c.req(ctx, token).
		SetResult(&export).
		Get("/api/handovers/export")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	c.logger.Info("Журнал передач выгружен", zap.Int("total", export.Total))
	return &export, nil
}

// ClearHandovers — полная очистка журнала (только для администраторов).
func (c *Client) ClearHandovers(ctx context.Context, token string) (*models.ClearResponse, error) {
	var cleared models.ClearResponse
	resp, err := c.req(ctx, token).
		SetResult(&cleared).
		Delete("/api/handovers/clear")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	c.logger.Info("Журнал передач очищен",
		zap.Int("handovers", cleared.DeletedHandovers),
		zap.Int("logs", cleared.DeletedLogs),
	)
	return &cleared, nil
}
