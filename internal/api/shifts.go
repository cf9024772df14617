package api

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Vancheszz/Registry/internal/models"
)

// Shifts — все приёмы; date (YYYY-MM-DD) опционально сужает выборку.
func (c *Client) Shifts(ctx context.Context, token, date string) ([]models.Shift, error) {
	r := c.req(ctx, token)
	if date != "" {
		r.SetQueryParam("date", date)
	}
	var shifts []models.Shift
	resp, err := r.SetResult(&shifts).Get("/api/shifts/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (c *Client) Shift(ctx context.Context, token string, id int) (*models.Shift, error) {
	var shift models.Shift
	resp, err := c.req(ctx, token).
		SetResult(&shift).
		Get(fmt.Sprintf("/api/shifts/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) CreateShift(ctx context.Context, token string, shift models.CreateShift) (*models.Shift, error) {
	var created models.Shift
	resp, err := c.req(ctx, token).
		SetBody(shift).
		SetResult(&created).
		Post("/api/shifts/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateShifts — серия приёмов одним запросом (по приёму на каждого
// выбранного сотрудника). Частичный сбой API не детализирует: либо
// создаётся вся серия, либо возвращается одна общая ошибка.
func (c *Client) CreateShifts(ctx context.Context, token string, shifts []models.CreateShift) ([]models.Shift, error) {
	body := struct {
		Shifts []models.CreateShift `json:"shifts"`
	}{Shifts: shifts}

	var created []models.Shift
	resp, err := c.req(ctx, token).
		SetBody(body).
		SetResult(&created).
		Post("/api/shifts/bulk")
	if err := check(resp, err); err != nil {
		c.logger.Error("Серия приёмов не создана", zap.Int("count", len(shifts)), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateShift(ctx context.Context, token string, id int, shift models.CreateShift) (*models.Shift, error) {
	var updated models.Shift
	resp, err := c.req(ctx, token).
		SetBody(shift).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/shifts/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteShift(ctx context.Context, token string, id int) error {
	resp, err := c.req(ctx, token).
		Delete(fmt.Sprintf("/api/shifts/%d", id))
	return check(resp, err)
}
