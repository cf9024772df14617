package api

import (
	"context"
	"fmt"

	"github.com/Vancheszz/Registry/internal/models"
)

// Users — полный список сотрудников (требует прав администратора на API).
func (c *Client) Users(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	resp, err := c.req(ctx, token).
		SetResult(&users).
		Get("/api/users/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return users, nil
}

// PublicUsers — справочник сотрудников для селектов (доступен всем).
func (c *Client) PublicUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	resp, err := c.req(ctx, token).
		SetResult(&users).
		Get("/api/users/public")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) User(ctx context.Context, token string, id int) (*models.User, error) {
	var user models.User
	resp, err := c.req(ctx, token).
		SetResult(&user).
		Get(fmt.Sprintf("/api/users/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, user models.CreateUser) (*models.User, error) {
	var created models.User
	resp, err := c.req(ctx, token).
		SetBody(user).
		SetResult(&created).
		Post("/api/users/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int, user models.CreateUser) (*models.User, error) {
	var updated models.User
	resp, err := c.req(ctx, token).
		SetBody(user).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/users/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	resp, err := c.req(ctx, token).
		Delete(fmt.Sprintf("/api/users/%d", id))
	return check(resp, err)
}
