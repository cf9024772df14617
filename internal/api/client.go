// Package api — типизированный клиент удалённого API регистратуры.
// Вся работа с данными идёт только через него: локальной базы у
// фронтенда нет, bearer-токен сотрудника подставляется в каждый запрос.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Vancheszz/Registry/internal/models"
)

// ErrUnauthorized возвращается на любой 401 от API. Сессия при этом
// считается истёкшей: обработчики сбрасывают cookie и уводят на логин.
var ErrUnauthorized = errors.New("api: сессия истекла или токен недействителен")

// StatusError — любой другой неуспешный HTTP-статус API.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: статус %d", e.Code)
	}
	return fmt.Sprintf("api: статус %d: %s", e.Code, e.Detail)
}

// IsStatus сообщает, является ли ошибка ответом API с данным статусом.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient создаёт клиента API регистратуры.
// Ретраев нет намеренно: неудавшийся запрос пользователь повторяет сам.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// req — заготовка запроса с контекстом и токеном сотрудника.
// Пустой токен допустим только для логина и регистрации.
func (c *Client) req(ctx context.Context, token string) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// check превращает транспортные ошибки и неуспешные статусы в error.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("запрос к API регистратуры: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.IsError() {
		return &StatusError{
			Code:   resp.StatusCode(),
			Detail: strings.TrimSpace(string(resp.Body())),
		}
	}
	return nil
}

// ----- Сессия -----

// Login обменивает логин/пароль на bearer-токен.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	var token models.Token
	resp, err := c.req(ctx, "").
		SetBody(creds).
		SetResult(&token).
		Post("/api/login")
	if err := check(resp, err); err != nil {
		c.logger.Warn("Вход не выполнен", zap.String("username", creds.Username), zap.Error(err))
		return nil, err
	}
	return &token, nil
}

// Register создаёт учётную запись сотрудника. Токен не требуется:
// после регистрации фронтенд сразу логинится теми же данными.
func (c *Client) Register(ctx context.Context, user models.CreateUser) (*models.User, error) {
	var created models.User
	resp, err := c.req(ctx, "").
		SetBody(user).
		SetResult(&created).
		Post("/api/register")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

// Me возвращает текущего сотрудника по токену.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	resp, err := c.req(ctx, token).
		SetResult(&user).
		Get("/api/me")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile обновляет профиль текущего сотрудника.
func (c *Client) UpdateProfile(ctx context.Context, token string, profile models.UpdateProfile) (*models.User, error) {
	var user models.User
	resp, err := c.req(ctx, token).
		SetBody(profile).
		SetResult(&user).
		Put("/api/profile")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

// ----- Дашборд -----

func (c *Client) DashboardSummary(ctx context.Context, token string) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	resp, err := c.req(ctx, token).
		SetResult(&summary).
		Get("/api/dashboard/summary")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &summary, nil
}
