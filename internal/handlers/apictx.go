package handlers

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Vancheszz/Registry/internal/api"
	"github.com/Vancheszz/Registry/internal/models"
)

// Обработчики держат зависимости в пакетных переменных: один клиент
// API на процесс, как и соединение с БД в классическом варианте.
var (
	registry    *api.Client
	tokenCookie = "access_token"
	apiTimeout  = 15 * time.Second
	zlog        = zap.NewNop()
)

// Init связывает обработчики с клиентом API. Вызывается один раз при старте.
func Init(client *api.Client, cookieName string, timeout time.Duration, logger *zap.Logger) {
	registry = client
	if cookieName != "" {
		tokenCookie = cookieName
	}
	if timeout > 0 {
		apiTimeout = timeout
	}
	if logger != nil {
		zlog = logger
	}
}

// withAPITimeout — контекст на один поход к API регистратуры.
func withAPITimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), apiTimeout)
}

// token — bearer-токен сотрудника из cookie. Пустая строка = не залогинен.
func token(c *fiber.Ctx) string {
	return c.Cookies(tokenCookie)
}

// setSession кладёт токен в cookie. HttpOnly: скриптам страницы токен
// не нужен, все запросы к API идут через этот сервер.
func setSession(c *fiber.Ctx, accessToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    accessToken,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearSession сбрасывает cookie сессии.
func clearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// currentUser — сотрудник, загруженный middleware RequireAuth.
func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}

func tplScript(src string) template.HTML { // маленький помощник для layout'а
	return template.HTML(fmt.Sprintf(`<script src="%s"></script>`, src))
}
