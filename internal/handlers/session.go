package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Vancheszz/Registry/internal/api"
	"github.com/Vancheszz/Registry/internal/models"
)

// Должность по умолчанию для самостоятельной регистрации.
const defaultPosition = "Регистратор"

// RequireAuth пускает на страницы только залогиненных сотрудников.
// Токен проверяется походом в /api/me на каждый запрос: фронтенд не
// разбирает и не валидирует JWT сам. Истёкшая сессия сбрасывается,
// пользователь уводится на форму входа.
func RequireAuth(c *fiber.Ctx) error {
	t := token(c)
	if t == "" {
		return redirectToLogin(c)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	user, err := registry.Me(ctx, t)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			clearSession(c)
			return redirectToLogin(c)
		}
		// API недоступен — не выкидываем из сессии, отдаём 502
		zlog.Error("Проверка сессии не удалась", zap.Error(err))
		return apiError(c, "API регистратуры недоступно", err)
	}

	c.Locals("currentUser", user)
	return c.Next()
}

// redirectToLogin: страницы — редирект, fetch-запросы — 401 JSON.
func redirectToLogin(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodGet || wantsJSON(c) {
		return jsonError(c, fiber.StatusUnauthorized, "Сессия истекла. Войдите заново.", nil)
	}
	return c.Redirect("/login", fiber.StatusFound)
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), "application/json") ||
		c.XHR()
}

// GetLoginPage — форма входа. Залогиненного уводим на дашборд.
func GetLoginPage(c *fiber.Ctx) error {
	if token(c) != "" {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Render("login", fiber.Map{
		"Title":        "Вход",
		"ExtraScripts": tplScript(`/static/js/login.js`),
	}, "layouts/auth")
}

// Login обменивает логин/пароль на токен и ставит cookie сессии.
func Login(c *fiber.Ctx) error {
	type formT struct {
		Username string `form:"username" json:"username"`
		Password string `form:"password" json:"password"`
	}
	var f formT
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	f.Username = strings.TrimSpace(f.Username)
	if f.Username == "" || f.Password == "" {
		return jsonError(c, 400, "Введите логин и пароль", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	tok, err := registry.Login(ctx, models.Credentials{Username: f.Username, Password: f.Password})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return jsonError(c, fiber.StatusUnauthorized, "Неверный логин или пароль", err)
		}
		return apiError(c, "Не удалось выполнить вход", err)
	}

	setSession(c, tok.AccessToken)
	zlog.Info("Сотрудник вошёл в систему", zap.String("username", f.Username))
	return jsonOK(c, fiber.Map{"message": "Вход выполнен", "redirect": "/"})
}

// Register создаёт учётную запись и сразу логинит её: отдельного шага
// «подтвердите почту» у регистратуры нет.
func Register(c *fiber.Ctx) error {
	type formT struct {
		Username string `form:"username" json:"username"`
		Password string `form:"password" json:"password"`
		Name     string `form:"name" json:"name"`
		Position string `form:"position" json:"position"`
	}
	var f formT
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	f.Username = strings.TrimSpace(f.Username)
	f.Name = strings.TrimSpace(f.Name)
	if f.Username == "" || f.Password == "" || f.Name == "" {
		return jsonError(c, 400, "Логин, пароль и имя обязательны", nil)
	}
	if f.Position == "" {
		f.Position = defaultPosition
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	_, err := registry.Register(ctx, models.CreateUser{
		Username: f.Username,
		Password: f.Password,
		Name:     f.Name,
		Position: f.Position,
	})
	if err != nil {
		if api.IsStatus(err, fiber.StatusBadRequest) {
			return jsonError(c, 400, "Такой логин уже занят", err)
		}
		return apiError(c, "Не удалось зарегистрироваться", err)
	}

	tok, err := registry.Login(ctx, models.Credentials{Username: f.Username, Password: f.Password})
	if err != nil {
		// Аккаунт создан, но автологин не прошёл — пусть войдёт вручную
		zlog.Warn("Автовход после регистрации не удался", zap.String("username", f.Username), zap.Error(err))
		return jsonOK(c, fiber.Map{"message": "Аккаунт создан, войдите со своими данными", "redirect": "/login"})
	}

	setSession(c, tok.AccessToken)
	zlog.Info("Зарегистрирован новый сотрудник", zap.String("username", f.Username))
	return jsonOK(c, fiber.Map{"message": "Регистрация выполнена", "redirect": "/"})
}

// Logout сбрасывает cookie. Токен на стороне API не отзывается —
// такого эндпоинта у регистратуры нет.
func Logout(c *fiber.Ctx) error {
	clearSession(c)
	return c.Redirect("/login", fiber.StatusFound)
}
