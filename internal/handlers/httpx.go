package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Vancheszz/Registry/internal/api"
)

// jsonError — единый ответ об ошибке в формате RFC 7807 (application/problem+json)
// Для обратной совместимости добавляет поля success=false и error.
func jsonError(c *fiber.Ctx, status int, publicMsg string, err error) error {
	if err != nil {
		log.Printf("handler error: %v", err)
	}
	if publicMsg == "" {
		publicMsg = fiber.ErrInternalServerError.Message
	}
	pType := problemType(publicMsg, status, c.OriginalURL())
	problem := fiber.Map{
		"type":     pType,
		"title":    publicMsg,
		"status":   status,
		"instance": c.OriginalURL(),
	}
	if err != nil {
		problem["detail"] = err.Error()
	}
	// backward-compat fields
	problem["success"] = false
	problem["error"] = publicMsg

	if err := c.Status(status).JSON(problem); err != nil {
		return err
	}
	// c.JSON ставит application/json, перебиваем на RFC 7807
	c.Set(fiber.HeaderContentType, "application/problem+json; charset=utf-8")
	return nil
}

func jsonOK(c *fiber.Ctx, payload fiber.Map) error {
	if payload == nil {
		payload = fiber.Map{}
	}
	payload["success"] = true
	return c.JSON(payload)
}

// apiError переводит ошибку клиента API в ответ фронтенда.
// 401 дополнительно сбрасывает cookie сессии: после перезагрузки
// страницы пользователь окажется на форме входа.
func apiError(c *fiber.Ctx, publicMsg string, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		clearSession(c)
		return jsonError(c, fiber.StatusUnauthorized, "Сессия истекла. Войдите заново.", err)
	}
	var se *api.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case fiber.StatusForbidden:
			return jsonError(c, fiber.StatusForbidden, "Недостаточно прав для этого действия", err)
		case fiber.StatusNotFound:
			return jsonError(c, fiber.StatusNotFound, publicMsg, err)
		case fiber.StatusUnprocessableEntity, fiber.StatusBadRequest:
			return jsonError(c, se.Code, publicMsg, err)
		}
		return jsonError(c, fiber.StatusBadGateway, publicMsg, err)
	}
	return jsonError(c, fiber.StatusBadGateway, publicMsg, err)
}

// problemType возвращает осмысленный URI для поля "type" Problem Details.
// Базовая схема использует URN, чтобы не зависеть от внешнего домена.
func problemType(title string, status int, _path string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	code := ""
	// Частные случаи по тексту сообщения → код
	switch {
	case strings.Contains(t, "некорректный id"):
		code = "invalid-id"
	case strings.Contains(t, "неверные данные формы"):
		code = "invalid-form"
	case strings.Contains(t, "заполните обязательные поля") || strings.Contains(t, "обязательн"):
		code = "missing-required-fields"
	case strings.Contains(t, "неверный формат даты") || strings.Contains(t, "неверная дата"):
		code = "invalid-date"
	case strings.Contains(t, "сессия истекла"):
		code = "session-expired"
	case strings.Contains(t, "недостаточно прав"):
		code = "forbidden"
	case strings.Contains(t, "не найден") || strings.Contains(t, "не найдена"):
		code = "not-found"
	case strings.Contains(t, "ошибка обработки данных"):
		code = "unprocessable"
	}
	if code == "" {
		// Общее соответствие по HTTP-статусу
		switch status {
		case fiber.StatusBadRequest:
			code = "validation-error"
		case fiber.StatusUnauthorized:
			code = "unauthorized"
		case fiber.StatusForbidden:
			code = "forbidden"
		case fiber.StatusNotFound:
			code = "not-found"
		case fiber.StatusUnprocessableEntity:
			code = "unprocessable"
		case fiber.StatusBadGateway:
			code = "upstream-error"
		default:
			code = "internal-error"
		}
	}
	return "urn:clinic-registry:problem:" + code
}
