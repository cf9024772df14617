package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Vancheszz/Registry/internal/models"
)

// GetUsersPage — сотрудники регистратуры. Полный список отдаёт
// только админский токен; обычному сотруднику показываем публичный
// справочник без контактов.
func GetUsersPage(c *fiber.Ctx) error {
	ctx, cancel := withAPITimeout()
	defer cancel()
	t := token(c)
	me := currentUser(c)

	var (
		staff []models.User
		err   error
	)
	if me != nil && me.IsAdmin {
		staff, err = registry.Users(ctx, t)
	} else {
		staff, err = registry.PublicUsers(ctx, t)
	}
	if err != nil {
		log.Printf("❌ users list: %v", err)
		return apiError(c, "Не удалось загрузить список сотрудников", err)
	}

	return c.Render("users", fiber.Map{
		"Title":        "Сотрудники",
		"User":         me,
		"Staff":        staff,
		"ExtraScripts": tplScript(`/static/js/users.js`),
	})
}

type userForm struct {
	Username   string `form:"username" json:"username"`
	Password   string `form:"password" json:"password"`
	Name       string `form:"name" json:"name"`
	Position   string `form:"position" json:"position"`
	Phone      string `form:"phone" json:"phone"`
	TelegramID string `form:"telegram_id" json:"telegram_id"`
	Email      string `form:"email" json:"email"`
	IsAdmin    bool   `form:"is_admin" json:"is_admin"`
}

func CreateStaffUser(c *fiber.Ctx) error {
	var f userForm
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

	created, err := registry.CreateUser(ctx, token(c), models.CreateUser{
		Username:   f.Username,
		Password:   f.Password,
		Name:       f.Name,
		Position:   f.Position,
		Phone:      strings.TrimSpace(f.Phone),
		TelegramID: strings.TrimSpace(f.TelegramID),
		Email:      strings.TrimSpace(f.Email),
		IsAdmin:    f.IsAdmin,
	})
	if err != nil {
		return apiError(c, "Не удалось создать сотрудника", err)
	}
	return jsonOK(c, fiber.Map{"message": "Сотрудник добавлен", "id": created.ID})
}

// GetStaffUserByID — JSON для формы редактирования.
func GetStaffUserByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	ctx, cancel := withAPITimeout()
	defer cancel()

	user, err := registry.User(ctx, token(c), id)
	if err != nil {
		return apiError(c, "Сотрудник не найден", err)
	}
	return jsonOK(c, fiber.Map{"user": user})
}

func UpdateStaffUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	var f userForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	f.Username = strings.TrimSpace(f.Username)
	f.Name = strings.TrimSpace(f.Name)
	if f.Username == "" || f.Name == "" {
		return jsonError(c, 400, "Логин и имя обязательны", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	updated, err := registry.UpdateUser(ctx, token(c), id, models.CreateUser{
		Username:   f.Username,
		Password:   f.Password, // пустой пароль API трактует как «не менять»
		Name:       f.Name,
		Position:   f.Position,
		Phone:      strings.TrimSpace(f.Phone),
		TelegramID: strings.TrimSpace(f.TelegramID),
		Email:      strings.TrimSpace(f.Email),
		IsAdmin:    f.IsAdmin,
	})
	if err != nil {
		return apiError(c, "Не удалось обновить сотрудника", err)
	}
	return jsonOK(c, fiber.Map{"message": "Сотрудник обновлён", "id": updated.ID})
}

func DeleteStaffUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	me := currentUser(c)
	if me != nil && me.ID == id {
		return jsonError(c, 400, "Нельзя удалить собственную учётную запись", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	if err := registry.DeleteUser(ctx, token(c), id); err != nil {
		return apiError(c, "Не удалось удалить сотрудника", err)
	}
	return jsonOK(c, fiber.Map{"message": "Сотрудник удалён"})
}

// GetProfilePage — собственная карточка сотрудника.
func GetProfilePage(c *fiber.Ctx) error {
	return c.Render("profile", fiber.Map{
		"Title":        "Профиль",
		"User":         currentUser(c),
		"ExtraScripts": tplScript(`/static/js/profile.js`),
	})
}

// UpdateProfile — сотрудник правит собственные данные (без логина и прав).
func UpdateProfile(c *fiber.Ctx) error {
	type formT struct {
		Name       string `form:"name" json:"name"`
		Position   string `form:"position" json:"position"`
		Phone      string `form:"phone" json:"phone"`
		TelegramID string `form:"telegram_id" json:"telegram_id"`
		Email      string `form:"email" json:"email"`
	}
	var f formT
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return jsonError(c, 400, "Имя обязательно", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	updated, err := registry.UpdateProfile(ctx, token(c), models.UpdateProfile{
		Name:       f.Name,
		Position:   f.Position,
		Phone:      strings.TrimSpace(f.Phone),
		TelegramID: strings.TrimSpace(f.TelegramID),
		Email:      strings.TrimSpace(f.Email),
	})
	if err != nil {
		return apiError(c, "Не удалось обновить профиль", err)
	}
	return jsonOK(c, fiber.Map{"message": "Профиль обновлён", "user": updated})
}
