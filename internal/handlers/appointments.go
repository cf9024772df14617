package handlers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Vancheszz/Registry/internal/models"
	"github.com/Vancheszz/Registry/internal/schedule"
)

// shiftView — приём с вычисленным статусом и русскими подписями.
type shiftView struct {
	models.Shift
	StatusLabel string
	TypeLabel   string
}

func newShiftView(s models.Shift) shiftView {
	return shiftView{
		Shift:       s,
		StatusLabel: schedule.Status(s, time.Now()),
		TypeLabel:   shiftTypeLabel(s.ShiftType),
	}
}

// calendarDay — ячейка сетки для шаблона.
type calendarDay struct {
	Number int
	Date   string
	Today  bool
	Shifts []shiftView
}

// GetAppointmentsPage — календарь приёмов на месяц. Сетка всегда
// 6×7, неделя с понедельника.
func GetAppointmentsPage(c *fiber.Ctx) error {
	now := time.Now()
	year, _ := strconv.Atoi(c.Query("year"))
	monthNum, _ := strconv.Atoi(c.Query("month"))
	if year < 1 {
		year = now.Year()
	}
	if monthNum < 1 || monthNum > 12 {
		monthNum = int(now.Month())
	}
	month := time.Month(monthNum)

	ctx, cancel := withAPITimeout()
	defer cancel()
	t := token(c)

	shifts, err := registry.Shifts(ctx, t, "")
	if err != nil {
		log.Printf("❌ shifts list: %v", err)
		return apiError(c, "Не удалось загрузить расписание", err)
	}
	// справочники для формы создания
	staff, err := registry.PublicUsers(ctx, t)
	if err != nil {
		log.Printf("❌ staff for select: %v", err)
	}
	patients, err := registry.Patients(ctx, t, "")
	if err != nil {
		log.Printf("❌ patients for select: %v", err)
	}

	grid := schedule.MonthGrid(year, month, shifts)
	todayStr := now.Format("2006-01-02")
	days := make([]calendarDay, 0, len(grid))
	for _, d := range grid {
		views := make([]shiftView, 0, len(d.Shifts))
		for _, s := range d.Shifts {
			views = append(views, newShiftView(s))
		}
		days = append(days, calendarDay{
			Number: d.Number,
			Date:   d.Date,
			Today:  d.Date == todayStr,
			Shifts: views,
		})
	}

	prevYear, prevMonth := year, monthNum-1
	if prevMonth < 1 {
		prevYear, prevMonth = year-1, 12
	}
	nextYear, nextMonth := year, monthNum+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}

	return c.Render("appointments", fiber.Map{
		"Title":        "Расписание",
		"User":         currentUser(c),
		"Days":         days,
		"Year":         year,
		"Month":        monthNum,
		"MonthTitle":   monthTitles[monthNum-1],
		"PrevYear":     prevYear,
		"PrevMonth":    prevMonth,
		"NextYear":     nextYear,
		"NextMonth":    nextMonth,
		"Staff":        staff,
		"Patients":     patients,
		"Types":        appointmentTypes,
		"ExtraScripts": tplScript(`/static/js/appointments.js`),
	})
}

type appointmentForm struct {
	Date      string `form:"date" json:"date"`
	StartTime string `form:"start_time" json:"start_time"`
	EndTime   string `form:"end_time" json:"end_time"`
	ShiftType string `form:"shift_type" json:"shift_type"`
	UserID    int    `form:"user_id" json:"user_id"`
	PatientID int    `form:"patient_id" json:"patient_id"`
	Notes     string `form:"notes" json:"notes"`
}

func (f *appointmentForm) validate() string {
	if f.Date == "" || f.StartTime == "" || f.EndTime == "" || f.ShiftType == "" {
		return "Заполните обязательные поля: дата, время и тип приёма"
	}
	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		return "Неверный формат даты"
	}
	return ""
}

func (f *appointmentForm) payload(userID int) models.CreateShift {
	shift := models.CreateShift{
		Date:      f.Date,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
		ShiftType: f.ShiftType,
		UserID:    userID,
		Notes:     strings.TrimSpace(f.Notes),
	}
	if f.PatientID > 0 {
		pid := f.PatientID
		shift.PatientID = &pid
	}
	return shift
}

// CreateAppointment создаёт приём. Поле user_ids со списком id
// переключает на серийное создание: по приёму на каждого сотрудника
// одним запросом к API.
func CreateAppointment(c *fiber.Ctx) error {
	var f appointmentForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	if msg := f.validate(); msg != "" {
		return jsonError(c, 400, msg, nil)
	}

	userIDs := parseIDList(c.FormValue("user_ids"))
	if len(userIDs) == 0 && f.UserID > 0 {
		userIDs = []int{f.UserID}
	}
	if len(userIDs) == 0 {
		return jsonError(c, 400, "Выберите хотя бы одного сотрудника", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()
	t := token(c)

	if len(userIDs) == 1 {
		created, err := registry.CreateShift(ctx, t, f.payload(userIDs[0]))
		if err != nil {
			return apiError(c, "Не удалось создать приём", err)
		}
		return jsonOK(c, fiber.Map{"message": "Приём создан", "id": created.ID})
	}

	batch := make([]models.CreateShift, 0, len(userIDs))
	for _, uid := range userIDs {
		batch = append(batch, f.payload(uid))
	}
	created, err := registry.CreateShifts(ctx, t, batch)
	if err != nil {
		return apiError(c, "Не удалось создать серию приёмов", err)
	}
	zlog.Info("Создана серия приёмов", zap.Int("count", len(created)))
	return jsonOK(c, fiber.Map{"message": "Приёмы созданы", "count": len(created)})
}

// GetAppointmentByID — JSON для формы редактирования.
func GetAppointmentByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	ctx, cancel := withAPITimeout()
	defer cancel()

	shift, err := registry.Shift(ctx, token(c), id)
	if err != nil {
		return apiError(c, "Приём не найден", err)
	}
	return jsonOK(c, fiber.Map{"shift": shift})
}

func UpdateAppointment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	var f appointmentForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	if msg := f.validate(); msg != "" {
		return jsonError(c, 400, msg, nil)
	}
	if f.UserID <= 0 {
		return jsonError(c, 400, "Выберите сотрудника", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	updated, err := registry.UpdateShift(ctx, token(c), id, f.payload(f.UserID))
	if err != nil {
		return apiError(c, "Не удалось обновить приём", err)
	}
	return jsonOK(c, fiber.Map{"message": "Приём обновлён", "id": updated.ID})
}

// DeleteAppointment удаляет один приём. Подтверждение — на клиенте,
// серийного удаления нет намеренно.
func DeleteAppointment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	ctx, cancel := withAPITimeout()
	defer cancel()

	if err := registry.DeleteShift(ctx, token(c), id); err != nil {
		return apiError(c, "Не удалось удалить приём", err)
	}
	return jsonOK(c, fiber.Map{"message": "Приём удалён"})
}

// parseIDList разбирает "1,2,3" в список id, мусор пропускает.
func parseIDList(raw string) []int {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
