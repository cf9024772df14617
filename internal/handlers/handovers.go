package handlers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Vancheszz/Registry/internal/api"
	"github.com/Vancheszz/Registry/internal/export"
	"github.com/Vancheszz/Registry/internal/models"
	"github.com/Vancheszz/Registry/internal/schedule"
)

// handoverView — запись журнала с подписями смен вместо голых id.
type handoverView struct {
	models.Handover
	FromLabel string
	ToLabel   string
}

// shiftLabel: «Иванов И.И. — 2024-03-05 08:00–20:00».
func shiftLabel(s *models.Shift) string {
	if s == nil {
		return "—"
	}
	return fmt.Sprintf("%s — %s %s–%s", s.UserName, s.Date, s.StartTime, s.EndTime)
}

func findShift(shifts []models.Shift, id *int) *models.Shift {
	if id == nil {
		return nil
	}
	for i := range shifts {
		if shifts[i].ID == *id {
			return &shifts[i]
		}
	}
	return nil
}

// GetHandoversPage — журнал передач смен. В форму создания
// подставляются активная смена и подсказанная следующая.
func GetHandoversPage(c *fiber.Ctx) error {
	ctx, cancel := withAPITimeout()
	defer cancel()
	t := token(c)

	handovers, err := registry.Handovers(ctx, t)
	if err != nil {
		log.Printf("❌ handovers list: %v", err)
		return apiError(c, "Не удалось загрузить журнал передач", err)
	}
	shifts, err := registry.Shifts(ctx, t, "")
	if err != nil {
		log.Printf("❌ shifts for handovers: %v", err)
	}
	assets, err := registry.Assets(ctx, t, api.AssetFilter{})
	if err != nil {
		log.Printf("❌ assets for handover: %v", err)
	}

	views := make([]handoverView, 0, len(handovers))
	for _, h := range handovers {
		views = append(views, handoverView{
			Handover:  h,
			FromLabel: shiftLabel(findShift(shifts, h.FromShiftID)),
			ToLabel:   shiftLabel(findShift(shifts, h.ToShiftID)),
		})
	}

	// в форму попадают только незавершённые кейсы, сгруппированные по типу
	groups := groupOpenAssets(assets)

	// предзаполнение формы: кто передаёт и кому
	now := time.Now()
	active := schedule.FindActive(shifts, now)
	var suggested *models.Shift
	if active != nil {
		suggested = schedule.SuggestNext(shifts, *active)
	}

	me := currentUser(c)
	return c.Render("handovers", fiber.Map{
		"Title":        "Передача смен",
		"User":         me,
		"IsAdmin":      me != nil && me.IsAdmin,
		"Handovers":    views,
		"Shifts":       shifts,
		"AssetGroups":  groups,
		"ActiveShift":  active,
		"Suggested":    suggested,
		"ExtraScripts": tplScript(`/static/js/handovers.js`),
	})
}

// SuggestHandoverTarget — JSON-подсказка принимающей смены для формы:
// после дневной — ночная того же дня, иначе дневная следующего дня.
func SuggestHandoverTarget(c *fiber.Ctx) error {
	fromID, err := strconv.Atoi(c.Query("from_shift_id"))
	if err != nil || fromID <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	ctx, cancel := withAPITimeout()
	defer cancel()

	shifts, err := registry.Shifts(ctx, token(c), "")
	if err != nil {
		return apiError(c, "Не удалось загрузить расписание", err)
	}
	var from *models.Shift
	for i := range shifts {
		if shifts[i].ID == fromID {
			from = &shifts[i]
			break
		}
	}
	if from == nil {
		return jsonError(c, 404, "Смена не найдена", nil)
	}

	suggested := schedule.SuggestNext(shifts, *from)
	if suggested == nil {
		return jsonOK(c, fiber.Map{"suggested": nil})
	}
	return jsonOK(c, fiber.Map{
		"suggested": fiber.Map{
			"id":    suggested.ID,
			"label": shiftLabel(suggested),
		},
	})
}

// assetGroup — кейсы одного типа для optgroup в селекте.
type assetGroup struct {
	Label  string
	Assets []models.Asset
}

// groupOpenAssets отбрасывает завершённые кейсы и группирует
// остальные по типу в фиксированном порядке типов.
func groupOpenAssets(assets []models.Asset) []assetGroup {
	order := []string{
		models.AssetTypeCase,
		models.AssetTypeChangeManagement,
		models.AssetTypeOrangeCase,
		models.AssetTypeClientRequests,
	}
	byType := make(map[string][]models.Asset)
	for _, a := range assets {
		if a.Status == models.AssetStatusCompleted {
			continue
		}
		byType[a.AssetType] = append(byType[a.AssetType], a)
	}

	var groups []assetGroup
	for _, code := range order {
		if len(byType[code]) > 0 {
			groups = append(groups, assetGroup{Label: assetTypeLabel(code), Assets: byType[code]})
			delete(byType, code)
		}
	}
	// неизвестные типы — в конец, как есть
	for code, list := range byType {
		groups = append(groups, assetGroup{Label: assetTypeLabel(code), Assets: list})
	}
	return groups
}

type handoverForm struct {
	FromShiftID   int    `form:"from_shift_id" json:"from_shift_id"`
	ToShiftID     int    `form:"to_shift_id" json:"to_shift_id"`
	HandoverNotes string `form:"handover_notes" json:"handover_notes"`
	AssetIDs      string `form:"asset_ids" json:"asset_ids"` // "1,2,3"
}

func (f *handoverForm) payload() models.CreateHandover {
	h := models.CreateHandover{
		HandoverNotes: f.HandoverNotes,
		AssetIDs:      parseIDList(f.AssetIDs),
	}
	if f.FromShiftID > 0 {
		id := f.FromShiftID
		h.FromShiftID = &id
	}
	if f.ToShiftID > 0 {
		id := f.ToShiftID
		h.ToShiftID = &id
	}
	return h
}

func CreateHandoverRecord(c *fiber.Ctx) error {
	var f handoverForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	if f.HandoverNotes == "" {
		return jsonError(c, 400, "Опишите, что передаётся смене", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	created, err := registry.CreateHandover(ctx, token(c), f.payload())
	if err != nil {
		return apiError(c, "Не удалось записать передачу", err)
	}
	return jsonOK(c, fiber.Map{"message": "Передача записана", "id": created.ID})
}

func UpdateHandoverRecord(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	var f handoverForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	if f.HandoverNotes == "" {
		return jsonError(c, 400, "Опишите, что передаётся смене", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	updated, err := registry.UpdateHandover(ctx, token(c), id, f.payload())
	if err != nil {
		return apiError(c, "Не удалось обновить запись", err)
	}
	return jsonOK(c, fiber.Map{"message": "Запись обновлена", "id": updated.ID})
}

func DeleteHandoverRecord(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	ctx, cancel := withAPITimeout()
	defer cancel()

	if err := registry.DeleteHandover(ctx, token(c), id); err != nil {
		return apiError(c, "Не удалось удалить запись", err)
	}
	return jsonOK(c, fiber.Map{"message": "Запись удалена"})
}

// ExportHandovers отдаёт журнал CSV-файлом: UTF-8 с BOM, чтобы Excel
// открывал кириллицу без танцев с кодировками.
func ExportHandovers(c *fiber.Ctx) error {
	ctx, cancel := withAPITimeout()
	defer cancel()

	resp, err := registry.ExportHandovers(ctx, token(c))
	if err != nil {
		if api.IsStatus(err, fiber.StatusForbidden) {
			return jsonError(c, fiber.StatusForbidden, "Выгрузка доступна только администраторам", err)
		}
		if api.IsStatus(err, fiber.StatusUnprocessableEntity) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "Ошибка обработки данных журнала", err)
		}
		return apiError(c, "Не удалось выгрузить журнал", err)
	}

	name := export.FileName(time.Now())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.SendString(export.HandoversCSV(resp.Data))
}

// ClearHandovers — полная очистка журнала, только для администраторов.
// Клиент запрашивает подтверждение дважды.
func ClearHandovers(c *fiber.Ctx) error {
	ctx, cancel := withAPITimeout()
	defer cancel()

	cleared, err := registry.ClearHandovers(ctx, token(c))
	if err != nil {
		if api.IsStatus(err, fiber.StatusForbidden) {
			return jsonError(c, fiber.StatusForbidden, "Очистка журнала доступна только администраторам", err)
		}
		return apiError(c, "Не удалось очистить журнал", err)
	}

	zlog.Info("Журнал передач очищен через интерфейс",
		zap.Int("handovers", cleared.DeletedHandovers),
		zap.Int("logs", cleared.DeletedLogs),
	)
	return jsonOK(c, fiber.Map{
		"message":           cleared.Message,
		"deleted_handovers": cleared.DeletedHandovers,
		"deleted_logs":      cleared.DeletedLogs,
	})
}
