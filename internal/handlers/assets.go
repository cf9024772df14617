package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Vancheszz/Registry/internal/api"
	"github.com/Vancheszz/Registry/internal/models"
)

// assetView — кейс с русскими подписями типа и статуса.
type assetView struct {
	models.Asset
	TypeLabel   string
	StatusLabel string
}

// GetAssetsPage — медицинские кейсы. Фильтры по типу, статусу и
// строке поиска пробрасываются в API как есть.
func GetAssetsPage(c *fiber.Ctx) error {
	filter := api.AssetFilter{
		AssetType: c.Query("asset_type"),
		Status:    c.Query("status"),
		Search:    strings.TrimSpace(c.Query("search")),
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	assets, err := registry.Assets(ctx, token(c), filter)
	if err != nil {
		log.Printf("❌ assets list: %v", err)
		return apiError(c, "Не удалось загрузить кейсы", err)
	}

	views := make([]assetView, 0, len(assets))
	for _, a := range assets {
		views = append(views, assetView{
			Asset:       a,
			TypeLabel:   assetTypeLabel(a.AssetType),
			StatusLabel: assetStatusLabel(a.Status),
		})
	}

	return c.Render("assets", fiber.Map{
		"Title":        "Кейсы",
		"User":         currentUser(c),
		"Assets":       views,
		"Filter":       filter,
		"TypeLabels":   assetTypeLabels,
		"StatusLabels": assetStatusLabels,
		"ExtraScripts": tplScript(`/static/js/assets.js`),
	})
}

type assetForm struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	AssetType   string `form:"asset_type" json:"asset_type"`
	Status      string `form:"status" json:"status"`
}

func CreateAssetRecord(c *fiber.Ctx) error {
	var f assetForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" || f.AssetType == "" {
		return jsonError(c, 400, "Название и тип кейса обязательны", nil)
	}
	if f.Status == "" {
		f.Status = models.AssetStatusActive
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	created, err := registry.CreateAsset(ctx, token(c), models.CreateAsset{
		Title:       f.Title,
		Description: strings.TrimSpace(f.Description),
		AssetType:   f.AssetType,
		Status:      f.Status,
	})
	if err != nil {
		return apiError(c, "Не удалось создать кейс", err)
	}
	return jsonOK(c, fiber.Map{"message": "Кейс создан", "id": created.ID})
}

// GetAssetByID — JSON для формы редактирования.
func GetAssetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	ctx, cancel := withAPITimeout()
	defer cancel()

	asset, err := registry.Asset(ctx, token(c), id)
	if err != nil {
		return apiError(c, "Кейс не найден", err)
	}
	return jsonOK(c, fiber.Map{"asset": asset})
}

func UpdateAssetRecord(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	var f assetForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	updated, err := registry.UpdateAsset(ctx, token(c), id, models.UpdateAsset{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		AssetType:   f.AssetType,
		Status:      f.Status,
	})
	if err != nil {
		return apiError(c, "Не удалось обновить кейс", err)
	}
	return jsonOK(c, fiber.Map{"message": "Кейс обновлён", "id": updated.ID})
}

func DeleteAssetRecord(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	ctx, cancel := withAPITimeout()
	defer cancel()

	if err := registry.DeleteAsset(ctx, token(c), id); err != nil {
		return apiError(c, "Не удалось удалить кейс", err)
	}
	return jsonOK(c, fiber.Map{"message": "Кейс удалён"})
}
