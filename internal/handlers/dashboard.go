package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Vancheszz/Registry/internal/models"
)

// Dashboard — главная страница со сводкой. Все цифры считает API,
// фронтенд их только показывает.
func Dashboard(c *fiber.Ctx) error {
	ctx, cancel := withAPITimeout()
	defer cancel()

	summary, err := registry.DashboardSummary(ctx, token(c))
	if err != nil {
		log.Printf("❌ dashboard summary: %v", err)
		return c.Render("dashboard", fiber.Map{
			"Title":   "Главная",
			"User":    currentUser(c),
			"Summary": &models.DashboardSummary{},
			"Message": "Не удалось загрузить сводку",
		})
	}

	next := make([]shiftView, 0, len(summary.NextAppointments))
	for _, s := range summary.NextAppointments {
		next = append(next, newShiftView(s))
	}

	return c.Render("dashboard", fiber.Map{
		"Title":            "Главная",
		"User":             currentUser(c),
		"Summary":          summary,
		"NextAppointments": next,
	})
}
