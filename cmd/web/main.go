package main

import (
	"log"
	"time"

	"github.com/Vancheszz/Registry/internal/api"
	"github.com/Vancheszz/Registry/internal/config"
	"github.com/Vancheszz/Registry/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	// Загрузка конфигурации
	cfg := config.LoadConfig()

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer zlog.Sync()

	// Клиент API регистратуры — единственный источник данных,
	// своей базы у фронтенда нет
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, zlog)
	handlers.Init(client, cfg.Auth.TokenCookie, cfg.API.Timeout, zlog)

	// Инициализация шаблонов
	engine := html.New(cfg.Server.TemplatePath, ".html")

	// Создание приложения Fiber
	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "ClinicRegistry",
		ViewsLayout: "layouts/base",
		BodyLimit:   10 * 1024 * 1024, // до 10 МБ на запрос
	})

	// -------------------------------
	// Middleware: безопасность и логика
	// -------------------------------

	app.Use(recover.New())  // Перехватывает паники, возвращает 500 вместо краша
	app.Use(helmet.New())   // Добавляет HTTP security-заголовки
	app.Use(compress.New()) // Сжимает ответы gzip/br
	app.Use(logger.New())   // Логи запросов
	app.Use(limiter.New(limiter.Config{
		Max:        120,         // 120 запросов
		Expiration: time.Minute, // за минуту
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Слишком много запросов. Попробуйте позже.")
		},
	}))
	app.Use(etag.New()) // Ускоряет GET-запросы через кэширование по ETag

	// -------------------------------
	// Статика и маршруты
	// -------------------------------
	app.Static("/static", cfg.Server.StaticPath)

	setupRoutes(app)

	log.Printf("🚀 Сервер запущен на http://localhost%s", cfg.Server.Port)
	log.Printf("📊 Главная: http://localhost%s/", cfg.Server.Port)
	log.Printf("🏥 Пациенты: http://localhost%s/patients", cfg.Server.Port)

	log.Fatal(app.Listen(cfg.Server.Port))
}

// setupRoutes — маршруты приложения
func setupRoutes(app *fiber.App) {
	// вход/выход — без сессии
	app.Get("/login", handlers.GetLoginPage)
	app.Post("/login", handlers.Login)
	app.Post("/register", handlers.Register)
	app.Get("/logout", handlers.Logout)

	// всё остальное — только с живым токеном
	app.Use(handlers.RequireAuth)

	// страницы
	app.Get("/", handlers.Dashboard)
	app.Get("/profile", handlers.GetProfilePage)
	app.Put("/profile", handlers.UpdateProfile)

	// пациенты
	app.Get("/patients", handlers.GetPatientsPage)
	app.Post("/patients", handlers.CreatePatient)
	app.Get("/patients/:id", handlers.GetPatientByID)
	app.Put("/patients/:id", handlers.UpdatePatient)
	app.Delete("/patients/:id", handlers.DeletePatient)

	// --- расписание приёмов
	app.Get("/appointments", handlers.GetAppointmentsPage)
	app.Post("/appointments", handlers.CreateAppointment)
	app.Get("/appointments/:id", handlers.GetAppointmentByID)
	app.Put("/appointments/:id", handlers.UpdateAppointment)
	app.Delete("/appointments/:id", handlers.DeleteAppointment)

	// --- сотрудники
	app.Get("/users", handlers.GetUsersPage)          // HTML страница
	app.Post("/users", handlers.CreateStaffUser)      // создать
	app.Get("/users/:id", handlers.GetStaffUserByID)  // JSON для формы редактирования
	app.Put("/users/:id", handlers.UpdateStaffUser)   // обновить
	app.Delete("/users/:id", handlers.DeleteStaffUser) // удалить

	// журнал передач
	app.Get("/handovers", handlers.GetHandoversPage)
	app.Post("/handovers", handlers.CreateHandoverRecord)
	app.Get("/handovers/export", handlers.ExportHandovers)
	app.Get("/handovers/suggest", handlers.SuggestHandoverTarget)
	app.Delete("/handovers/clear", handlers.ClearHandovers)
	app.Put("/handovers/:id", handlers.UpdateHandoverRecord)
	app.Delete("/handovers/:id", handlers.DeleteHandoverRecord)

	// кейсы
	app.Get("/assets", handlers.GetAssetsPage)
	app.Post("/assets", handlers.CreateAssetRecord)
	app.Get("/assets/:id", handlers.GetAssetByID)
	app.Put("/assets/:id", handlers.UpdateAssetRecord)
	app.Delete("/assets/:id", handlers.DeleteAssetRecord)
}
