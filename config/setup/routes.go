package setup

import (
	"lifehub/app"
	"lifehub/handlers"
	"lifehub/metrics"
	"lifehub/middleware"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	authRequired := middleware.AuthRequired(application.AuthService)

	// Public routes
	fiberApp.Get("/health", handlers.Health(application))
	fiberApp.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Auth routes
	fiberApp.Post("/api/auth/register", handlers.Register(application))
	fiberApp.Post("/api/auth/login", handlers.Login(application))
	fiberApp.Post("/api/auth/google", handlers.GoogleLogin(application))
	fiberApp.Post("/api/auth/logout", handlers.Logout(application))
	fiberApp.Get("/api/auth/me", authRequired, handlers.Me(application))

	fiberApp.Get("/api/community-tips", handlers.ListTips(application))

	// Protected API routes
	api := fiberApp.Group("/api", authRequired, limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID := middleware.GetUserID(c); userID != 0 {
				return "user:" + strconv.FormatInt(userID, 10)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
				"code":  "rate_limited",
			})
		},
	}))

	api.Get("/user/profile", handlers.GetProfile(application))
	api.Patch("/user/preferences", handlers.UpdatePreferences(application))

	api.Get("/widgets", handlers.ListWidgets(application))
	api.Post("/widgets", handlers.CreateWidget(application))
	api.Post("/widgets/reorder", handlers.ReorderWidgets(application))
	api.Patch("/widgets/:id", handlers.UpdateWidget(application))
	api.Delete("/widgets/:id", handlers.DeleteWidget(application))

	api.Get("/tasks", handlers.ListTasks(application))
	api.Post("/tasks", handlers.CreateTask(application))
	api.Get("/tasks/:id", handlers.GetTask(application))
	api.Patch("/tasks/:id", handlers.UpdateTask(application))
	api.Delete("/tasks/:id", handlers.DeleteTask(application))

	api.Get("/events", handlers.ListEvents(application))
	api.Post("/events", handlers.CreateEvent(application))
	api.Get("/events/:id", handlers.GetEvent(application))
	api.Patch("/events/:id", handlers.UpdateEvent(application))
	api.Delete("/events/:id", handlers.DeleteEvent(application))

	api.Get("/transactions", handlers.ListTransactions(application))
	api.Post("/transactions", handlers.CreateTransaction(application))
	api.Get("/transactions/:id", handlers.GetTransaction(application))
	api.Patch("/transactions/:id", handlers.UpdateTransaction(application))
	api.Delete("/transactions/:id", handlers.DeleteTransaction(application))

	api.Get("/habits", handlers.ListHabits(application))
	api.Post("/habits", handlers.CreateHabit(application))
	api.Patch("/habits/:id", handlers.UpdateHabit(application))
	api.Delete("/habits/:id", handlers.DeleteHabit(application))
	api.Post("/habits/:id/complete", handlers.CompleteHabit(application))
	api.Delete("/habits/:id/completions/:completionId", handlers.UncompleteHabit(application))

	api.Get("/contacts", handlers.ListContacts(application))
	api.Post("/contacts", handlers.CreateContact(application))
	api.Get("/contacts/:id", handlers.GetContact(application))
	api.Patch("/contacts/:id", handlers.UpdateContact(application))
	api.Delete("/contacts/:id", handlers.DeleteContact(application))

	api.Get("/documents", handlers.ListDocuments(application))
	api.Post("/documents", handlers.UploadDocument(application))
	api.Get("/documents/:id/content", handlers.DocumentContent(application))
	api.Delete("/documents/:id", handlers.DeleteDocument(application))

	api.Get("/journal", handlers.ListJournalEntries(application))
	api.Post("/journal", handlers.CreateJournalEntry(application))
	api.Get("/journal/:id", handlers.GetJournalEntry(application))
	api.Patch("/journal/:id", handlers.UpdateJournalEntry(application))
	api.Delete("/journal/:id", handlers.DeleteJournalEntry(application))

	api.Post("/community-tips", handlers.CreateTip(application))
	api.Patch("/community-tips/:id", handlers.UpdateTip(application))
	api.Delete("/community-tips/:id", handlers.DeleteTip(application))
	api.Post("/community-tips/:id/vote", handlers.VoteTip(application))
}
