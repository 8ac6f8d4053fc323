package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/howardchatman/chatmaninc/config"
	"github.com/howardchatman/chatmaninc/database"
	"github.com/howardchatman/chatmaninc/handlers"
	"github.com/howardchatman/chatmaninc/logging"
	"github.com/howardchatman/chatmaninc/middleware"
)

func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.LogLevel); err != nil {
		panic(err)
	}

	if err := database.InitDB(cfg.DBPath, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logging.Log.Fatalw("database init failed", "error", err)
	}

	handlers.WebhookSecret = cfg.WebhookSecret

	r := newRouter(cfg.SessionSecret)

	logging.Log.Infow("listening", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logging.Log.Fatalw("server stopped", "error", err)
	}
}

func newRouter(sessionSecret string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("chatman_session", store))

	// Public website endpoints
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)
	r.POST("/api/leads", handlers.SubmitLead)
	r.POST("/api/voice/webhook", handlers.VoiceWebhook)

	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/dashboard", handlers.Dashboard)
		authorized.POST("/calculate", handlers.Calculate)

		// QUOTE ROUTES
		authorized.POST("/quotes/save", handlers.SaveQuote)
		authorized.GET("/quotes", handlers.ListQuotes)
		authorized.GET("/quotes/:id", handlers.LoadQuote)

		authorized.GET("/leads", handlers.ListLeads)
		authorized.POST("/leads", handlers.CreateLead)
		authorized.PATCH("/leads/:id", handlers.UpdateLead)

		authorized.GET("/invoices", handlers.ListInvoices)
		authorized.POST("/invoices", handlers.CreateInvoice)
		authorized.PATCH("/invoices/:id", handlers.UpdateInvoice)

		authorized.GET("/bookings", handlers.ListBookings)
		authorized.POST("/bookings", handlers.CreateBooking)

		admin := authorized.Group("/settings")
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("", handlers.ShowSettings)
			admin.POST("", handlers.UpdateSettings)
		}
	}

	return r
}
