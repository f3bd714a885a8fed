package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"motoinventory/internal/backend"
	"motoinventory/internal/config"
	"motoinventory/internal/middleware"
	"motoinventory/internal/modules/auth"
	"motoinventory/internal/modules/clients"
	"motoinventory/internal/modules/dashboard"
	"motoinventory/internal/modules/motorcycles"
	"motoinventory/internal/modules/pieces"
	"motoinventory/internal/modules/placeholder"
	"motoinventory/internal/pkg/render"
	"motoinventory/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	store := session.NewStore()
	renderer, err := render.New(store)
	if err != nil {
		log.Fatal(err)
	}

	client := backend.New(cfg.APIBaseURL)

	authHandler := auth.NewHandler(auth.NewService(), store, renderer)
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(client), renderer)
	stubs := placeholder.NewHandler(renderer)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	r.StaticFS("/static", render.Static())

	loginLimiter := middleware.NewRateLimiter(30, 10)
	r.GET("/login", middleware.RedirectIfAuthenticated(store), authHandler.ShowLogin)
	r.POST("/login", loginLimiter.Middleware(), authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/theme", authHandler.ToggleTheme)

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(store))
	{
		protected.GET("/", dashboardHandler.Show)
		protected.GET("/dashboard", dashboardHandler.Show)

		motorcycles.New(client, renderer).Register(protected)
		pieces.New(client, renderer).Register(protected)
		clients.New(client, renderer).Register(protected)

		protected.GET("/orders", stubs.Page("Orders", "Add Order", "Search orders..."))

		admin := protected.Group("/")
		admin.Use(middleware.AdminOnly(store))
		{
			admin.GET("/workers", stubs.Page("Workers", "Add Worker", "Search workers..."))
			admin.GET("/deadlines", stubs.Page("Deadlines", "Add Deadline", "Search deadlines..."))
			admin.GET("/expenses", stubs.Page("Expenses", "Add Expense", "Search expenses..."))
		}
	}

	r.NoRoute(middleware.NoRoute(store))

	log.Printf("console starting addr=%s backend=%s", cfg.Addr, cfg.APIBaseURL)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
