package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tohahpro/trendNest-server/config"
	"github.com/tohahpro/trendNest-server/database"
	custommw "github.com/tohahpro/trendNest-server/middleware"
	"github.com/tohahpro/trendNest-server/routes"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:5174"},
		AllowCredentials: true,
	}))
	e.Use(custommw.Metrics)

	// Connect to MongoDB
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Setup routes
	routes.SetupRoutes(e)

	port := config.GetEnv("PORT", "5000")
	e.Logger.Fatal(e.Start(":" + port))
}
