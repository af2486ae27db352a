package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbernet/backend/internal/handlers"
	infraRepo "github.com/barbernet/backend/internal/infra/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ======================================================
	// 🔧 REPOSITORIES
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	barberRepo := infraRepo.NewBarberGormRepository(db)
	shopRepo := infraRepo.NewShopGormRepository(db)
	jobRepo := infraRepo.NewJobGormRepository(db)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	barberHandler := handlers.NewBarberHandler(barberRepo)
	shopHandler := handlers.NewShopHandler(shopRepo)
	jobHandler := handlers.NewJobHandler(jobRepo)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.GET("/users", authHandler.ListUsers)
		}

		// ------------------------------
		// USERS
		// ------------------------------
		users := api.Group("/user")
		{
			users.GET("/:id", userHandler.Get)
			users.PUT("/update", userHandler.Update)
			users.DELETE("/delete/:id", userHandler.Delete)
		}

		// ------------------------------
		// BARBERS
		// ------------------------------
		barbers := api.Group("/barbers")
		{
			barbers.GET("", barberHandler.List)
			barbers.GET("/list", barberHandler.ListFiltered)
			barbers.GET("/owner/:owner_id", barberHandler.ListByOwner)
			barbers.GET("/:id", barberHandler.Get)
			barbers.POST("/new-barber", barberHandler.Create)
			barbers.PUT("/update/:id", barberHandler.Update)
			barbers.DELETE("/delete/:id", barberHandler.Delete)
		}

		// ------------------------------
		// SHOPS
		// ------------------------------
		shops := api.Group("/shops")
		{
			shops.GET("", shopHandler.List)
			shops.GET("/list", shopHandler.ListFiltered)
			shops.GET("/owner/:owner_id", shopHandler.ListByOwner)
			shops.GET("/:id", shopHandler.Get)
			shops.POST("/new-shop", shopHandler.Create)
			shops.PUT("/update/:id", shopHandler.Update)
			shops.DELETE("/delete/:id", shopHandler.Delete)
		}

		// ------------------------------
		// JOBS
		// ------------------------------
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.List)
			jobs.GET("/list", jobHandler.ListFiltered)
			jobs.GET("/owner/:owner_id", jobHandler.ListByOwner)
			jobs.GET("/:id", jobHandler.Get)
			jobs.POST("/new-job", jobHandler.Create)
			jobs.PUT("/update/:id", jobHandler.Update)
			jobs.DELETE("/delete/:id", jobHandler.Delete)
		}
	}
}
