package routes

import (
	authapi "filmadviser/internal/api/auth"
	catalogapi "filmadviser/internal/api/catalog"
	ratingsapi "filmadviser/internal/api/ratings"
	usersapi "filmadviser/internal/api/users"
	"filmadviser/internal/app/http/middleware"
	"filmadviser/internal/domain/catalog"
	"filmadviser/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles the handlers over one storage handle.
type API struct {
	Auth    *authapi.Handler
	Users   *usersapi.Handler
	Ratings *ratingsapi.Handler
	Movies  *catalogapi.Handler
	Serials *catalogapi.Handler
}

func NewAPI(db *gorm.DB) *API {
	userRepo := storage.NewUserRepository(db)
	ratingRepo := storage.NewRatingRepository(db)
	movieRepo := storage.NewTitleRepository(db, catalog.KindMovie)
	serialRepo := storage.NewTitleRepository(db, catalog.KindSerial)

	return &API{
		Auth:    authapi.NewHandler(userRepo),
		Users:   usersapi.NewHandler(userRepo),
		Ratings: ratingsapi.NewHandler(userRepo, ratingRepo, movieRepo, serialRepo),
		Movies:  catalogapi.NewHandler(movieRepo),
		Serials: catalogapi.NewHandler(serialRepo),
	}
}

func RegisterRoutes(r *gin.Engine, api *API) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, with input sanitization on JSON bodies
	public := r.Group("/api")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/register", api.Auth.Register)
	public.POST("/login", api.Auth.Login)

	// Public reads
	read := r.Group("/api")
	read.GET("/movies", api.Movies.List)
	read.GET("/movies/:id", api.Movies.Get)
	read.GET("/serials", api.Serials.List)
	read.GET("/serials/:id", api.Serials.Get)
	read.GET("/users", api.Users.List)
	read.GET("/users/:userId/ratings", api.Ratings.ListForUser)
	read.GET("/ratings", api.Ratings.List)

	// Authenticated writes
	write := r.Group("/api")
	write.Use(middleware.AuthMiddleware(), middleware.SanitizeInputMiddleware())

	write.POST("/movies", api.Movies.Create)
	write.PUT("/movies/:id", api.Movies.Replace)
	write.PATCH("/movies/:id", api.Movies.Merge)
	write.DELETE("/movies/:id", api.Movies.Delete)
	write.POST("/movies/:id/rate", api.Ratings.RateMovie)

	write.POST("/serials", api.Serials.Create)
	write.PUT("/serials/:id", api.Serials.Replace)
	write.PATCH("/serials/:id", api.Serials.Merge)
	write.DELETE("/serials/:id", api.Serials.Delete)
	write.POST("/serials/:id/rate", api.Ratings.RateSerial)
}
