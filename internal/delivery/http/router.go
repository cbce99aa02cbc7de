package http

import (
	"github.com/campushub/backend/internal/delivery/http/handler"
	"github.com/campushub/backend/internal/delivery/http/middleware"
	"github.com/campushub/backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Router struct {
	authHandler     *handler.AuthHandler
	roommateHandler *handler.RoommateHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	roommateHandler *handler.RoommateHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		roommateHandler: roommateHandler,
		authMiddleware:  authMiddleware,
	}
}

// registerValidators adds the profile enum validators used by binding tags.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("sleepschedule", func(fl validator.FieldLevel) bool {
		return domain.SleepSchedule(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("studyhabits", func(fl validator.FieldLevel) bool {
		return domain.StudyHabits(fl.Field().String()).Valid()
	})
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.Default()
	router.Use(middleware.RequestID())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			roommate := protected.Group("/roommate")
			{
				roommate.GET("/profile", r.roommateHandler.GetMyProfile)
				roommate.POST("/profile", r.roommateHandler.SaveProfile)
				roommate.DELETE("/profile", r.roommateHandler.DeactivateProfile)

				roommate.GET("/matches", r.roommateHandler.GetMatches)
				roommate.POST("/find-matches", r.roommateHandler.FindMatches)
				roommate.PATCH("/matches/:match_id", r.roommateHandler.UpdateMatchStatus)
				roommate.GET("/matches/:match_id/insight", r.roommateHandler.MatchInsight)
			}
		}
	}

	return router
}
