package routes

import (
	"os"

	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "replace-this-with-a-secure-random-key"
	}

	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		MaxAge:   utils.SessionMaxAge,
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions(utils.SessionName, store))

	initStudentRoutes(router)
	initDepartmentRoutes(router)

	return router
}
