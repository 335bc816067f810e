package routes

import (
	"github.com/bnbcollege/feeportal/controllers"
	"github.com/bnbcollege/feeportal/middleware"
	"github.com/gin-gonic/gin"
)

// initDepartmentRoutes initializes all department admin routes
func initDepartmentRoutes(router *gin.Engine) {
	router.GET("/department/login", controllers.DepartmentLoginPage)
	router.POST("/department/login", controllers.DepartmentLogin)

	// Protected routes (require an authenticated department admin)
	protected := router.Group("/department")
	protected.Use(middleware.DepartmentAuthMiddleware())
	{
		protected.GET("/dashboard", controllers.DepartmentDashboard)
		protected.GET("/dashboard/export", controllers.DownloadPaymentsExcel)
	}
}
