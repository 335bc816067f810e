package routes

import (
	"github.com/bnbcollege/feeportal/controllers"
	"github.com/bnbcollege/feeportal/middleware"
	"github.com/gin-gonic/gin"
)

// initStudentRoutes initializes all student-facing routes
func initStudentRoutes(router *gin.Engine) {
	// Public routes (no authentication required)
	router.GET("/", controllers.Home)
	router.GET("/captcha", controllers.ShowCaptcha)
	router.GET("/fees", controllers.GetFees)
	router.GET("/logout", controllers.Logout)

	router.GET("/register", controllers.RegisterPage)
	router.POST("/register", controllers.RegisterStudent)

	router.GET("/login", controllers.LoginPage)
	router.POST("/login", controllers.LoginStudent)

	router.GET("/forgot_password", controllers.ForgotPasswordPage)
	router.POST("/forgot_password", controllers.ResetPassword)

	// Protected routes (require an authenticated student)
	protected := router.Group("/")
	protected.Use(middleware.StudentAuthMiddleware())
	{
		protected.GET("/dashboard", controllers.StudentDashboard)

		protected.GET("/profile", controllers.GetProfile)
		protected.GET("/profile/edit", controllers.EditProfilePage)
		protected.POST("/profile/edit", controllers.UpdateProfile)

		protected.GET("/payment", controllers.PaymentPage)
		protected.POST("/payment", controllers.SubmitPayment)
		protected.GET("/payment/:id/receipt", controllers.DownloadReceipt)
	}
}
