package middleware

import (
	"net/http"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/models"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
)

// StudentAuthMiddleware requires a session owned by a student principal.
// Unauthenticated requests are redirected to the student login page.
func StudentAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, kind, ok := utils.GetPrincipal(c)
		if !ok || kind != utils.PrincipalStudent {
			utils.LogDebug("Unauthenticated student access to %s", c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		var student models.Student
		if err := config.DB.First(&student, id).Error; err != nil {
			utils.LogError("Session student %d not found: %v", id, err)
			utils.ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("student", student)
		c.Next()
	}
}

// DepartmentAuthMiddleware requires a session owned by a department admin
// principal. Unauthenticated requests are redirected to the department
// login page.
func DepartmentAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, kind, ok := utils.GetPrincipal(c)
		if !ok || kind != utils.PrincipalDepartment {
			utils.LogDebug("Unauthenticated department access to %s", c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/department/login")
			c.Abort()
			return
		}

		var dept models.Department
		if err := config.DB.First(&dept, id).Error; err != nil {
			utils.LogError("Session department %d not found: %v", id, err)
			utils.ClearSession(c)
			c.Redirect(http.StatusFound, "/department/login")
			c.Abort()
			return
		}

		c.Set("department", dept)
		c.Next()
	}
}
