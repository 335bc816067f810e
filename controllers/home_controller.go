package controllers

import (
	"net/http"

	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
)

// Home serves the landing page
func Home(c *gin.Context) {
	utils.Page(c, "Welcome to the college fee payment portal", gin.H{
		"app": utils.AppName,
	})
}

// Logout clears the session for any principal kind and returns to the
// landing page
func Logout(c *gin.Context) {
	if err := utils.ClearSession(c); err != nil {
		utils.LogError("Failed to clear session on logout: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}
