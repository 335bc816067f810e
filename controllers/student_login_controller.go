package controllers

import (
	"strings"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/models"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
)

// LoginPage serves the student login form
func LoginPage(c *gin.Context) {
	utils.Page(c, "Login page loaded successfully", nil)
}

// LoginStudent handles student login
func LoginStudent(c *gin.Context) {
	if !utils.CheckCaptcha(c.PostForm("captcha"), utils.GetCaptchaText(c)) {
		utils.LogError("Login attempt failed - Invalid captcha")
		utils.RedirectWithFlash(c, "/login", "Invalid captcha. Please try again.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	utils.LogInfo("Login attempt for email: %s", email)

	// A missing account and a wrong password get the same message so that
	// account emails cannot be enumerated.
	var student models.Student
	if err := config.DB.Where("email = ?", email).First(&student).Error; err != nil {
		utils.LogError("Login attempt failed - Student not found: %s", email)
		utils.RedirectWithFlash(c, "/login", "Invalid credentials.")
		return
	}

	if !utils.CheckPassword(password, student.Password) {
		utils.LogError("Login attempt failed - Invalid password for student: %s", email)
		utils.RedirectWithFlash(c, "/login", "Invalid credentials.")
		return
	}

	if err := utils.SetPrincipal(c, student.ID, utils.PrincipalStudent); err != nil {
		utils.LogError("Failed to establish session for student: %s: %v", email, err)
		utils.InternalServerError(c, "Failed to establish session", nil)
		return
	}

	utils.LogInfo("Student logged in successfully: %s", email)
	utils.RedirectWithFlash(c, "/dashboard", "Logged in successfully.")
}
