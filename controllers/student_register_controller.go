package controllers

import (
	"strings"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/models"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
)

// RegisterPage serves the registration form
func RegisterPage(c *gin.Context) {
	utils.Page(c, "Registration page loaded successfully", nil)
}

// RegisterStudent handles student registration
func RegisterStudent(c *gin.Context) {
	if !utils.CheckCaptcha(c.PostForm("captcha"), utils.GetCaptchaText(c)) {
		utils.LogError("Registration attempt failed - Invalid captcha")
		utils.RedirectWithFlash(c, "/register", "Invalid captcha. Please try again.")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")
	rollNo := strings.TrimSpace(c.PostForm("roll_no"))
	course := strings.TrimSpace(c.PostForm("course"))
	department := strings.TrimSpace(c.PostForm("department"))

	utils.LogInfo("Registration attempt for email: %s, roll no: %s", email, rollNo)

	if valid, msg := utils.ValidateName(name); !valid {
		utils.LogError("Registration attempt failed - Invalid name: %s", msg)
		utils.RedirectWithFlash(c, "/register", msg)
		return
	}
	if valid, msg := utils.ValidateEmail(email); !valid {
		utils.LogError("Registration attempt failed - Invalid email: %s - %s", email, msg)
		utils.RedirectWithFlash(c, "/register", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(password); !valid {
		utils.LogError("Registration attempt failed - Invalid password for email: %s - %s", email, msg)
		utils.RedirectWithFlash(c, "/register", msg)
		return
	}
	if valid, msg := utils.ValidateRollNo(rollNo); !valid {
		utils.LogError("Registration attempt failed - Invalid roll no: %s - %s", rollNo, msg)
		utils.RedirectWithFlash(c, "/register", msg)
		return
	}
	if course == "" || department == "" {
		utils.LogError("Registration attempt failed - Missing course or department for email: %s", email)
		utils.RedirectWithFlash(c, "/register", "Course and department are required.")
		return
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		utils.LogError("Failed to hash password for email: %s: %v", email, err)
		utils.RedirectWithFlash(c, "/register", "Error during registration. Please try again.")
		return
	}

	student := models.Student{
		Name:       name,
		Email:      email,
		Password:   hashedPassword,
		RollNo:     rollNo,
		Course:     course,
		Department: department,
	}

	// Email and roll number uniqueness is enforced by the database
	// constraints; the raw constraint error is logged, never surfaced.
	if err := config.DB.Create(&student).Error; err != nil {
		utils.LogError("Registration failed for email: %s: %v", email, err)
		utils.RedirectWithFlash(c, "/register", "Error during registration. Email or roll number may already be in use.")
		return
	}

	utils.LogInfo("Student registered successfully: %s", email)
	utils.RedirectWithFlash(c, "/login", "Registered successfully. Please login.")
}
