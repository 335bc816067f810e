package controllers

import (
	"strings"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/models"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
)

// DepartmentLoginPage serves the department login form
func DepartmentLoginPage(c *gin.Context) {
	utils.Page(c, "Department login page loaded successfully", nil)
}

// DepartmentLogin handles department admin authentication
func DepartmentLogin(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	utils.LogInfo("Department login attempt for username: %s", username)

	var dept models.Department
	if err := config.DB.Where("username = ?", username).First(&dept).Error; err != nil {
		utils.LogError("Department login failed - Account not found: %s", username)
		utils.RedirectWithFlash(c, "/department/login", "Invalid department credentials.")
		return
	}

	if !utils.CheckPassword(password, dept.Password) {
		utils.LogError("Department login failed - Invalid password for: %s", username)
		utils.RedirectWithFlash(c, "/department/login", "Invalid department credentials.")
		return
	}

	if err := utils.SetPrincipal(c, dept.ID, utils.PrincipalDepartment); err != nil {
		utils.LogError("Failed to establish session for department: %s: %v", username, err)
		utils.InternalServerError(c, "Failed to establish session", nil)
		return
	}

	utils.LogInfo("Department logged in successfully: %s", username)
	utils.RedirectWithFlash(c, "/department/dashboard", "Department logged in.")
}

// CreateDefaultDepartment seeds the default department admin account if it
// does not exist yet. Safe to run on every startup.
func CreateDefaultDepartment() error {
	utils.LogInfo("CreateDefaultDepartment called")

	var existing models.Department
	err := config.DB.Where("username = ?", utils.DefaultDeptUsername).First(&existing).Error
	if err == nil {
		utils.LogDebug("Default department account already exists")
		return nil
	}

	hashedPassword, err := utils.HashPassword(utils.DefaultDeptPassword)
	if err != nil {
		utils.LogError("Failed to hash default department password: %v", err)
		return err
	}

	dept := models.Department{
		Username: utils.DefaultDeptUsername,
		Password: hashedPassword,
	}
	if err := config.DB.Create(&dept).Error; err != nil {
		utils.LogError("Failed to create default department account: %v", err)
		return err
	}

	utils.LogInfo("Default department account created: %s", dept.Username)
	return nil
}
