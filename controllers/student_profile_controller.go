package controllers

import (
	"strings"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/models"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated student's own record
func GetProfile(c *gin.Context) {
	student, exists := c.Get("student")
	if !exists {
		utils.LogError("Student not found in context")
		utils.Unauthorized(c, "Student not found in context")
		return
	}

	studentModel := student.(models.Student)
	utils.LogInfo("Profile retrieved for student ID: %d", studentModel.ID)
	utils.Page(c, "Profile retrieved successfully", gin.H{
		"student": gin.H{
			"name":       studentModel.Name,
			"email":      studentModel.Email,
			"roll_no":    studentModel.RollNo,
			"course":     studentModel.Course,
			"department": studentModel.Department,
		},
	})
}

// EditProfilePage serves the profile edit form with current values
func EditProfilePage(c *gin.Context) {
	student, exists := c.Get("student")
	if !exists {
		utils.LogError("Student not found in context")
		utils.Unauthorized(c, "Student not found in context")
		return
	}

	studentModel := student.(models.Student)
	utils.Page(c, "Edit profile page loaded successfully", gin.H{
		"student": gin.H{
			"name":       studentModel.Name,
			"course":     studentModel.Course,
			"department": studentModel.Department,
		},
	})
}

// UpdateProfile mutates the student's name, course and department. Email,
// roll number and password are not editable here.
func UpdateProfile(c *gin.Context) {
	student, exists := c.Get("student")
	if !exists {
		utils.LogError("Student not found in context")
		utils.Unauthorized(c, "Student not found in context")
		return
	}
	studentModel := student.(models.Student)

	if !utils.CheckCaptcha(c.PostForm("captcha"), utils.GetCaptchaText(c)) {
		utils.LogError("Profile update failed - Invalid captcha for student ID: %d", studentModel.ID)
		utils.RedirectWithFlash(c, "/profile/edit", "Invalid captcha. Please try again.")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	course := strings.TrimSpace(c.PostForm("course"))
	department := strings.TrimSpace(c.PostForm("department"))

	if valid, msg := utils.ValidateName(name); !valid {
		utils.LogError("Profile update failed - Invalid name for student ID: %d - %s", studentModel.ID, msg)
		utils.RedirectWithFlash(c, "/profile/edit", msg)
		return
	}
	if course == "" || department == "" {
		utils.LogError("Profile update failed - Missing course or department for student ID: %d", studentModel.ID)
		utils.RedirectWithFlash(c, "/profile/edit", "Course and department are required.")
		return
	}

	updates := map[string]interface{}{
		"name":       name,
		"course":     course,
		"department": department,
	}
	if err := config.DB.Model(&studentModel).Updates(updates).Error; err != nil {
		utils.LogError("Profile update failed for student ID: %d: %v", studentModel.ID, err)
		utils.RedirectWithFlash(c, "/profile/edit", "Failed to update profile. Please try again.")
		return
	}

	utils.LogInfo("Profile updated for student ID: %d", studentModel.ID)
	utils.RedirectWithFlash(c, "/profile", "Profile updated.")
}
