package controllers

import (
	"strings"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/models"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
)

// ForgotPasswordPage serves the password reset form
func ForgotPasswordPage(c *gin.Context) {
	utils.Page(c, "Forgot password page loaded successfully", nil)
}

// ResetPassword resets a student's password when the submitted email and
// roll number both match the same account. There is no emailed reset token;
// those two fields are the whole identity check.
func ResetPassword(c *gin.Context) {
	// The CAPTCHA is enforced here like on every other mutating form. The
	// system this derives from had a dead branch that skipped it.
	if !utils.CheckCaptcha(c.PostForm("captcha"), utils.GetCaptchaText(c)) {
		utils.LogError("Password reset failed - Invalid captcha")
		utils.RedirectWithFlash(c, "/forgot_password", "Invalid captcha. Please try again.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	rollNo := strings.TrimSpace(c.PostForm("roll_no"))
	newPassword := c.PostForm("new_password")

	utils.LogInfo("Password reset attempt for email: %s, roll no: %s", email, rollNo)

	if valid, msg := utils.ValidatePassword(newPassword); !valid {
		utils.LogError("Password reset failed - Invalid new password for email: %s - %s", email, msg)
		utils.RedirectWithFlash(c, "/forgot_password", msg)
		return
	}

	var student models.Student
	if err := config.DB.Where("email = ? AND roll_no = ?", email, rollNo).First(&student).Error; err != nil {
		utils.LogError("Password reset failed - No matching student for email: %s, roll no: %s", email, rollNo)
		utils.RedirectWithFlash(c, "/forgot_password", "No matching student found. Check your Email and Roll No.")
		return
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		utils.LogError("Failed to hash new password for student ID: %d: %v", student.ID, err)
		utils.RedirectWithFlash(c, "/forgot_password", "Failed to reset password. Please try again.")
		return
	}

	if err := config.DB.Model(&student).Update("password", hashedPassword).Error; err != nil {
		utils.LogError("Failed to update password for student ID: %d: %v", student.ID, err)
		utils.RedirectWithFlash(c, "/forgot_password", "Failed to reset password. Please try again.")
		return
	}

	utils.LogInfo("Password reset successful for student ID: %d", student.ID)
	utils.RedirectWithFlash(c, "/login", "Password reset successful. Please login with your new password.")
}
