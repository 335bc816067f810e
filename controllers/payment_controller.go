package controllers

import (
	"strings"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/models"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
)

// StudentDashboard returns the student's own payment history, newest first
func StudentDashboard(c *gin.Context) {
	student, exists := c.Get("student")
	if !exists {
		utils.LogError("Student not found in context")
		utils.Unauthorized(c, "Student not found in context")
		return
	}
	studentModel := student.(models.Student)

	var payments []models.Payment
	if err := config.DB.Where("student_id = ?", studentModel.ID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for student ID: %d: %v", studentModel.ID, err)
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	utils.LogInfo("Dashboard loaded for student ID: %d with %d payments", studentModel.ID, len(payments))
	utils.Page(c, "Dashboard loaded successfully", gin.H{
		"student": gin.H{
			"name":    studentModel.Name,
			"roll_no": studentModel.RollNo,
			"course":  studentModel.Course,
		},
		"payments": payments,
	})
}

// GetFees returns the static fee schedule
func GetFees(c *gin.Context) {
	utils.Page(c, "Fee schedule loaded successfully", gin.H{
		"fees": utils.FeeSchedule,
	})
}

// PaymentPage serves the payment form with the schedule and default amount
func PaymentPage(c *gin.Context) {
	utils.Page(c, "Payment page loaded successfully", gin.H{
		"fees":           utils.FeeSchedule,
		"default_amount": utils.FeeSchedule[0].Amount,
	})
}

// SubmitPayment records a fee payment for the authenticated student and
// returns the created row as the confirmation view. The amount comes from
// the form as-is; there is no gateway confirmation step and the status is
// always recorded as paid.
func SubmitPayment(c *gin.Context) {
	student, exists := c.Get("student")
	if !exists {
		utils.LogError("Student not found in context")
		utils.Unauthorized(c, "Student not found in context")
		return
	}
	studentModel := student.(models.Student)

	course := strings.TrimSpace(c.PostForm("course"))
	amount, valid, msg := utils.ValidateAmount(c.PostForm("amount"))
	if !valid {
		utils.LogError("Payment failed - %s for student ID: %d", msg, studentModel.ID)
		utils.RedirectWithFlash(c, "/payment", msg)
		return
	}

	payment := models.Payment{
		StudentID: studentModel.ID,
		Amount:    amount,
		Status:    models.PaymentStatusPaid,
		Course:    course,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record payment for student ID: %d: %v", studentModel.ID, err)
		utils.InternalServerError(c, "Failed to record payment", nil)
		return
	}

	utils.LogInfo("Payment %d recorded for student ID: %d, amount: %.2f", payment.ID, studentModel.ID, amount)
	utils.Page(c, "Payment successful", gin.H{
		"payment": payment,
	})
}
