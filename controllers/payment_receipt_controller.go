package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/models"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadReceipt generates and returns a PDF receipt for one of the
// student's own payments
func DownloadReceipt(c *gin.Context) {
	student, exists := c.Get("student")
	if !exists {
		utils.LogError("Unauthorized receipt download attempt - no student in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	studentModel := student.(models.Student)

	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid payment ID in receipt request: %v", err)
		utils.BadRequest(c, "Invalid payment ID", nil)
		return
	}

	var payment models.Payment
	if err := config.DB.Where("id = ? AND student_id = ?", paymentID, studentModel.ID).First(&payment).Error; err != nil {
		utils.LogError("Payment not found for receipt - Payment ID: %d, Student ID: %d", paymentID, studentModel.ID)
		utils.NotFound(c, "Payment not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "BNB College")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Office of the Accounts Department")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "FEE PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(50, 8, "Receipt No: "+strconv.Itoa(int(payment.ID)))
	pdf.Cell(60, 8, "Date: "+payment.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Received From:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, studentModel.Name)
	pdf.Ln(6)
	pdf.Cell(100, 8, "Roll No: "+studentModel.RollNo)
	pdf.Ln(6)
	pdf.Cell(100, 8, studentModel.Email)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 8, "Course", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(70, 8, payment.Course, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, payment.Status, "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", payment.Amount), "1", 0, "R", false, 0, "")
	pdf.Ln(14)

	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(100, 8, "This is a system generated receipt.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate receipt PDF for payment ID: %d: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
		return
	}

	utils.LogInfo("Receipt generated for payment ID: %d", payment.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", payment.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
