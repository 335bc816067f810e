package controllers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// DepartmentPaymentRow is one row of the department dashboard: a payment
// joined with its owning student's name and roll number.
type DepartmentPaymentRow struct {
	ID          uint      `json:"id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Course      string    `json:"course"`
	CreatedAt   time.Time `json:"date"`
	StudentName string    `json:"student_name"`
	RollNo      string    `json:"roll_no"`
}

func fetchDepartmentPayments() ([]DepartmentPaymentRow, error) {
	var rows []DepartmentPaymentRow
	err := config.DB.Table("payments").
		Select("payments.id, payments.amount, payments.status, payments.course, payments.created_at, students.name AS student_name, students.roll_no AS roll_no").
		Joins("JOIN students ON students.id = payments.student_id").
		Where("payments.deleted_at IS NULL").
		Order("payments.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// DepartmentDashboard returns every recorded payment joined with the owning
// student, most recent first
func DepartmentDashboard(c *gin.Context) {
	rows, err := fetchDepartmentPayments()
	if err != nil {
		utils.LogError("Failed to fetch department payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	utils.LogInfo("Department dashboard loaded with %d payments", len(rows))
	utils.Page(c, "Department dashboard loaded successfully", gin.H{
		"payments": rows,
	})
}

// DownloadPaymentsExcel exports the department dashboard listing as an
// Excel workbook
func DownloadPaymentsExcel(c *gin.Context) {
	rows, err := fetchDepartmentPayments()
	if err != nil {
		utils.LogError("Failed to fetch payments for Excel export: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}
	utils.LogDebug("Retrieved %d payments for Excel export", len(rows))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("BNB COLLEGE - Fee Payments")
	dateRow := sheet.AddRow()
	dateRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"Payment ID", "Student Name", "Roll No", "Course", "Amount", "Status", "Date"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	var total float64
	for _, row := range rows {
		r := sheet.AddRow()
		r.AddCell().SetInt(int(row.ID))
		r.AddCell().SetString(row.StudentName)
		r.AddCell().SetString(row.RollNo)
		r.AddCell().SetString(row.Course)
		r.AddCell().SetFloat(row.Amount)
		r.AddCell().SetString(row.Status)
		r.AddCell().SetString(row.CreatedAt.Format("2006-01-02 15:04"))
		total += row.Amount
	}

	sheet.AddRow() // spacing
	totalRow := sheet.AddRow()
	totalRow.AddCell().SetString("Total Collected")
	totalRow.AddCell().SetFloat(total)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel export: %v", err)
		utils.InternalServerError(c, "Failed to generate Excel file", nil)
		return
	}

	utils.LogInfo("Payments Excel export generated with %d rows", len(rows))
	c.Header("Content-Disposition", "attachment; filename=payments.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
