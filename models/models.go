package models

import (
	"gorm.io/gorm"
)

// Student represents a registered student in the system
type Student struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null"`
	Email      string `json:"email" gorm:"uniqueIndex;not null"`
	Password   string `json:"-" gorm:"not null"`
	RollNo     string `json:"roll_no" gorm:"uniqueIndex;not null"`
	Course     string `json:"course" gorm:"not null"`
	Department string `json:"department" gorm:"not null"`

	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:StudentID"`
}

// Department represents a department admin account
type Department struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

// Payment represents a recorded fee payment made by a student
type Payment struct {
	gorm.Model
	StudentID uint    `json:"student_id" gorm:"not null;index"`
	Student   Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Amount    float64 `json:"amount" gorm:"not null"`
	Status    string  `json:"status" gorm:"not null"`
	Course    string  `json:"course"`
}

// PaymentStatusPaid is the only status a payment is ever created with.
// There is no gateway confirmation step; submissions are recorded as paid.
const PaymentStatusPaid = "Paid"
