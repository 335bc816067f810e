package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	rollNoRegex = regexp.MustCompile(`^[a-zA-Z0-9/-]{1,20}$`)
)

// ValidateEmail checks email format
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// ValidateName checks a person's name
func ValidateName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, "Name is required"
	}
	if len(name) > 100 {
		return false, "Name must be at most 100 characters"
	}
	return true, ""
}

// ValidateRollNo checks roll number format
func ValidateRollNo(rollNo string) (bool, string) {
	if rollNo == "" {
		return false, "Roll number is required"
	}
	if !rollNoRegex.MatchString(rollNo) {
		return false, "Roll number may only contain letters, digits, '/' and '-'"
	}
	return true, ""
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, "Password must be at least 6 characters"
	}
	return true, ""
}

// ValidateAmount parses and checks a submitted fee amount
func ValidateAmount(raw string) (float64, bool, string) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false, "Amount must be a number"
	}
	if amount <= 0 {
		return 0, false, "Amount must be greater than zero"
	}
	return amount, true, ""
}
