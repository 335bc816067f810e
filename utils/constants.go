package utils

// Application constants
const (
	// Application name
	AppName = "FeePortal"

	// Default port
	DefaultPort = "8080"

	// Default database file path
	DefaultDBPath = "database.db"

	// Session cookie name
	SessionName = "feeportal"

	// Session lifetime in seconds (1 day)
	SessionMaxAge = 60 * 60 * 24

	// Default department admin credentials, seeded when the table is empty
	DefaultDeptUsername = "deptadmin"
	DefaultDeptPassword = "admin123"

	// Minimum password length
	MinPasswordLength = 6
)

// FeeEntry is one row of the static fee schedule
type FeeEntry struct {
	Course string  `json:"course"`
	Amount float64 `json:"amount"`
}

// FeeSchedule maps each course to its tuition amount. The order is the
// display order; the first entry's amount is the payment form default.
// Submitted payment amounts are not validated against this table.
var FeeSchedule = []FeeEntry{
	{Course: "BSc Computer Science", Amount: 50000},
	{Course: "BCom", Amount: 40000},
	{Course: "BA", Amount: 30000},
	{Course: "BTech", Amount: 120000},
}
