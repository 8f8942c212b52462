package domain

import "time"

// Order is a submitted daily order. The employee and item names are
// denormalized copies taken at submission time; OrderDate is server-assigned
// and never changes.
type Order struct {
	ID           string
	EmployeeName string
	Tea          string
	Snack        string
	Amount       float64
	OrderDate    time.Time
}
