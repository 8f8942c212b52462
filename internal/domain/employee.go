package domain

// Employee is a roster entry selectable on the order form.
type Employee struct {
	ID   string
	Name string
}
