package customer

import "time"

type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	City      string
	State     string
	CreatedAt time.Time
}

type ListFilter struct {
	Search string
}
