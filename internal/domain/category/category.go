package category

import "time"

type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

type ListFilter struct {
	OnlyActive bool
}
