package domain

import "time"

// Department is the partitioning unit for madmin/engineer visibility.
type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
