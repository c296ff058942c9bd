package repository

import "time"

// Person represents a people row, the record type browsed by the table.
type Person struct {
	ID        string
	Name      string
	Email     string
	City      string
	Age       int
	JoinedAt  time.Time
	CreatedAt time.Time
}
