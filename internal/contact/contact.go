/*
Package contact handles reader messages submitted through the public
contact form and the staff workflow for processing them.
*/
package contact

import "time"

// Message is one reader submission. It enters the system unprocessed and
// stays until a staff member marks it handled or deletes it.
type Message struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	IsProcessed bool      `json:"is_processed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Global field names for validation
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldMessage = "message"
)
