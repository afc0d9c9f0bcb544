package contact

import "context"

// Repository is the persistence contract for contact messages.
type Repository interface {
	// ListMessages returns messages newest first. unprocessedOnly narrows
	// the listing to the staff work queue.
	ListMessages(context context.Context, unprocessedOnly bool, limit, offset int) ([]*Message, int, error)

	GetMessage(context context.Context, id int) (*Message, error)
	CreateMessage(context context.Context, m *Message) error
	SetProcessed(context context.Context, id int, processed bool) error
	DeleteMessage(context context.Context, id int) error
}
