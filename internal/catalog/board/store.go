package board

import "context"

// Repository is the persistence contract for editorial board members.
type Repository interface {
	// ListMembers returns the full board ordered (display_order asc, name asc).
	ListMembers(context context.Context) ([]*Member, error)

	GetMember(context context.Context, id int) (*Member, error)
	CreateMember(context context.Context, m *Member) error
	UpdateMember(context context.Context, m *Member) error
	DeleteMember(context context.Context, id int) error
}
