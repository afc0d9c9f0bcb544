package board

import "time"

// Member is one entry of the journal's editorial board page.
// DisplayOrder drives the page ordering; ties fall back to name.
type Member struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	Institution  string    `json:"institution"`
	Bio          string    `json:"bio"`
	PhotoPath    *string   `json:"photo_path"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldPosition    = "position"
	FieldInstitution = "institution"
	FieldBio         = "bio"
)
