package info

import "time"

// JournalInfo is the journal's masthead: title, description, ISSNs, publisher
// and branding assets. Exactly one record exists; edits overwrite it in place.
type JournalInfo struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ISSNPrint     string    `json:"issn_print"`
	ISSNOnline    string    `json:"issn_online"`
	Publisher     string    `json:"publisher"`
	LogoPath      *string   `json:"logo_path"`
	MainImagePath *string   `json:"main_image_path"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldISSNPrint   = "issn_print"
	FieldISSNOnline  = "issn_online"
	FieldPublisher   = "publisher"
)
