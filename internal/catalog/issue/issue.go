package issue

import "time"

// Issue represents one published numbering of the journal (year + volume + number).
//
// At most one issue carries IsCurrent = true; the store enforces exclusivity
// when the flag is set.
type Issue struct {
	ID              int        `json:"id"`
	Year            int        `json:"year"`
	Volume          string     `json:"volume"`
	Number          int        `json:"number"`
	PublicationDate *time.Time `json:"publication_date"`
	IsCurrent       bool       `json:"is_current"`
	CoverPath       *string    `json:"cover_path"`
	FullPDFPath     *string    `json:"full_pdf_path"`
	ArchiveRangeID  *int       `json:"archive_range_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Plausible bounds for the journal's publication years. The journal has been
// printed since 1957; the upper bound leaves room for scheduling ahead.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Global field names for validation
const (
	FieldYear            = "year"
	FieldVolume          = "volume"
	FieldNumber          = "number"
	FieldPublicationDate = "publication_date"
	FieldArchiveRangeID  = "archive_range_id"
)
