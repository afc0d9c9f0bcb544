package article

import "time"

// Article is a single published work belonging to exactly one Issue.
// Deleting the issue cascades to its articles at the schema level.
type Article struct {
	ID          int       `json:"id"`
	IssueID     int       `json:"issue_id"`
	Title       string    `json:"title"`
	Authors     string    `json:"authors"`
	Abstract    string    `json:"abstract"`
	Keywords    string    `json:"keywords"`
	Rubric      string    `json:"rubric"`
	DOI         string    `json:"doi"`
	PDFPath     *string   `json:"pdf_path"`
	PageStart   int       `json:"page_start"`
	PageEnd     int       `json:"page_end"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated article search.
type Filter struct {
	// PublishedOnly hides drafts; always true on the public surface.
	PublishedOnly bool
	// IssueID restricts the listing to one issue, ordered by page_start.
	IssueID int
	// Rubrics filters by section names (comma-separated in the query string).
	Rubrics []string
}

// Global field names for validation
const (
	FieldIssueID   = "issue_id"
	FieldTitle     = "title"
	FieldAuthors   = "authors"
	FieldAbstract  = "abstract"
	FieldRubric    = "rubric"
	FieldDOI       = "doi"
	FieldPageStart = "page_start"
	FieldPageEnd   = "page_end"
)
