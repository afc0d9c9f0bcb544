package schema

// JournalArchiveRangeTable represents the 'journal.archive_range' table
type JournalArchiveRangeTable struct {
	Table       string
	ID          string
	StartYear   string
	EndYear     string
	Slug        string
	Description string
	IsActive    string
	CreatedAt   string
	UpdatedAt   string
}

// JournalArchiveRange is the schema definition for journal.archive_range
var JournalArchiveRange = JournalArchiveRangeTable{
	Table:       "journal.archive_range",
	ID:          "id",
	StartYear:   "startyear",
	EndYear:     "endyear",
	Slug:        "slug",
	Description: "description",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t JournalArchiveRangeTable) Columns() []string {
	return []string{
		t.ID, t.StartYear, t.EndYear, t.Slug, t.Description, t.IsActive,
		t.CreatedAt, t.UpdatedAt,
	}
}
