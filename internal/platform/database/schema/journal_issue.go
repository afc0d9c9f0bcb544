package schema

// JournalIssueTable represents the 'journal.issue' table
type JournalIssueTable struct {
	Table           string
	ID              string
	Year            string
	Volume          string
	Number          string
	PublicationDate string
	IsCurrent       string
	CoverPath       string
	FullPDFPath     string
	ArchiveRangeID  string
	CreatedAt       string
	UpdatedAt       string
}

// JournalIssue is the schema definition for journal.issue
var JournalIssue = JournalIssueTable{
	Table:           "journal.issue",
	ID:              "id",
	Year:            "year",
	Volume:          "volume",
	Number:          "number",
	PublicationDate: "publicationdate",
	IsCurrent:       "iscurrent",
	CoverPath:       "coverpath",
	FullPDFPath:     "fullpdfpath",
	ArchiveRangeID:  "archiverangeid",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t JournalIssueTable) Columns() []string {
	return []string{
		t.ID, t.Year, t.Volume, t.Number, t.PublicationDate, t.IsCurrent,
		t.CoverPath, t.FullPDFPath, t.ArchiveRangeID, t.CreatedAt, t.UpdatedAt,
	}
}
