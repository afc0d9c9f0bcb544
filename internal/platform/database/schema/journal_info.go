package schema

// JournalInfoTable represents the 'journal.info' table.
//
// The table is constrained to a single row (id = 1, CHECK enforced), so the
// store exposes only get/upsert against that fixed key.
type JournalInfoTable struct {
	Table         string
	ID            string
	Title         string
	Description   string
	ISSNPrint     string
	ISSNOnline    string
	Publisher     string
	LogoPath      string
	MainImagePath string
	UpdatedAt     string
}

// JournalInfo is the schema definition for journal.info
var JournalInfo = JournalInfoTable{
	Table:         "journal.info",
	ID:            "id",
	Title:         "title",
	Description:   "description",
	ISSNPrint:     "issnprint",
	ISSNOnline:    "issnonline",
	Publisher:     "publisher",
	LogoPath:      "logopath",
	MainImagePath: "mainimagepath",
	UpdatedAt:     "updatedat",
}

func (t JournalInfoTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.ISSNPrint, t.ISSNOnline, t.Publisher,
		t.LogoPath, t.MainImagePath, t.UpdatedAt,
	}
}
