package schema

// JournalContactMessageTable represents the 'journal.contact_message' table
type JournalContactMessageTable struct {
	Table       string
	ID          string
	Name        string
	Phone       string
	Email       string
	Message     string
	IsProcessed string
	CreatedAt   string
}

// JournalContactMessage is the schema definition for journal.contact_message
var JournalContactMessage = JournalContactMessageTable{
	Table:       "journal.contact_message",
	ID:          "id",
	Name:        "name",
	Phone:       "phone",
	Email:       "email",
	Message:     "message",
	IsProcessed: "isprocessed",
	CreatedAt:   "createdat",
}

func (t JournalContactMessageTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Phone, t.Email, t.Message, t.IsProcessed, t.CreatedAt,
	}
}
