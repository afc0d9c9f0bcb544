package schema

// JournalBoardMemberTable represents the 'journal.board_member' table
type JournalBoardMemberTable struct {
	Table        string
	ID           string
	Name         string
	Position     string
	Institution  string
	Bio          string
	PhotoPath    string
	DisplayOrder string
	CreatedAt    string
	UpdatedAt    string
}

// JournalBoardMember is the schema definition for journal.board_member
var JournalBoardMember = JournalBoardMemberTable{
	Table:        "journal.board_member",
	ID:           "id",
	Name:         "name",
	Position:     "position",
	Institution:  "institution",
	Bio:          "bio",
	PhotoPath:    "photopath",
	DisplayOrder: "displayorder",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t JournalBoardMemberTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Position, t.Institution, t.Bio, t.PhotoPath,
		t.DisplayOrder, t.CreatedAt, t.UpdatedAt,
	}
}
