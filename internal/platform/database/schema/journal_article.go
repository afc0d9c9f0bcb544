package schema

// JournalArticleTable represents the 'journal.article' table
type JournalArticleTable struct {
	Table       string
	ID          string
	IssueID     string
	Title       string
	Authors     string
	Abstract    string
	Keywords    string
	Rubric      string
	DOI         string
	PDFPath     string
	PageStart   string
	PageEnd     string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
}

// JournalArticle is the schema definition for journal.article
var JournalArticle = JournalArticleTable{
	Table:       "journal.article",
	ID:          "id",
	IssueID:     "issueid",
	Title:       "title",
	Authors:     "authors",
	Abstract:    "abstract",
	Keywords:    "keywords",
	Rubric:      "rubric",
	DOI:         "doi",
	PDFPath:     "pdfpath",
	PageStart:   "pagestart",
	PageEnd:     "pageend",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t JournalArticleTable) Columns() []string {
	return []string{
		t.ID, t.IssueID, t.Title, t.Authors, t.Abstract, t.Keywords, t.Rubric,
		t.DOI, t.PDFPath, t.PageStart, t.PageEnd, t.IsPublished, t.CreatedAt, t.UpdatedAt,
	}
}
