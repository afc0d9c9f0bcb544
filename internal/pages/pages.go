/*
Package pages serves the journal's static informational pages.

The page set is fixed at compile time: these are policy and guideline
documents that change with the journal's regulations, not with its data.
Each page maps one-to-one to a URL slug.
*/
package pages

// Page is one static informational page.
type Page struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Summary is the listing form of a page, without the body.
type Summary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// registry holds every page in its display order.
var registry = []Page{
	{
		Slug:  "history",
		Title: "History of the Journal",
		Body:  "The journal has been published since 1957, covering research in geodesy, cartography, remote sensing and related disciplines.",
	},
	{
		Slug:  "journal-info",
		Title: "About the Journal",
		Body:  "General information about the journal: scope, founders, registration and indexing.",
	},
	{
		Slug:  "editorial-staff",
		Title: "Editorial Staff",
		Body:  "The editorial staff supports the editorial board in manuscript handling, copy editing and issue production.",
	},
	{
		Slug:  "focus-and-scope",
		Title: "Focus and Scope",
		Body:  "The journal publishes original research and review articles in geodesy, aerospace surveying, photogrammetry, cartography and geoinformatics.",
	},
	{
		Slug:  "peer-reviewing",
		Title: "Peer Review Procedure",
		Body:  "All submissions undergo double-blind peer review by at least two independent reviewers.",
	},
	{
		Slug:  "ethics",
		Title: "Publication Ethics",
		Body:  "The journal adheres to COPE guidelines on publication ethics for authors, reviewers and editors.",
	},
	{
		Slug:  "copyright",
		Title: "Copyright and Licensing",
		Body:  "Authors retain copyright and grant the journal the right of first publication.",
	},
	{
		Slug:  "conflict-of-interests",
		Title: "Conflict of Interests",
		Body:  "Authors must disclose any financial or personal relationships that could bias their work.",
	},
	{
		Slug:  "open-access",
		Title: "Open Access Policy",
		Body:  "All content is freely available without charge to the user or their institution.",
	},
	{
		Slug:  "privacy-policy",
		Title: "Privacy Policy",
		Body:  "Names and email addresses entered on this site are used exclusively for the stated purposes of the journal.",
	},
	{
		Slug:  "fees",
		Title: "Publication Fees",
		Body:  "The journal charges no fees for submission, review or publication of articles.",
	},
	{
		Slug:  "guidelines",
		Title: "Author Guidelines",
		Body:  "Requirements for manuscript submission: structure, volume, accompanying documents and submission procedure.",
	},
	{
		Slug:  "text-design",
		Title: "Manuscript Formatting",
		Body:  "Formatting requirements: page layout, fonts, headings, formulas, tables and figures.",
	},
	{
		Slug:  "references",
		Title: "References Formatting",
		Body:  "Rules for formatting bibliographic references and transliteration requirements.",
	},
	{
		Slug:  "sections",
		Title: "Journal Sections",
		Body:  "The journal's permanent sections and the rubrics articles are published under.",
	},
}

// index maps slugs to registry positions; built once at init.
var index = func() map[string]int {
	m := make(map[string]int, len(registry))
	for i, p := range registry {
		m[p.Slug] = i
	}
	return m
}()

// List returns every page summary in display order.
func List() []Summary {
	summaries := make([]Summary, len(registry))
	for i, p := range registry {
		summaries[i] = Summary{Slug: p.Slug, Title: p.Title}
	}
	return summaries
}

// Get returns the page for a slug, or false for an unknown slug.
func Get(slug string) (Page, bool) {
	i, ok := index[slug]
	if !ok {
		return Page{}, false
	}
	return registry[i], true
}
