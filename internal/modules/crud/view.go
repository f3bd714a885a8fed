package crud

import "html/template"

// View is the page model handed to the entity template.
type View struct {
	Slug              string
	Title             string
	AddLabel          string
	SearchPlaceholder string
	EmptyMessage      string
	DeleteConfirm     string
	Error             string
	Query             string
	Columns           []string
	Rows              []Row
	Modal             *Modal
}

type Row struct {
	ID    int64
	Cells []Cell
}

type Modal struct {
	Heading     string
	Action      string
	SubmitLabel string
	Enctype     string
	Fields      []FieldView
}

type FieldView struct {
	Name         string
	Label        string
	Kind         string
	Value        string
	Required     bool
	ReadOnly     bool
	Checked      bool
	Options      []string
	Pattern      string
	PatternTitle string
	Min          string
	Step         string
	Preview      template.URL
}
