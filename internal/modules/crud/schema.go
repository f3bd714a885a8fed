package crud

import "html/template"

// Field describes one form control of an entity's modal. Kind matches the
// input type rendered by the entity template: text, number, checkbox, select,
// textarea, file or hidden.
type Field struct {
	Name           string
	Label          string
	Kind           string
	Required       bool
	ReadOnlyOnEdit bool
	Options        []string
	Pattern        string
	PatternTitle   string
	Min            string
	Step           string
	Default        string
}

// Cell is one rendered table cell. Kind text renders Text verbatim, badge
// wraps it in the Class span, image renders Image (already a data URL or
// plain src) with the no-image placeholder when empty.
type Cell struct {
	Kind  string
	Text  string
	Class string
	// Image is typed template.URL because the backend serves data URLs,
	// which html/template would otherwise scrub out of src attributes.
	Image template.URL
	Alt   string
}

func TextCell(text string) Cell { return Cell{Kind: "text", Text: text} }

func BadgeCell(text, class string) Cell { return Cell{Kind: "badge", Text: text, Class: class} }

func ImageCell(src, alt string) Cell { return Cell{Kind: "image", Image: template.URL(src), Alt: alt} }
