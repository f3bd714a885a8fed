package crud

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/backend"
)

// Uploads are held in memory for the multipart forward; 16 MB is far beyond
// any sensible product photo.
const maxUploadBytes = 16 << 20

var errValidation = errors.New("form validation failed")

// Submission is a parsed, schema-filtered form: the scalar values plus the
// freshly chosen image file, if any. Image stays nil when the user did not
// pick a new file, which is what routes the update onto the JSON path.
type Submission struct {
	Fields url.Values
	Image  *backend.File
}

// FormMap flattens the values for modal re-rendering after a failed submit.
func (s Submission) FormMap() map[string]string {
	out := make(map[string]string, len(s.Fields))
	for k := range s.Fields {
		out[k] = s.Fields.Get(k)
	}
	return out
}

// parseSubmission reads the posted form through the field schema: checkboxes
// normalize to "true"/"false", numbers must parse, required fields must be
// present. Validation failures never reach the network.
func (p *Page[T]) parseSubmission(c *gin.Context) (Submission, error) {
	sub := Submission{Fields: url.Values{}}

	mediaType, _, _ := mime.ParseMediaType(c.ContentType())
	if mediaType == "multipart/form-data" {
		if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
			return sub, fmt.Errorf("parse multipart form: %w", err)
		}
		file, err := c.FormFile("image")
		if err == nil && file.Size > 0 {
			f, err := file.Open()
			if err != nil {
				return sub, err
			}
			defer f.Close()
			content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
			if err != nil {
				return sub, err
			}
			sub.Image = &backend.File{Name: file.Filename, Content: content}
		}
	} else {
		if err := c.Request.ParseForm(); err != nil {
			return sub, fmt.Errorf("parse form: %w", err)
		}
	}

	for _, f := range p.cfg.Fields {
		if f.Kind == "file" {
			continue
		}
		value := c.PostForm(f.Name)

		switch f.Kind {
		case "checkbox":
			if value == "true" || value == "on" {
				value = "true"
			} else {
				value = "false"
			}
		case "number":
			if value == "" {
				value = "0"
			}
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				return sub, fmt.Errorf("%w: field %s is not a number", errValidation, f.Name)
			}
		}

		if f.Required && value == "" {
			return sub, fmt.Errorf("%w: field %s is required", errValidation, f.Name)
		}
		sub.Fields.Set(f.Name, value)
	}
	return sub, nil
}

// Number reads a parsed numeric field as float64. parseSubmission already
// validated it, so the zero value only appears for absent fields.
func (s Submission) Number(name string) float64 {
	v, _ := strconv.ParseFloat(s.Fields.Get(name), 64)
	return v
}

// Bool reads a normalized checkbox field.
func (s Submission) Bool(name string) bool {
	return s.Fields.Get(name) == "true"
}

// Text reads a plain field.
func (s Submission) Text(name string) string {
	return s.Fields.Get(name)
}
