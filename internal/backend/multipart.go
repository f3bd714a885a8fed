package backend

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/url"
	"sort"
)

// File is an uploaded image held in memory between the form submission and
// the multipart request.
type File struct {
	Name    string
	Content []byte
}

func encodeMultipart(fields url.Values, image *File) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range fields[k] {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", err
			}
		}
	}

	if image != nil {
		part, err := w.CreateFormFile("image", image.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(image.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
