package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Resource is a typed view over one REST collection (e.g. /motorcycles).
// Create/Update send JSON; the WithImage variants are explicit multipart
// operations for the image-bearing entities, so no payload shape sniffing is
// needed anywhere.
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.doJSON(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := r.doJSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.path, id), nil, &out)
	return out, err
}

func (r *Resource[T]) Create(ctx context.Context, payload any) error {
	return r.doJSON(ctx, http.MethodPost, r.path, payload, nil)
}

func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) error {
	return r.doJSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), payload, nil)
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.doJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
}

// CreateWithImage posts the record as multipart form data. image may be nil,
// in which case only the scalar fields travel.
func (r *Resource[T]) CreateWithImage(ctx context.Context, fields url.Values, image *File) error {
	return r.doMultipart(ctx, http.MethodPost, r.path, fields, image)
}

// UpdateWithImage puts the record as multipart form data with a fresh image
// file, so the binary is not round-tripped through base64.
func (r *Resource[T]) UpdateWithImage(ctx context.Context, id int64, fields url.Values, image *File) error {
	return r.doMultipart(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), fields, image)
}

func (r *Resource[T]) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("backend: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return r.do(req, out)
}

func (r *Resource[T]) doMultipart(ctx context.Context, method, path string, fields url.Values, image *File) error {
	body, contentType, err := encodeMultipart(fields, image)
	if err != nil {
		return fmt.Errorf("backend: encode %s %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return r.do(req, nil)
}

func (r *Resource[T]) do(req *http.Request, out any) error {
	resp, err := r.client.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		buf, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       string(buf),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
