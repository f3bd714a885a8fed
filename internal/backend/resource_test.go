package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"motoinventory/internal/domain"
)

func TestListDecodesCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/pieces", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Chain","quantity":4}]`))
	}))
	defer srv.Close()

	res := NewResource[domain.Piece](New(srv.URL), "/pieces")
	pieces, err := res.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	require.Equal(t, "Chain", pieces[0].Name)
}

func TestCreateSendsJSON(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	res := NewResource[domain.Client](New(srv.URL), "/clients")
	err := res.Create(context.Background(), map[string]any{"clientType": "Individual"})
	require.NoError(t, err)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "Individual", gotBody["clientType"])
}

func TestUpdateWithImageSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/motorcycles/7", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "CBR500", r.FormValue("model"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "bike.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, []byte("png-bytes"), content)
	}))
	defer srv.Close()

	res := NewResource[domain.Motorcycle](New(srv.URL), "/motorcycles")
	fields := url.Values{}
	fields.Set("model", "CBR500")
	err := res.UpdateWithImage(context.Background(), 7, fields, &File{Name: "bike.png", Content: []byte("png-bytes")})
	require.NoError(t, err)
}

func TestCreateWithImageWithoutFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "Honda", r.FormValue("brand"))
		_, _, err := r.FormFile("image")
		require.Error(t, err)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	res := NewResource[domain.Motorcycle](New(srv.URL), "/motorcycles")
	fields := url.Values{}
	fields.Set("brand", "Honda")
	require.NoError(t, res.CreateWithImage(context.Background(), fields, nil))
}

func TestNonSuccessStatusPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	res := NewResource[domain.Piece](New(srv.URL), "/pieces")
	err := res.Delete(context.Background(), 3)
	require.Error(t, err)
	require.True(t, IsStatus(err, http.StatusInternalServerError))
}

func TestRequestHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewResource[domain.Piece](New(srv.URL), "/pieces")
	_, err := res.List(ctx)
	require.Error(t, err)
}
