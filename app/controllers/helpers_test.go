package controllers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"griddle/app/models"
	"griddle/app/repositories"
	"griddle/app/services"
	"griddle/app/storage"

	"github.com/stretchr/testify/assert"
)

func TestClientIdentity(t *testing.T) {
	t.Run("remote addr host", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/post/x/like", nil)
		req.RemoteAddr = "203.0.113.7:54321"
		assert.Equal(t, "203.0.113.7", clientIdentity(req))
	})

	t.Run("forwarded-for wins", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/post/x/like", nil)
		req.RemoteAddr = "10.0.0.1:80"
		req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
		assert.Equal(t, "198.51.100.4", clientIdentity(req))
	})
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{repositories.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: title", models.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: you already liked this post", models.ErrDuplicateVote), http.StatusBadRequest},
		{repositories.ErrAlreadyExists, http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: boom", storage.ErrUpload), http.StatusBadGateway},
		{fmt.Errorf("%w: boom", storage.ErrDelete), http.StatusBadGateway},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, errorStatus(tt.err), tt.err.Error())
	}
}

func TestParsePostRequestJSON(t *testing.T) {
	t.Run("plain fields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/post",
			strings.NewReader(`{"title":"T","subtitle":"S","content":"C"}`))
		req.Header.Set("Content-Type", "application/json")

		input, intent, err := parsePostRequest(req)
		assert.NoError(t, err)
		assert.Equal(t, services.PostInput{Title: "T", Subtitle: "S", Content: "C"}, input)
		assert.Equal(t, services.NoImageChange(), intent)
	})

	t.Run("imageUrl becomes an upload intent", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/post",
			strings.NewReader(`{"title":"T","content":"C","imageUrl":"https://pic/x.png"}`))
		req.Header.Set("Content-Type", "application/json")

		_, intent, err := parsePostRequest(req)
		assert.NoError(t, err)
		assert.Equal(t, services.UploadFromURL("https://pic/x.png"), intent)
	})

	t.Run("coverImage string becomes an upload intent", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/post/x",
			strings.NewReader(`{"coverImage":"data:image/png;base64,AAAA"}`))
		req.Header.Set("Content-Type", "application/json")

		_, intent, err := parsePostRequest(req)
		assert.NoError(t, err)
		assert.Equal(t, services.UploadFromURL("data:image/png;base64,AAAA"), intent)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/post", strings.NewReader("{nope"))
		req.Header.Set("Content-Type", "application/json")

		_, _, err := parsePostRequest(req)
		assert.Error(t, err)
	})
}

func TestParsePostRequestMultipart(t *testing.T) {
	buildForm := func(t *testing.T, withFile bool, fields map[string]string) *http.Request {
		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		for k, v := range fields {
			assert.NoError(t, form.WriteField(k, v))
		}
		if withFile {
			part, err := form.CreateFormFile("coverImage", "cover.png")
			assert.NoError(t, err)
			_, err = part.Write([]byte("png bytes"))
			assert.NoError(t, err)
		}
		assert.NoError(t, form.Close())

		req := httptest.NewRequest("POST", "/api/post", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		return req
	}

	t.Run("file upload", func(t *testing.T) {
		req := buildForm(t, true, map[string]string{"title": "T", "content": "C"})

		input, intent, err := parsePostRequest(req)
		assert.NoError(t, err)
		assert.Equal(t, "T", input.Title)
		assert.NotEqual(t, services.NoImageChange(), intent)
	})

	t.Run("imageUrl field without file", func(t *testing.T) {
		req := buildForm(t, false, map[string]string{
			"title": "T", "content": "C", "imageUrl": "https://pic/y.png",
		})

		_, intent, err := parsePostRequest(req)
		assert.NoError(t, err)
		assert.Equal(t, services.UploadFromURL("https://pic/y.png"), intent)
	})

	t.Run("no image at all", func(t *testing.T) {
		req := buildForm(t, false, map[string]string{"title": "T", "content": "C"})

		_, intent, err := parsePostRequest(req)
		assert.NoError(t, err)
		assert.Equal(t, services.NoImageChange(), intent)
	})
}
