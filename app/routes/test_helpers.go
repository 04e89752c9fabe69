package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"griddle/app/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

// stubStore is an AttachmentStore that hands out canned references.
type stubStore struct {
	mutex   sync.Mutex
	uploads int
	deleted []string
}

func (s *stubStore) Upload(ctx context.Context, source interface{}, folder string) (*storage.Attachment, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.uploads++
	return &storage.Attachment{URL: "https://img.test/stub.png", PublicID: "stub-id"}, nil
}

func (s *stubStore) Delete(ctx context.Context, publicID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.deleted = append(s.deleted, publicID)
	return nil
}

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) (*mux.Router, *stubStore) {
	store := &stubStore{}
	router := SetupRoutes(Options{
		DB:           setupTestDB(t),
		Store:        store,
		JWTSecret:    []byte(testSecret),
		UploadFolder: "blog/posts",
	})
	return router, store
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// adminToken registers a fresh admin through the API and logs it in.
func adminToken(t *testing.T, router *mux.Router) string {
	creds := map[string]string{"username": "editor", "password": "hunter22"}

	w := doJSON(t, router, "POST", "/api/admin/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/api/admin/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

// createTestPost creates a post through the API and returns its id.
func createTestPost(t *testing.T, router *mux.Router, token string) string {
	w := doJSON(t, router, "POST", "/api/post", token, map[string]string{
		"title":   "Test Post",
		"content": "This is a test post",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	require.NotEmpty(t, post.ID)
	return post.ID
}
