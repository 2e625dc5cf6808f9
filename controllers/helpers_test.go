package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rtu-kota/canteen-api/store"
	"github.com/stretchr/testify/require"
)

// failingStore fails every call with err
type failingStore struct {
	err      error
	creates  int
	lists    int
	initDone bool
}

func (f *failingStore) Create(_ context.Context, collection string, _ any) (string, error) {
	f.creates++
	return "", &store.Error{Op: "create", Collection: collection, Err: f.err}
}

func (f *failingStore) List(_ context.Context, collection string, _ store.Filter) ([]store.Document, error) {
	f.lists++
	return nil, &store.Error{Op: "list", Collection: collection, Err: f.err}
}

func (f *failingStore) Initialized() bool {
	return f.initDone
}

func (f *failingStore) CollectionNames(context.Context) ([]string, error) {
	return nil, f.err
}

var errConnectionRefused = errors.New("server selection error: connection refused")

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		encoded, _ := json.Marshal(b)
		buf = bytes.NewBuffer(encoded)
	}

	req, _ := http.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "body: %s", w.Body.String())
	return response
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var response []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "body: %s", w.Body.String())
	return response
}

// detailFields collects field -> constraint from a 422 response
func detailFields(t *testing.T, response map[string]interface{}) map[string]string {
	t.Helper()
	details, ok := response["detail"].([]interface{})
	require.True(t, ok, "detail should be a list, got %T", response["detail"])

	fields := map[string]string{}
	for _, d := range details {
		fe := d.(map[string]interface{})
		fields[fe["field"].(string)] = fe["constraint"].(string)
	}
	return fields
}
