package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()

	SuccessWithMeta(rec, http.StatusOK, "ok", []string{"a"}, &Meta{Page: 2, Limit: 10, Total: 11, TotalPages: 2})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(2), meta["total_pages"])
}

func TestRedirect(t *testing.T) {
	rec := httptest.NewRecorder()

	Redirect(rec, "/api/v1/blog/my-posts")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/v1/blog/my-posts", rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), `"redirect_to":"/api/v1/blog/my-posts"`)
}

func TestErrorHelpersDefaultMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	Conflict(rec, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Conflict"`)

	rec = httptest.NewRecorder()
	NotFound(rec, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
