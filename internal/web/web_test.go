package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range []string{PageList, PageAdd, PageEdit, PageNotFound} {
		assert.Contains(t, r.pages, page)
	}
	assert.NotContains(t, r.pages, "layout")
}

func TestRender_WritesStatusAndLayout(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = r.Render(w, http.StatusNotFound, PageNotFound, struct{ Message string }{Message: "No pet with id 9."})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<title>Not found</title>")
	assert.Contains(t, w.Body.String(), "No pet with id 9.")
}

type option struct {
	Value   string
	Label   string
	Checked bool
}

type addData struct {
	Values  map[string]string
	Errors  map[string]string
	Species []option
}

func TestRender_PagesAreIndependent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Render(w, http.StatusOK, PageAdd, addData{Values: map[string]string{}}))

	assert.Contains(t, w.Body.String(), "<title>Add a pet</title>")
	assert.NotContains(t, w.Body.String(), "Not found")
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = r.Render(w, http.StatusOK, "missing", nil)

	require.Error(t, err)
	assert.Equal(t, 0, w.Body.Len())
}
