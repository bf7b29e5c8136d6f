package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedClient(t *testing.T, headers map[string]string) (*Client, *httpmock.MockTransport) {
	t.Helper()
	tr := httpmock.NewMockTransport()
	c, err := New(Options{
		BaseURL:   "https://upstream.test/v2/",
		Transport: tr,
		Headers:   headers,
	})
	require.NoError(t, err)
	return c, tr
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "not a url"})
	require.Error(t, err)
}

func TestGetJSON_SendsHeadersAndQuery(t *testing.T) {
	c, tr := newMockedClient(t, map[string]string{"Authorization": "Bearer k"})

	tr.RegisterResponderWithQuery(http.MethodGet, "https://upstream.test/v2/animals",
		map[string]string{"limit": "5"},
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer k", req.Header.Get("Authorization"))
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			return httpmock.NewStringResponse(http.StatusOK, `{"ok":true}`), nil
		})

	var out struct {
		OK bool `json:"ok"`
	}
	err := c.GetJSON(context.Background(), "animals", url.Values{"limit": {"5"}}, &out)

	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, 1, tr.GetTotalCallCount())
}

func TestDoJSON_PropagatesRequestID(t *testing.T) {
	c, tr := newMockedClient(t, nil)

	var seen []string
	tr.RegisterResponder(http.MethodGet, "https://upstream.test/v2/animals",
		func(req *http.Request) (*http.Response, error) {
			seen = append(seen, req.Header.Get(chimw.RequestIDHeader))
			return httpmock.NewStringResponse(http.StatusOK, `{}`), nil
		})

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "rid-7")
	require.NoError(t, c.GetJSON(ctx, "animals", nil, nil))
	require.NoError(t, c.GetJSON(context.Background(), "animals", nil, nil))

	require.Len(t, seen, 2)
	assert.Equal(t, "rid-7", seen[0])
	_, err := uuid.Parse(seen[1])
	assert.NoError(t, err, "outside a request a fresh id is generated")
}

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	c, tr := newMockedClient(t, nil)
	tr.RegisterResponder(http.MethodGet, "https://upstream.test/v2/animals",
		httpmock.NewStringResponder(http.StatusUnauthorized, " invalid key \n"))

	err := c.GetJSON(context.Background(), "/animals", nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, "invalid key", httpErr.Body)
}

func TestDoJSON_MalformedJSON(t *testing.T) {
	c, tr := newMockedClient(t, nil)
	tr.RegisterResponder(http.MethodGet, "https://upstream.test/v2/animals",
		httpmock.NewStringResponder(http.StatusOK, `{"animals": [`))

	var out map[string]any
	err := c.GetJSON(context.Background(), "/animals", nil, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal json")
}

func TestDoJSON_RelativeWithoutBaseURL(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)

	err = c.GetJSON(context.Background(), "/animals", nil, nil)
	require.Error(t, err)
}

func TestDoJSON_NilClient(t *testing.T) {
	var c *Client
	err := c.GetJSON(context.Background(), "/animals", nil, nil)
	require.ErrorIs(t, err, ErrNilClient)
}
