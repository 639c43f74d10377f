package handlers_test

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var methodLabel = regexp.MustCompile(`method="([^"]*)"`)

func TestMetricsLabelsAfterMixedTraffic(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.signup(t, "carol")

	for i := 0; i < 5; i++ {
		resp, _ := ts.do(t, http.MethodGet, "/api/widgets", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = ts.do(t, http.MethodDelete, "/api/widgets/999999", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = ts.do(t, http.MethodPost, "/api/widgets/reorder", token, "{")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	resp, body := ts.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	text := string(body)
	assert.Contains(t, text, `method="GET",route="/api/widgets"`)
	assert.Contains(t, text, `method="DELETE",route="/api/widgets/:id"`)
	assert.Contains(t, text, `method="POST",route="/api/widgets/reorder"`)

	known := map[string]bool{
		http.MethodGet: true, http.MethodPost: true, http.MethodPatch: true,
		http.MethodPut: true, http.MethodDelete: true, http.MethodHead: true,
		http.MethodOptions: true,
	}
	for _, m := range methodLabel.FindAllStringSubmatch(text, -1) {
		assert.True(t, known[m[1]], "unexpected method label %q", m[1])
	}
}
