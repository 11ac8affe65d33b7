package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/depeter/shutterfolio/internal/contact"
	"github.com/depeter/shutterfolio/internal/content"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(content.Fallback(), "production", zap.NewNop())
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestSanityClientRoundTrip(t *testing.T) {
	_, ts := newTestServer(t)

	client, err := content.NewSanityClient(content.SanityConfig{
		BaseURL: ts.URL,
		Dataset: "production",
	})
	require.NoError(t, err)

	got, err := client.Fetch(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(content.Fallback(), got); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestQuery_UnknownDataset(t *testing.T) {
	_, ts := newTestServer(t)

	client, err := content.NewSanityClient(content.SanityConfig{BaseURL: ts.URL, Dataset: "staging"})
	require.NoError(t, err)

	_, err = client.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestQuery_UnknownTypeReturnsNull(t *testing.T) {
	_, ts := newTestServer(t)

	q := url.QueryEscape(`*[_type == "gallery"]`)
	resp, err := http.Get(ts.URL + "/v2024-01-01/data/query/production?query=" + q)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"result":null`)
}

func TestQuery_MissingQuery(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v2024-01-01/data/query/production")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContact(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := New(nil, "", zap.New(core))
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	msg := contact.Message{Name: "Ada", Email: "ada@example.com", Body: "Are you free in June?"}
	require.NoError(t, contact.NewHTTPSubmitter(ts.URL+"/api/contact").Submit(context.Background(), msg))

	got := s.Messages()
	require.Len(t, got, 1)
	assert.Equal(t, msg, got[0])
	assert.Equal(t, 1, logs.FilterMessage("contact message received").Len())
}

func TestContact_Rejected(t *testing.T) {
	s, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/contact", "application/json",
		strings.NewReader(`{"name":"","email":"nope","body":""}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/contact", "application/json", strings.NewReader(`{`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Empty(t, s.Messages())
}

func TestIndex(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	cat := content.Fallback()
	assert.Contains(t, page, "<h2>Services</h2>")
	for _, c := range cat.Categories()[1:] {
		assert.Contains(t, page, "<h2>"+c+"</h2>")
	}
}

func TestIndex_ImageLinksAreSanitized(t *testing.T) {
	cat := content.Fallback()
	require.GreaterOrEqual(t, len(cat.Projects), 2)
	cat.Projects[0].Image = "javascript:alert(1)"
	cat.Projects[1].Image = "https://cdn.example.com/harbour.jpg"

	ts := httptest.NewServer(New(cat, "production", zap.NewNop()).Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	page := string(body)

	assert.NotContains(t, page, "javascript:")
	assert.Contains(t, page, `href="`+string(templ.FailedSanitizationURL)+`"`)
	assert.Contains(t, page, `href="https://cdn.example.com/harbour.jpg"`)
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ListenAndServe(ctx, "127.0.0.1:0", http.NotFoundHandler(), zap.NewNop())
	}()
	cancel()
	assert.NoError(t, <-done)
}
