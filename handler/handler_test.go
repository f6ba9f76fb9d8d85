package handler

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/gqlparse/config"
)

func newTestServer(t *testing.T, modify func(*config.Config)) (*Handler, *httptest.Server, *logtest.Hook) {
	t.Helper()
	conf := config.Default
	if modify != nil {
		modify(&conf)
	}
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h, err := New(conf, logger)
	require.NoError(t, err)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return h, srv, hook
}

func post(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf []byte
	switch b := body.(type) {
	case string:
		buf = []byte(b)
	default:
		var err error
		buf, err = json.Marshal(b)
		require.NoError(t, err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestHealth(t *testing.T) {
	_, srv, _ := newTestServer(t, nil)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestParse(t *testing.T) {
	_, srv, _ := newTestServer(t, nil)
	resp, out := post(t, srv.URL+"/v1/parse", GraphQLRequest{Query: `enum Platform { Web iOS Android }`})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := out["document"].(map[string]any)
	assert.Equal(t, "Document", doc["kind"])
	defs := doc["definitions"].([]any)
	require.Len(t, defs, 1)
	enum := defs[0].(map[string]any)
	assert.Equal(t, "EnumTypeDefinition", enum["kind"])
	assert.Equal(t, "Platform", enum["name"])
	assert.Len(t, enum["values"], 3)
}

func TestParseRejectsInvalidDocument(t *testing.T) {
	_, srv, _ := newTestServer(t, nil)

	resp, out := post(t, srv.URL+"/v1/parse", GraphQLRequest{Query: `schema {}`})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"message": "unexpected token SYMBOL(})",
		"token":   map[string]any{"type": "SYMBOL", "value": "}"},
	}, out["error"])

	resp, out = post(t, srv.URL+"/v1/parse", GraphQLRequest{Query: `{ a`})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, map[string]any{"message": "unexpected end of input", "token": nil}, out["error"])
}

func TestParseBadRequests(t *testing.T) {
	_, srv, _ := newTestServer(t, func(c *config.Config) { c.MaxBodyBytes = 64 })

	resp, _ := post(t, srv.URL+"/v1/parse", "not-json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(t, srv.URL+"/v1/parse", GraphQLRequest{Query: "{ " + strings.Repeat("field ", 20) + "}"})
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	get, err := http.Get(srv.URL + "/v1/parse")
	require.NoError(t, err)
	get.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, get.StatusCode)
}

func TestTokens(t *testing.T) {
	_, srv, _ := newTestServer(t, nil)
	resp, out := post(t, srv.URL+"/v1/tokens", GraphQLRequest{Query: `type A @`})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{
		map[string]any{"type": "KEYWORD", "value": "type"},
		map[string]any{"type": "IDENT", "value": "A"},
		map[string]any{"type": "SYMBOL", "value": "@"},
	}, out["tokens"])
}

func TestBatchKeepsRequestOrder(t *testing.T) {
	_, srv, _ := newTestServer(t, func(c *config.Config) { c.BatchConcurrency = 2 })
	docs := []string{`{ a }`, `{ }`, `scalar Date`, `type T { f: Int }`, `directive @d on`}
	resp, out := post(t, srv.URL+"/v1/batch", BatchRequest{Documents: docs})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	results := out["results"].([]any)
	require.Len(t, results, len(docs))
	failed := map[int]bool{1: true, 4: true}
	for i, r := range results {
		res := r.(map[string]any)
		if failed[i] {
			assert.Contains(t, res, "error", "document %d", i)
			assert.NotContains(t, res, "document", "document %d", i)
			continue
		}
		assert.NotContains(t, res, "error", "document %d", i)
		assert.Equal(t, "Document", res["document"].(map[string]any)["kind"])
	}

	scalar := results[2].(map[string]any)["document"].(map[string]any)["definitions"].([]any)[0].(map[string]any)
	assert.Equal(t, "Date", scalar["name"])

	summary, ok := out["error"].(string)
	require.True(t, ok)
	assert.Contains(t, summary, "2 errors occurred")
	assert.Contains(t, summary, "document 1: unexpected token SYMBOL(})")
	assert.Contains(t, summary, "document 4: unexpected end of input")
}

func TestBatchWithoutErrors(t *testing.T) {
	_, srv, _ := newTestServer(t, nil)
	resp, out := post(t, srv.URL+"/v1/batch", BatchRequest{Documents: []string{`{ a }`, `{ b }`}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, out, "error")
	assert.Len(t, out["results"], 2)
}

func TestDocumentCache(t *testing.T) {
	h, srv, _ := newTestServer(t, func(c *config.Config) { c.CacheSize = 2 })

	for i := 0; i < 3; i++ {
		resp, _ := post(t, srv.URL+"/v1/parse", GraphQLRequest{Query: `{ a }`})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 1, h.cache.Len())

	first, err := h.parse(`{ a }`)
	require.NoError(t, err)
	second, err := h.parse(`{ a }`)
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = h.parse(`{ }`)
	require.Error(t, err)
	assert.Equal(t, 1, h.cache.Len())

	for _, src := range []string{`{ b }`, `{ c }`} {
		_, err := h.parse(src)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, h.cache.Len())
	assert.False(t, h.cache.Contains(documentKey(`{ a }`)))
	assert.True(t, h.cache.Contains(documentKey(`{ c }`)))
}

func TestDocumentCacheSkipsLargeSources(t *testing.T) {
	h, _, _ := newTestServer(t, func(c *config.Config) { c.CacheMaxSourceBytes = 8 })

	_, err := h.parse(`{ a }`)
	require.NoError(t, err)
	large := `{ abcdefgh }`
	first, err := h.parse(large)
	require.NoError(t, err)
	second, err := h.parse(large)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, h.cache.Len())
	assert.True(t, h.cache.Contains(documentKey(`{ a }`)))
	assert.False(t, h.cache.Contains(documentKey(large)))
}

func TestDocumentKey(t *testing.T) {
	assert.Equal(t, documentKey(`{ a }`), documentKey(`{ a }`))
	assert.NotEqual(t, documentKey(`{ a }`), documentKey(`{ b }`))
	assert.Len(t, documentKey(strings.Repeat("x", 1<<20)), 64)
}

func TestParseRejectsDeepNesting(t *testing.T) {
	_, srv, _ := newTestServer(t, nil)
	deep := "{ f(a: " + strings.Repeat("[", int(config.Default.MaxBodyBytes)-40) + ") }"
	body := `{"query":"` + deep + `"}`
	require.Less(t, int64(len(body)), config.Default.MaxBodyBytes)

	resp, out := post(t, srv.URL+"/v1/parse", body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"message": "unexpected token SYMBOL([)",
		"token":   map[string]any{"type": "SYMBOL", "value": "["},
	}, out["error"])

	resp, out = post(t, srv.URL+"/v1/batch", BatchRequest{Documents: []string{deep[:1<<16] + ") }", `{ a }`}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	results := out["results"].([]any)
	require.Len(t, results, 2)
	assert.Contains(t, results[0], "error")
	assert.Contains(t, results[1], "document")

	health, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}

func TestParseHonoursConfiguredDepth(t *testing.T) {
	_, srv, _ := newTestServer(t, func(c *config.Config) { c.MaxDepth = 2 })

	resp, _ := post(t, srv.URL+"/v1/parse", GraphQLRequest{Query: `{ a { b } }`})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, out := post(t, srv.URL+"/v1/parse", GraphQLRequest{Query: `{ a { b { c } } }`})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, map[string]any{"type": "SYMBOL", "value": "{"}, out["error"].(map[string]any)["token"])
}

func TestDocumentCacheDisabled(t *testing.T) {
	h, srv, _ := newTestServer(t, func(c *config.Config) { c.CacheSize = 0 })
	assert.Nil(t, h.cache)

	resp, _ := post(t, srv.URL+"/v1/parse", GraphQLRequest{Query: `{ a }`})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	first, err := h.parse(`{ a }`)
	require.NoError(t, err)
	second, err := h.parse(`{ a }`)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestRequestID(t *testing.T) {
	_, srv, hook := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	id := resp.Header.Get(RequestIDHeader)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, id, entry.Data["request_id"])
	assert.Equal(t, "handler", entry.Data["prefix"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "caller-id")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "caller-id", resp.Header.Get(RequestIDHeader))
}

func TestStream(t *testing.T) {
	_, srv, _ := newTestServer(t, nil)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/stream"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() map[string]any {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		var out map[string]any
		require.NoError(t, json.Unmarshal(msg, &out))
		return out
	}

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`query Q { a }`)))
	out := read()
	assert.Equal(t, "Document", out["document"].(map[string]any)["kind"])

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`extend type Q @k`)))
	out = read()
	assert.Equal(t, map[string]any{
		"message": "unexpected token KEYWORD(extend)",
		"token":   map[string]any{"type": "KEYWORD", "value": "extend"},
	}, out["error"])

	deep := "{ f(a: " + strings.Repeat("[", 1<<16) + ") }"
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(deep)))
	out = read()
	assert.Equal(t, map[string]any{"type": "SYMBOL", "value": "["}, out["error"].(map[string]any)["token"])

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{ a }`)))
	out = read()
	assert.Equal(t, "Document", out["document"].(map[string]any)["kind"])

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
}

func TestStreamRejectsForeignOrigin(t *testing.T) {
	_, srv, _ := newTestServer(t, func(c *config.Config) {
		c.AllowedOrigins = []string{"http://allowed.example"}
	})
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/stream"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://allowed.example"}})
	require.NoError(t, err)
	conn.Close()
}
