package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Protocol-Lattice/gqlparse/ast"
	"github.com/Protocol-Lattice/gqlparse/astjson"
	"github.com/Protocol-Lattice/gqlparse/config"
	"github.com/Protocol-Lattice/gqlparse/lexer"
	"github.com/Protocol-Lattice/gqlparse/parser"
)

// GraphQLRequest carries a single GraphQL document.
type GraphQLRequest struct {
	Query string `json:"query"`
}

// BatchRequest carries several independent documents.
type BatchRequest struct {
	Documents []string `json:"documents"`
}

// BatchResult is the outcome for one document of a batch. Exactly one of
// Document and Error is set.
type BatchResult struct {
	Document astjson.Object `json:"document,omitempty"`
	Error    astjson.Object `json:"error,omitempty"`
}

// Handler serves lexing and parsing over HTTP and WebSocket.
type Handler struct {
	conf     config.Config
	log      *logrus.Entry
	cache    *lru.Cache[string, *ast.Document] // keyed by documentKey, nil when caching is disabled
	inflight singleflight.Group
	upgrader websocket.Upgrader
}

// New creates a Handler. A cache size of zero disables the document cache.
func New(conf config.Config, logger *logrus.Logger) (*Handler, error) {
	h := &Handler{
		conf: conf,
		log:  logger.WithField("prefix", "handler"),
	}
	if conf.CacheSize > 0 {
		cache, err := lru.New[string, *ast.Document](conf.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("handler: creating document cache: %w", err)
		}
		h.cache = cache
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h, nil
}

// Router returns the routes of the service.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.requestLogger)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/parse", h.Parse).Methods(http.MethodPost)
	v1.HandleFunc("/tokens", h.Tokens).Methods(http.MethodPost)
	v1.HandleFunc("/batch", h.Batch).Methods(http.MethodPost)
	v1.HandleFunc("/stream", h.Stream).Methods(http.MethodGet)
	return r
}

// documentKey identifies a source in the cache and among in-flight parses.
func documentKey(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

// parse lexes and parses src, consulting the document cache first. Concurrent
// misses for the same source share one parse. Parsed documents are immutable,
// so one tree may be handed to any number of requests. Sources longer than
// CacheMaxSourceBytes are parsed every time.
func (h *Handler) parse(src string) (*ast.Document, error) {
	key := documentKey(src)
	cacheable := h.cache != nil && len(src) <= h.conf.CacheMaxSourceBytes
	if cacheable {
		if doc, ok := h.cache.Get(key); ok {
			return doc, nil
		}
	}
	v, err, _ := h.inflight.Do(key, func() (interface{}, error) {
		doc, err := parser.New(lexer.Tokenize(src), parser.MaxDepth(h.conf.MaxDepth)).ParseDocument()
		if err != nil {
			return nil, err
		}
		if cacheable {
			h.cache.Add(key, doc)
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ast.Document), nil
}

// Health reports that the service is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Parse handles POST /v1/parse.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	var req GraphQLRequest
	if !h.decode(w, r, &req) {
		return
	}
	doc, err := h.parse(req.Query)
	if err != nil {
		h.logger(r).WithError(err).Debug("Rejected document")
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": astjson.Error(err)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"document": astjson.Document(doc)})
}

// Tokens handles POST /v1/tokens. Lexing never fails; illegal characters
// show up as ILLEGAL tokens.
func (h *Handler) Tokens(w http.ResponseWriter, r *http.Request) {
	var req GraphQLRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tokens": astjson.Tokens(lexer.Tokenize(req.Query))})
}

// Batch handles POST /v1/batch. Documents are parsed concurrently and the
// results keep the order of the request.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !h.decode(w, r, &req) {
		return
	}

	results := make([]BatchResult, len(req.Documents))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(h.conf.BatchConcurrency)
	for i, src := range req.Documents {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := h.parse(src)
			if err != nil {
				results[i].Error = astjson.Error(err)
				return nil
			}
			results[i].Document = astjson.Document(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger(r).WithError(err).Warn("Batch aborted")
		http.Error(w, "batch aborted", http.StatusServiceUnavailable)
		return
	}

	var errs *multierror.Error
	for i, res := range results {
		if res.Error != nil {
			errs = multierror.Append(errs, fmt.Errorf("document %d: %v", i, res.Error["message"]))
		}
	}
	resp := map[string]any{"results": results}
	if err := errs.ErrorOrNil(); err != nil {
		h.logger(r).WithField("failed", errs.Len()).Debug("Batch finished with errors")
		resp["error"] = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Stream handles GET /v1/stream. Every text frame received is parsed as a
// document and answered with one JSON frame.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger(r).WithError(err).Warn("Unable to upgrade to websocket")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.conf.MaxBodyBytes)

	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger(r).WithError(err).Warn("Stream closed unexpectedly")
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		var payload any
		if doc, err := h.parse(string(msg)); err != nil {
			payload = map[string]any{"error": astjson.Error(err)}
		} else {
			payload = map[string]any{"document": astjson.Document(doc)}
		}
		out, err := json.Marshal(payload)
		if err != nil {
			h.logger(r).WithError(err).Error("Failed to encode stream result")
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			h.logger(r).WithError(err).Warn("Failed to write stream result")
			return
		}
	}
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.conf.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range h.conf.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// decode reads a size-limited JSON body into v. On failure it writes the
// error response and returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.conf.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "unable to read body", http.StatusBadRequest)
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	out, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(out)
}
