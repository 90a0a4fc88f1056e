package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ApiMock is an httptest server that replays canned JSON responses keyed by
// method and path. A path segment of "*" matches any value.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	responses map[string]cannedResponse
	queries   map[string][]map[string]string
}

type cannedResponse struct {
	status int
	body   string
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		responses: map[string]cannedResponse{},
		queries:   map[string][]map[string]string{},
	}
}

// Start launches the server. It is safe to call more than once.
func (a *ApiMock) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.server != nil {
		return
	}
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
}

// Close stops the server.
func (a *ApiMock) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.server != nil {
		a.server.Close()
		a.server = nil
	}
}

func (a *ApiMock) GetUrl() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.server.URL
}

func (a *ApiMock) serve(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	key := r.Method + r.URL.Path
	query := map[string]string{}
	for name, values := range r.URL.Query() {
		query[name] = values[0]
	}
	a.queries[key] = append(a.queries[key], query)
	canned, ok := a.match(r.Method, r.URL.Path)
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":true,"message":"Record not found"}`))
		return
	}
	w.WriteHeader(canned.status)
	_, _ = w.Write([]byte(canned.body))
}

// SetResponse registers the status and raw JSON body returned for method and path.
func (a *ApiMock) SetResponse(method, path string, status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = cannedResponse{status: status, body: body}
}

// SetJSONResponse registers a response body marshalled from v.
func (a *ApiMock) SetJSONResponse(method, path string, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	a.SetResponse(method, path, status, string(body))
	return nil
}

// RequestCount returns how many requests reached method and path.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queries[method+path])
}

// GetRequestQueries returns the query parameters of the index-th request.
func (a *ApiMock) GetRequestQueries(method, path string, index int) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	received := a.queries[method+path]
	if index < 0 || index >= len(received) {
		return nil
	}
	return received[index]
}

// ClearResponses forgets every canned response and recorded request.
func (a *ApiMock) ClearResponses() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses = map[string]cannedResponse{}
	a.queries = map[string][]map[string]string{}
}

func (a *ApiMock) match(method, path string) (cannedResponse, bool) {
	if canned, ok := a.responses[method+path]; ok {
		return canned, true
	}
	for key, canned := range a.responses {
		if !strings.HasPrefix(key, method) {
			continue
		}
		if matchPath(strings.TrimPrefix(key, method), path) {
			return canned, true
		}
	}
	return cannedResponse{}, false
}

func matchPath(pattern, path string) bool {
	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
