package ethtxhelper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// TestRPCHandler returns result for a single json-rpc call
type TestRPCHandler func(params []json.RawMessage) (interface{}, error)

// TestRPCServer is a minimal json-rpc endpoint used by the tests in place of a real node
type TestRPCServer struct {
	server   *httptest.Server
	handlers map[string]TestRPCHandler
	calls    map[string]int
	lock     sync.Mutex
}

type testRPCRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type testRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type testRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result"`
	Error   *testRPCError   `json:"error,omitempty"`
}

func NewTestRPCServer() *TestRPCServer {
	s := &TestRPCServer{
		handlers: map[string]TestRPCHandler{},
		calls:    map[string]int{},
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))

	return s
}

func (s *TestRPCServer) URL() string {
	return s.server.URL
}

func (s *TestRPCServer) Close() {
	s.server.Close()
}

func (s *TestRPCServer) Handle(method string, handler TestRPCHandler) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.handlers[method] = handler
}

// HandleResult registers handler which always returns the same result
func (s *TestRPCServer) HandleResult(method string, result interface{}) {
	s.Handle(method, func([]json.RawMessage) (interface{}, error) {
		return result, nil
	})
}

func (s *TestRPCServer) Calls(method string) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.calls[method]
}

func (s *TestRPCServer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	var req testRPCRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.lock.Lock()
	handler, exists := s.handlers[req.Method]
	s.calls[req.Method]++
	s.lock.Unlock()

	resp := testRPCResponse{JSONRPC: "2.0", ID: req.ID}

	if !exists {
		resp.Error = &testRPCError{Code: -32601, Message: "method not found: " + req.Method}
	} else if result, err := handler(req.Params); err != nil {
		resp.Error = &testRPCError{Code: -32000, Message: err.Error()}
	} else {
		resp.Result = result
	}

	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(resp)
}
