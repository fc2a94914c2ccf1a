package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/polaroid-compose/internal/compose"
)

func TestNew(t *testing.T) {
	s := New(nil)
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cfg == nil || s.engine == nil {
		t.Fatal("New() did not initialize config and engine")
	}
	if s.engine.Resolver != s.resolver {
		t.Error("engine should share the server's logo resolver")
	}
}

func TestHandleRequest(t *testing.T) {
	tests := []struct {
		name     string
		req      MCPRequest
		wantNil  bool
		wantCode int
	}{
		{"initialize", MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"}, false, 0},
		{"ping", MCPRequest{JSONRPC: "2.0", ID: "ping-1", Method: "ping"}, false, 0},
		{"tools list", MCPRequest{JSONRPC: "2.0", ID: 2, Method: "tools/list"}, false, 0},
		{"initialized notification", MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"}, true, 0},
		{"unknown method", MCPRequest{JSONRPC: "2.0", ID: 3, Method: "nonexistent/method"}, false, -32601},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			resp := s.handleRequest(&req)

			if tt.wantNil {
				if resp != nil {
					t.Errorf("%s should not be answered", tt.req.Method)
				}
				return
			}
			if resp == nil {
				t.Fatal("handleRequest returned nil")
			}
			if resp.ID != tt.req.ID {
				t.Errorf("ID: got %v, want %v", resp.ID, tt.req.ID)
			}
			switch {
			case tt.wantCode == 0 && resp.Error != nil:
				t.Errorf("unexpected error: %v", resp.Error.Message)
			case tt.wantCode != 0 && (resp.Error == nil || resp.Error.Code != tt.wantCode):
				t.Errorf("error: got %+v, want code %d", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestHandleRequest_ToolsListCount(t *testing.T) {
	resp := New(nil).handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(tools) != 4 {
		t.Errorf("Expected 4 tools, got %d", len(tools))
	}
}

func TestHandleInitialize(t *testing.T) {
	s := New(nil)
	resp := s.handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "polaroid-compose" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != Version {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}
}

func TestServe(t *testing.T) {
	s := New(nil)
	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/list"}`,
	}, "\n"))
	var out bytes.Buffer

	if err := s.Serve(in, &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	dec := json.NewDecoder(&out)
	var ids []interface{}
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Error != nil {
			t.Errorf("unexpected error for id %v: %v", resp.ID, resp.Error.Message)
		}
		ids = append(ids, resp.ID)
	}

	want := []interface{}{float64(1), float64(2), float64(3)}
	if len(ids) != len(want) {
		t.Fatalf("responses: got ids %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("response %d: got id %v, want %v", i, ids[i], want[i])
		}
	}
}

// toolResponse is a tools/call response as it arrives on the wire.
type toolResponse struct {
	ID     float64 `json:"id"`
	Result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"result"`
	Error *MCPError `json:"error"`
}

func TestServe_ToolCalls(t *testing.T) {
	s := testServer(t)
	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"polaroid_layout","arguments":{"width":300,"height":200}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"logo_resolve","arguments":{"name":"brand"}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"polaroid_layout","arguments":{}}}`,
	}, "\n"))
	var out bytes.Buffer

	if err := s.Serve(in, &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	dec := json.NewDecoder(&out)
	var responses []toolResponse
	for dec.More() {
		var resp toolResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		responses = append(responses, resp)
	}
	if len(responses) != 3 {
		t.Fatalf("responses: got %d, want 3", len(responses))
	}

	layoutResp := responses[0]
	if layoutResp.Error != nil || len(layoutResp.Result.Content) != 1 {
		t.Fatalf("polaroid_layout: unexpected response %+v", layoutResp)
	}
	var l compose.Layout
	if err := json.Unmarshal([]byte(layoutResp.Result.Content[0].Text), &l); err != nil {
		t.Fatalf("polaroid_layout: failed to decode layout: %v", err)
	}
	if l.Canvas.Width != 80 || l.Canvas.Height != 120 {
		t.Errorf("Canvas: got %v, want 80x120", l.Canvas)
	}
	if l.ForegroundBox.Width != 49 || l.ForegroundBox.Height != 74 {
		t.Errorf("ForegroundBox: got %v, want 49x74", l.ForegroundBox)
	}

	logoResp := responses[1]
	if logoResp.Error != nil || len(logoResp.Result.Content) != 1 {
		t.Fatalf("logo_resolve: unexpected response %+v", logoResp)
	}
	var found LogoResolveResult
	if err := json.Unmarshal([]byte(logoResp.Result.Content[0].Text), &found); err != nil {
		t.Fatalf("logo_resolve: failed to decode result: %v", err)
	}
	if !found.Found || !strings.HasSuffix(found.Path, "brand.png") {
		t.Errorf("logo_resolve: got %+v, want brand.png found", found)
	}

	if errResp := responses[2]; errResp.Error == nil || errResp.Error.Code != -32000 {
		t.Errorf("polaroid_layout without a size: got %+v, want tool error -32000", errResp.Error)
	}
}
