package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/polaroid-compose/internal/batch"
	"github.com/ironsheep/polaroid-compose/internal/compose"
	"github.com/ironsheep/polaroid-compose/internal/config"
	"github.com/ironsheep/polaroid-compose/internal/imaging"
	"github.com/ironsheep/polaroid-compose/internal/layout"
	"github.com/ironsheep/polaroid-compose/internal/logo"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "polaroid_compose").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}
	switch name {
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "polaroid_layout":
		return s.handleLayout(args)
	case "polaroid_compose":
		return s.handleCompose(args)
	case "logo_resolve":
		return s.handleLogoResolve(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// session resolves the configuration for one call. Without overrides the
// server's own engine, and so its logo cache, is reused.
func (s *Server) session(overrides json.RawMessage) (*config.Config, *compose.Engine, error) {
	if len(overrides) == 0 || string(overrides) == "null" {
		return s.cfg, s.engine, nil
	}
	cfg, err := s.cfg.WithOverrides(overrides)
	if err != nil {
		return nil, nil, err
	}
	return cfg, compose.NewEngine(cfg.Resolver()), nil
}

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	return imaging.GetDimensions(a.Path)
}

type layoutArgs struct {
	Path   string          `json:"path"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Config json.RawMessage `json:"config"`
}

func (s *Server) handleLayout(args json.RawMessage) (interface{}, error) {
	var a layoutArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg, _, err := s.session(a.Config)
	if err != nil {
		return nil, err
	}
	params, err := cfg.ComposeParams()
	if err != nil {
		return nil, err
	}

	src := layout.Size{Width: a.Width, Height: a.Height}
	if a.Path != "" {
		dims, err := imaging.GetDimensions(a.Path)
		if err != nil {
			return nil, err
		}
		src = layout.Size{Width: dims.Width, Height: dims.Height}
	}
	if !src.Valid() {
		return nil, errors.New("path or positive width and height are required")
	}
	return compose.Plan(src, params), nil
}

type composeArgs struct {
	Path       string          `json:"path"`
	OutputPath string          `json:"output_path"`
	Guides     bool            `json:"guides"`
	Config     json.RawMessage `json:"config"`
}

// ComposeResult is returned by polaroid_compose.
type ComposeResult struct {
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Layout      compose.Layout `json:"layout"`
	Overlay     []int          `json:"overlay,omitempty"`
	OutputPath  string         `json:"output_path,omitempty"`
	MimeType    string         `json:"mime_type,omitempty"`
	ImageBase64 string         `json:"image_base64,omitempty"`
}

func (s *Server) handleCompose(args json.RawMessage) (interface{}, error) {
	var a composeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	cfg, engine, err := s.session(a.Config)
	if err != nil {
		return nil, err
	}
	params, err := cfg.ComposeParams()
	if err != nil {
		return nil, err
	}

	src, err := imaging.Open(a.Path)
	if err != nil {
		return nil, err
	}
	res := engine.ComposeResult(src, params)
	out := res.Image
	if a.Guides {
		out = compose.Guides(out, res.Layout, res.Overlay)
	}

	result := &ComposeResult{
		Width:  out.Bounds().Dx(),
		Height: out.Bounds().Dy(),
		Layout: res.Layout,
	}
	if !res.Overlay.Empty() {
		o := res.Overlay
		result.Overlay = []int{o.Min.X, o.Min.Y, o.Max.X, o.Max.Y}
	}

	if a.OutputPath != "" {
		if err := batch.Save(a.OutputPath, out, cfg.JPEGQuality); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
		return result, nil
	}

	var buf bytes.Buffer
	if err := batch.Encode(&buf, out, batch.FormatPNG, 0); err != nil {
		return nil, err
	}
	result.MimeType = "image/png"
	result.ImageBase64 = base64.StdEncoding.EncodeToString(buf.Bytes())
	return result, nil
}

type logoResolveArgs struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

// LogoResolveResult is returned by logo_resolve.
type LogoResolveResult struct {
	Found      bool     `json:"found"`
	Path       string   `json:"path,omitempty"`
	Candidates []string `json:"candidates"`
}

func (s *Server) handleLogoResolve(args json.RawMessage) (interface{}, error) {
	var a logoResolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Name == "" && a.ID == 0 {
		return nil, errors.New("id or name is required")
	}
	_, engine, err := s.session(a.Config)
	if err != nil {
		return nil, err
	}

	path, ok := engine.Resolver.Path(logo.Item{ID: a.ID, Name: a.Name})
	candidates := engine.Resolver.Candidates()
	if candidates == nil {
		candidates = []string{}
	}
	return &LogoResolveResult{Found: ok, Path: path, Candidates: candidates}, nil
}
