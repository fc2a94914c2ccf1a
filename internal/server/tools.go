package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// configProperty lets a tool call override any configuration key for that
// call only.
var configProperty = map[string]interface{}{
	"type":        "object",
	"description": "Optional configuration overrides, using the same keys as the config file (e.g. {\"canvas\": {\"width\": 1200}, \"logo\": {\"enabled\": true}})",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_dimensions",
			Description: "Get the upright width and height of an image file, after EXIF orientation is applied.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "polaroid_layout",
			Description: "Compute the composition geometry for a source of the given size without rendering: safe-crop rectangle, background intermediate, foreground box and position, margin, overlay height and bottom band. Pass either a path or width and height.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image; its dimensions are used",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Source width in pixels, used when path is omitted",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Source height in pixels, used when path is omitted",
					},
					"config": configProperty,
				},
			},
		},
		{
			Name:        "polaroid_compose",
			Description: "Compose one source photo onto the configured canvas. Writes to output_path when given (format from its extension: jpg, png or webp), otherwise returns the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write the composition to",
					},
					"guides": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw layout guides over the result. Default false",
						"default":     false,
					},
					"config": configProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "logo_resolve",
			Description: "Resolve a logo the way a composition would: by one-based id (1 means no logo, 2 the first list entry) or by file name with fuzzy matching. Returns the resolved path and the candidate list.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "integer",
						"description": "One-based logo id",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Logo file name; takes precedence over id",
					},
					"config": configProperty,
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
