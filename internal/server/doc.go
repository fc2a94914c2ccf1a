// Package server implements the MCP (Model Context Protocol) server for the
// compositor.
//
// This package provides a JSON-RPC 2.0 server that exposes layout planning,
// composition and logo resolution to MCP-compatible clients, so a client can
// preview geometry or render single images without running a batch.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Log output goes to stderr or the configured log file, never stdout.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_dimensions: upright width and height of an image file
//   - polaroid_layout: composition geometry for a source size or file
//   - polaroid_compose: render one composition to a file or base64 PNG
//   - logo_resolve: resolve a logo id or name against the logo directory
//
// Every tool except image_dimensions accepts a "config" object whose keys
// override the server's configuration for that call only.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatalf("server: %v", err)
//	}
package server
