// Package server implements an MCP (Model Context Protocol) server that exposes
// grid composition as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Grid Operations:
//   - grid_plan: Resolve the grid shape, cell size and every offset
//   - grid_compose: Write the composed grid image
//
// # Image Caching
//
// image_load, image_dimensions and grid_plan share one in-memory cache keyed
// by path. grid_compose clears it first so that it always sees the files as
// they are on disk.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "grid 2x2 has 4 cells, not enough for 5 images"
//
// # Usage
//
//	srv := server.New(logger)
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    logger.Fatal(err)
//	}
package server
