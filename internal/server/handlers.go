package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-grid/internal/collage"
	"github.com/ironsheep/image-grid/internal/config"
	"github.com/ironsheep/image-grid/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "grid_compose").
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "err", err)
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Grid Operations
	case "grid_plan":
		return s.handleGridPlan(ctx, args)
	case "grid_compose":
		return s.handleGridCompose(ctx, args)

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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Grid Operation Handlers ===

type gridArgs struct {
	Paths            []string `json:"paths"`
	Pattern          string   `json:"pattern"`
	Rows             int      `json:"rows"`
	Columns          int      `json:"columns"`
	Center           bool     `json:"center"`
	CenterHorizontal bool     `json:"center_horizontal"`
	CenterVertical   bool     `json:"center_vertical"`
	AutoOrient       bool     `json:"auto_orient"`
	Output           string   `json:"output"`
	Background       string   `json:"background"`
	Quality          int      `json:"quality"`
	IncludeImage     bool     `json:"include_image"`
}

// options converts tool arguments into composition options, keeping the
// defaults for anything left out.
func (a gridArgs) options() config.Options {
	opts := config.Default()
	opts.Paths = a.Paths
	opts.Pattern = a.Pattern
	opts.Rows = a.Rows
	opts.Columns = a.Columns
	opts.Center = a.Center
	opts.CenterHorizontal = a.CenterHorizontal
	opts.CenterVertical = a.CenterVertical
	opts.AutoOrient = a.AutoOrient
	if a.Output != "" {
		opts.Output = a.Output
	}
	if a.Background != "" {
		opts.Background = a.Background
	}
	if a.Quality != 0 {
		opts.Quality = a.Quality
	}
	return opts
}

// builder returns a collage builder for opts. The shared cache is cleared
// first since inputs may have changed on disk since the last call.
// Auto-oriented decodes use a throwaway cache so they never mix with the
// server's plain decodes.
func (s *Server) builder(opts config.Options) *collage.Builder {
	s.cache.Clear()
	if opts.AutoOrient {
		return collage.NewBuilder(s.logger, imaging.NewImageCache(imaging.WithAutoOrientation(true)))
	}
	return collage.NewBuilder(s.logger, s.cache)
}

func (s *Server) handleGridPlan(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a gridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts := a.options()
	return s.builder(opts).Plan(ctx, opts)
}

// GridComposeResult is the grid_compose tool response.
type GridComposeResult struct {
	*collage.Result
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
}

func (s *Server) handleGridCompose(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a gridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return nil, fmt.Errorf("output is required")
	}
	opts := a.options()

	res, err := s.builder(opts).Build(ctx, opts)
	if err != nil {
		return nil, err
	}

	out := &GridComposeResult{Result: res}
	if a.IncludeImage {
		out.ImageBase64, out.MimeType, err = imaging.EncodeBase64(opts.Output, res.Canvas(), opts.Quality)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
