package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// gridProperties are the input properties shared by grid_plan and grid_compose.
func gridProperties() map[string]interface{} {
	return map[string]interface{}{
		"paths": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Absolute paths of the input images, in placement order",
		},
		"pattern": map[string]interface{}{
			"type":        "string",
			"description": "Glob pattern; its sorted matches are placed after 'paths'",
		},
		"rows": map[string]interface{}{
			"type":        "integer",
			"description": "Number of rows. Omit or 0 to derive from the image count",
			"minimum":     0,
		},
		"columns": map[string]interface{}{
			"type":        "integer",
			"description": "Number of columns. Omit or 0 to derive from the image count",
			"minimum":     0,
		},
		"center": map[string]interface{}{
			"type":        "boolean",
			"description": "Center images in their cells on both axes",
		},
		"center_horizontal": map[string]interface{}{
			"type":        "boolean",
			"description": "Center images horizontally in their cells",
		},
		"center_vertical": map[string]interface{}{
			"type":        "boolean",
			"description": "Center images vertically in their cells",
		},
		"auto_orient": map[string]interface{}{
			"type":        "boolean",
			"description": "Apply EXIF orientation when decoding",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	composeProps := gridProperties()
	composeProps["output"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path of the image to write; the extension (.png, .jpg, .jpeg, .bmp) selects the format",
	}
	composeProps["background"] = map[string]interface{}{
		"type":        "string",
		"description": "Canvas color as #RRGGBB or #RRGGBBAA. Default transparent",
	}
	composeProps["quality"] = map[string]interface{}{
		"type":        "integer",
		"description": "JPEG quality 1-100. Default 95",
		"minimum":     1,
		"maximum":     100,
	}
	composeProps["include_image"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Also return the composed image as base64",
		"default":     false,
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file size.",
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
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
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

		// Grid Operations
		{
			Name:        "grid_plan",
			Description: "Compute how images would be arranged on a grid (shape, cell size, canvas size and each image's offset) without writing anything.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": gridProperties(),
			},
		},
		{
			Name:        "grid_compose",
			Description: "Combine images into a single grid image and write it to 'output'. Every cell is as large as the largest input; images keep their native size. Fails without writing if explicit rows x columns cannot hold every image.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": composeProps,
				"required":   []string{"output"},
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
