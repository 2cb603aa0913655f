package tools

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool definitions with explicit input schemas. Range checks (negative
// price or quantity) live in the service so every transport enforces them.

var addItemTool = &mcp.Tool{
	Name:        "add_item",
	Description: "Add a new clothing item to inventory.",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":        {Type: "string", Description: "Name of the clothing item"},
			"category":    {Type: "string", Description: "Category (e.g. T-Shirts, Jeans, Dresses)"},
			"price":       {Type: "number", Description: "Price of the item"},
			"description": {Type: "string", Description: "Item description (optional)"},
			"sizes": {
				Type:                 "object",
				Description:          `Sizes and quantities (e.g. {"S": 10, "M": 15}); defaults to {"S": 0, "M": 0, "L": 0}`,
				AdditionalProperties: &jsonschema.Schema{Type: "integer"},
			},
			"id": {Type: "integer", Description: "Explicit item id; omit to auto-assign"},
		},
		Required: []string{"name", "category", "price"},
	},
}

var getInventoryTool = &mcp.Tool{
	Name:        "get_inventory",
	Description: "Get all clothing items in inventory with sizes and quantities.",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"limit":  {Type: "integer", Description: "Maximum number of items to return"},
			"offset": {Type: "integer", Description: "Number of items to skip"},
		},
	},
	Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
}

var getItemByIDTool = &mcp.Tool{
	Name:        "get_item_by_id",
	Description: "Get details of a specific item by ID.",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id": {Type: "integer", Description: "ID of the item to retrieve"},
		},
		Required: []string{"id"},
	},
	Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
}

var searchItemsTool = &mcp.Tool{
	Name:        "search_items",
	Description: "Search items by name or category (case-insensitive substring match).",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {Type: "string", Description: "Search query to match against item names or categories"},
			"limit": {Type: "integer", Description: "Maximum number of matches to return"},
		},
		Required: []string{"query"},
	},
	Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
}

var updateItemQuantityTool = &mcp.Tool{
	Name:        "update_item_quantity",
	Description: "Update stock quantity for a specific item and size.",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":       {Type: "integer", Description: "ID of the item to update"},
			"size":     {Type: "string", Description: `Size to update (e.g. "S", "M", "L")`},
			"quantity": {Type: "integer", Description: "New quantity"},
		},
		Required: []string{"id", "size", "quantity"},
	},
	Annotations: &mcp.ToolAnnotations{IdempotentHint: true},
}
