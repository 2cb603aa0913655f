// Package tools binds the inventory operations to MCP tools.
//
// Domain errors (validation, not-found, conflict) come back as in-band
// tool errors; only unexpected store failures propagate as handler
// errors.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"clothing-inventory/internal/inventory"
	"clothing-inventory/internal/store"
)

// Handler carries the dependencies shared by all tool handlers.
type Handler struct {
	svc    *inventory.Service
	logger *slog.Logger
}

// NewServer builds an MCP server exposing the five inventory tools.
func NewServer(name, version string, svc *inventory.Service, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)
	h := &Handler{svc: svc, logger: logger}

	server.AddTool(addItemTool, h.AddItem)
	server.AddTool(getInventoryTool, h.GetInventory)
	server.AddTool(getItemByIDTool, h.GetItemByID)
	server.AddTool(searchItemsTool, h.SearchItems)
	server.AddTool(updateItemQuantityTool, h.UpdateItemQuantity)

	return server
}

// ItemPayload is the wire shape of one item in tool responses.
type ItemPayload struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Sizes       map[string]int `json:"sizes"`
}

func toPayload(it *store.Item) ItemPayload {
	return ItemPayload{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Price:       it.Price.InexactFloat64(),
		Description: it.Description,
		Sizes:       it.SizeMap(),
	}
}

type addItemArgs struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Sizes       map[string]int `json:"sizes"`
}

// AddItem handles the add_item tool.
func (h *Handler) AddItem(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args addItemArgs
	if err := unmarshalArgs(req, &args); err != nil {
		return errorResult(err), nil
	}

	item, err := h.svc.AddItem(ctx, inventory.AddItemInput{
		ID:          args.ID,
		Name:        args.Name,
		Category:    args.Category,
		Price:       args.Price,
		Description: args.Description,
		Sizes:       args.Sizes,
	})
	if err != nil {
		return h.fail("add_item", err)
	}

	return jsonResult(map[string]any{
		"success": true,
		"item":    toPayload(item),
	})
}

type listArgs struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// GetInventory handles the get_inventory tool.
func (h *Handler) GetInventory(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listArgs
	if err := unmarshalArgs(req, &args); err != nil {
		return errorResult(err), nil
	}

	items, err := h.svc.ListInventory(ctx, inventory.ListOptions{Limit: args.Limit, Offset: args.Offset})
	if err != nil {
		return h.fail("get_inventory", err)
	}

	payload := make([]ItemPayload, 0, len(items))
	for i := range items {
		payload = append(payload, toPayload(&items[i]))
	}
	return jsonResult(map[string]any{
		"items":       payload,
		"total_items": len(payload),
		"categories":  categories(items),
	})
}

type getItemArgs struct {
	ID int64 `json:"id"`
}

// GetItemByID handles the get_item_by_id tool.
func (h *Handler) GetItemByID(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args getItemArgs
	if err := unmarshalArgs(req, &args); err != nil {
		return errorResult(err), nil
	}

	item, err := h.svc.GetItem(ctx, args.ID)
	if err != nil {
		return h.fail("get_item_by_id", err)
	}

	return jsonResult(map[string]any{
		"success": true,
		"item":    toPayload(item),
	})
}

type searchArgs struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// SearchItems handles the search_items tool.
func (h *Handler) SearchItems(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args searchArgs
	if err := unmarshalArgs(req, &args); err != nil {
		return errorResult(err), nil
	}

	items, err := h.svc.SearchItems(ctx, args.Query, args.Limit)
	if err != nil {
		return h.fail("search_items", err)
	}

	payload := make([]ItemPayload, 0, len(items))
	for i := range items {
		payload = append(payload, toPayload(&items[i]))
	}
	return jsonResult(map[string]any{
		"items": payload,
		"count": len(payload),
		"query": strings.ToLower(args.Query),
	})
}

type updateQuantityArgs struct {
	ID       int64  `json:"id"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// UpdateItemQuantity handles the update_item_quantity tool.
func (h *Handler) UpdateItemQuantity(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updateQuantityArgs
	if err := unmarshalArgs(req, &args); err != nil {
		return errorResult(err), nil
	}

	row, err := h.svc.UpdateQuantity(ctx, args.ID, args.Size, args.Quantity)
	if err != nil {
		return h.fail("update_item_quantity", err)
	}

	return jsonResult(map[string]any{
		"success":  true,
		"id":       args.ID,
		"size":     row.Size,
		"quantity": row.Quantity,
	})
}

// fail maps a domain error to a tool error result; anything else is an
// internal failure that the protocol layer reports.
func (h *Handler) fail(tool string, err error) (*mcp.CallToolResult, error) {
	if inventory.IsDomainError(err) {
		return errorResult(err), nil
	}
	h.logger.Error("tool failed", "tool", tool, "err", err)
	return nil, err
}

func unmarshalArgs(req *mcp.CallToolRequest, v any) error {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params.Arguments, v); err != nil {
		return fmt.Errorf("%w: %v", inventory.ErrValidation, err)
	}
	return nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(buf)}},
	}, nil
}

func errorResult(err error) *mcp.CallToolResult {
	body, _ := json.Marshal(map[string]any{
		"success": false,
		"error":   err.Error(),
	})
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
		IsError: true,
	}
}

func categories(items []store.Item) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for i := range items {
		if !seen[items[i].Category] {
			seen[items[i].Category] = true
			out = append(out, items[i].Category)
		}
	}
	sort.Strings(out)
	return out
}
