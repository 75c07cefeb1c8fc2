package mcp

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/prodash/prodash/services/products"
)

func registerTools(s *server.MCPServer, svc *products.Service) {
	listTool := mcp.NewTool("list_products",
		mcp.WithDescription("List products with pagination and optional search"),
		mcp.WithNumber("page",
			mcp.Description("Page number, 1-based (default: 1)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Products per page (default: 10)"),
		),
		mcp.WithString("search",
			mcp.Description("Search text filter"),
		),
	)
	s.AddTool(listTool, handleList(svc))

	getTool := mcp.NewTool("get_product",
		mcp.WithDescription("Get one product by its id"),
		mcp.WithString("product_id",
			mcp.Required(),
			mcp.Description("Product identifier"),
		),
	)
	s.AddTool(getTool, handleGet(svc))

	createTool := mcp.NewTool("create_product",
		mcp.WithDescription("Create a product"),
		mcp.WithString("product_title",
			mcp.Required(),
			mcp.Description("Product title"),
		),
		mcp.WithNumber("product_price",
			mcp.Required(),
			mcp.Description("Whole-unit price, must be >= 0"),
		),
		mcp.WithString("product_category",
			mcp.Description("Category label"),
		),
		mcp.WithString("product_description",
			mcp.Description("Free-text description"),
		),
		mcp.WithString("product_image",
			mcp.Description("Image URL"),
		),
	)
	s.AddTool(createTool, handleCreate(svc))

	updateTool := mcp.NewTool("update_product",
		mcp.WithDescription("Update an existing product; unspecified fields are left to the upstream"),
		mcp.WithString("product_id",
			mcp.Required(),
			mcp.Description("Product identifier"),
		),
		mcp.WithString("product_title",
			mcp.Description("Product title"),
		),
		mcp.WithNumber("product_price",
			mcp.Description("Whole-unit price, must be >= 0"),
		),
		mcp.WithString("product_category",
			mcp.Description("Category label"),
		),
		mcp.WithString("product_description",
			mcp.Description("Free-text description"),
		),
		mcp.WithString("product_image",
			mcp.Description("Image URL"),
		),
	)
	s.AddTool(updateTool, handleUpdate(svc))
}

func handleList(svc *products.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page := request.GetInt("page", 1)
		limit := request.GetInt("limit", 10)
		search := request.GetString("search", "")

		body, err := svc.List(ctx, strconv.Itoa(page), strconv.Itoa(limit), search)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}

func handleGet(svc *products.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetString("product_id", "")
		body, err := svc.FetchOne(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}

func handleCreate(svc *products.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payload, err := json.Marshal(productArgs(request, false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		body, err := svc.Create(ctx, payload)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}

func handleUpdate(svc *products.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if request.GetString("product_id", "") == "" {
			return mcp.NewToolResultError("product_id is required"), nil
		}
		payload, err := json.Marshal(productArgs(request, true))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		body, err := svc.Update(ctx, payload)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}

// productArgs collects the product fields present on the request into a
// payload map, so update sends only what the caller specified.
func productArgs(request mcp.CallToolRequest, withID bool) map[string]interface{} {
	out := map[string]interface{}{}
	if withID {
		out["product_id"] = request.GetString("product_id", "")
	}
	if v := request.GetString("product_title", ""); v != "" {
		out["product_title"] = v
	}
	args := request.GetArguments()
	if _, ok := args["product_price"]; ok {
		out["product_price"] = request.GetInt("product_price", 0)
	}
	if v := request.GetString("product_category", ""); v != "" {
		out["product_category"] = v
	}
	if v := request.GetString("product_description", ""); v != "" {
		out["product_description"] = v
	}
	if v := request.GetString("product_image", ""); v != "" {
		out["product_image"] = v
	}
	return out
}
