// Package openapi serves the API schema for frontend integration.
// The surface is small and static, so the document is assembled by
// hand instead of generated.
package openapi

import (
	"net/http"

	"github.com/pricesense/backend/pkg/httpx"
)

type object = map[string]any

// Handle serves the OpenAPI 3 document at /openapi.json.
func Handle(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, Document())
}

// Document builds the schema describing every route of the service.
func Document() object {
	idParam := object{
		"name":     "id",
		"in":       "path",
		"required": true,
		"schema":   object{"type": "integer"},
	}
	errorResponse := func(description string) object {
		return object{
			"description": description,
			"content": object{
				"application/json": object{
					"schema": object{"$ref": "#/components/schemas/Error"},
				},
			},
		}
	}
	productRef := object{"$ref": "#/components/schemas/Product"}
	recordRef := object{"$ref": "#/components/schemas/PriceRecord"}
	alertRef := object{"$ref": "#/components/schemas/Alert"}

	jsonOf := func(schema object, description string) object {
		return object{
			"description": description,
			"content": object{
				"application/json": object{"schema": schema},
			},
		}
	}
	arrayOf := func(items object) object {
		return object{"type": "array", "items": items}
	}

	return object{
		"openapi": "3.0.3",
		"info": object{
			"title":       "PriceSense Backend",
			"description": "Backend API providing product tracking, price history, and alerts.",
			"version":     "0.1.0",
		},
		"paths": object{
			"/": object{
				"get": object{
					"tags":    []string{"health"},
					"summary": "Health check",
					"responses": object{
						"200": jsonOf(object{"type": "object"}, "Service is healthy"),
					},
				},
			},
			"/products": object{
				"get": object{
					"tags":    []string{"products"},
					"summary": "List products",
					"responses": object{
						"200": jsonOf(arrayOf(productRef), "All tracked products"),
					},
				},
				"post": object{
					"tags":    []string{"products"},
					"summary": "Create product",
					"requestBody": object{
						"required": true,
						"content": object{
							"application/json": object{
								"schema": object{"$ref": "#/components/schemas/ProductInput"},
							},
						},
					},
					"responses": object{
						"201": jsonOf(productRef, "Created product"),
						"400": errorResponse("Invalid payload"),
					},
				},
			},
			"/products/{id}": object{
				"get": object{
					"tags":       []string{"products"},
					"summary":    "Get product",
					"parameters": []object{idParam},
					"responses": object{
						"200": jsonOf(productRef, "The product"),
						"404": errorResponse("Product not found"),
					},
				},
				"put": object{
					"tags":       []string{"products"},
					"summary":    "Update product",
					"parameters": []object{idParam},
					"responses": object{
						"200": jsonOf(productRef, "Updated product"),
						"404": errorResponse("Product not found"),
					},
				},
				"patch": object{
					"tags":       []string{"products"},
					"summary":    "Patch product",
					"parameters": []object{idParam},
					"responses": object{
						"200": jsonOf(productRef, "Updated product"),
						"404": errorResponse("Product not found"),
					},
				},
				"delete": object{
					"tags":       []string{"products"},
					"summary":    "Delete product",
					"parameters": []object{idParam},
					"responses": object{
						"204": object{"description": "Deleted, no content"},
						"404": errorResponse("Product not found"),
					},
				},
			},
			"/products/{id}/history": object{
				"get": object{
					"tags":       []string{"prices"},
					"summary":    "Get product price history",
					"parameters": []object{idParam},
					"responses": object{
						"200": jsonOf(arrayOf(recordRef), "Price records, oldest first"),
						"404": errorResponse("Product not found"),
					},
				},
			},
			"/alerts": object{
				"get": object{
					"tags":    []string{"alerts"},
					"summary": "List alerts",
					"responses": object{
						"200": jsonOf(arrayOf(alertRef), "All alerts, newest first"),
					},
				},
			},
			"/jobs/fetch-latest": object{
				"post": object{
					"tags":    []string{"jobs"},
					"summary": "Trigger price fetch",
					"responses": object{
						"202": jsonOf(object{"type": "object"}, "Job accepted"),
					},
				},
			},
		},
		"components": object{
			"schemas": object{
				"Error": object{
					"type": "object",
					"properties": object{
						"error": object{"type": "string"},
					},
				},
				"ProductInput": object{
					"type":     "object",
					"required": []string{"name"},
					"properties": object{
						"name":          object{"type": "string"},
						"url":           object{"type": "string", "nullable": true},
						"current_price": object{"type": "number", "nullable": true},
					},
				},
				"Product": object{
					"type": "object",
					"properties": object{
						"id":            object{"type": "integer"},
						"name":          object{"type": "string"},
						"url":           object{"type": "string", "nullable": true},
						"current_price": object{"type": "number", "nullable": true},
						"last_checked":  object{"type": "string", "format": "date-time"},
						"price_history": arrayOf(recordRef),
						"alerts":        arrayOf(alertRef),
					},
				},
				"PriceRecord": object{
					"type": "object",
					"properties": object{
						"id":         object{"type": "integer"},
						"product_id": object{"type": "integer"},
						"price":      object{"type": "number"},
						"timestamp":  object{"type": "string", "format": "date-time"},
					},
				},
				"Alert": object{
					"type": "object",
					"properties": object{
						"id":           object{"type": "integer"},
						"product_id":   object{"type": "integer"},
						"price":        object{"type": "number"},
						"triggered_at": object{"type": "string", "format": "date-time"},
						"message":      object{"type": "string", "nullable": true},
					},
				},
			},
		},
	}
}
