// Package docs registers the catalog-service OpenAPI document with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/product/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get a product",
                "parameters": [
                    {"type": "integer", "description": "product id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/product.Product"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/product.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/product.HTTPError"}}
                }
            }
        },
        "/products": {
            "get": {
                "description": "Paginates the upstream catalog and optionally sorts the page locally.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "parameters": [
                    {"minimum": 1, "type": "integer", "default": 10, "description": "page size", "name": "limit", "in": "query"},
                    {"minimum": 0, "type": "integer", "default": 0, "description": "items to skip", "name": "skip", "in": "query"},
                    {"type": "string", "default": "id", "description": "field to sort by", "name": "sortBy", "in": "query"},
                    {"type": "string", "default": "asc", "description": "asc or desc", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/product.ListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/product.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/product.HTTPError"}}
                }
            }
        },
        "/products/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Search products",
                "parameters": [
                    {"type": "string", "description": "search text", "name": "q", "in": "query", "required": true},
                    {"minimum": 1, "type": "integer", "default": 10, "description": "page size", "name": "limit", "in": "query"},
                    {"minimum": 0, "type": "integer", "default": 0, "description": "items to skip", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/product.ListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/product.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/product.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "product.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Invalid API response"}
            }
        },
        "product.Meta": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "product.ListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/product.Product"}},
                "meta": {"$ref": "#/definitions/product.Meta"}
            }
        },
        "product.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string", "example": "1.234,50 €"},
                "stock": {"type": "string", "example": "On Stock"},
                "thumbnail": {"type": "string"},
                "short_description": {"type": "string"},
                "category": {"type": "string"},
                "tags": {"type": "string", "example": "beauty, mascara"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Catalog Gateway API",
	Description:      "Display-oriented read facade over a public product catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
