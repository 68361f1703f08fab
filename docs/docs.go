// Package docs registers the swagger spec served at /swagger/*any.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/items/{type}": {
            "get": {
                "description": "List projected items of one type (post, link, class, comment, rating) with the user's vote state",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List items",
                "parameters": [
                    {"type": "string", "description": "Item type", "name": "type", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (clamped to the configured maximum)", "name": "page_size", "in": "query"},
                    {"type": "string", "description": "Voter whose votes fill voted/voteValue", "name": "user_id", "in": "query"},
                    {"type": "string", "description": "Parent post (comments) or class (ratings)", "name": "parent", "in": "query"},
                    {"type": "string", "description": "Parent comment (comments)", "name": "parent_comment", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Tags (OR match)", "name": "tags", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PaginationItemInfoDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/items/{type}/{id}": {
            "get": {
                "description": "Get a single projected item by its id",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Get item by id",
                "parameters": [
                    {"type": "string", "description": "Item type", "name": "type", "in": "path", "required": true},
                    {"type": "string", "description": "Item id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Voter whose vote fills voted/voteValue", "name": "user_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponseDTO": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "unknown item type"}
            }
        },
        "dto.PaginationItemInfoDTO": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "object", "additionalProperties": {}}},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Campus Board API",
	Description:      "API for browsing posts, links, classes, comments and ratings",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
