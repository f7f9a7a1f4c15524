// Package docs provides the generated swagger documentation.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Application health",
                "responses": {
                    "200": {"description": "Health status", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/todos": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "List todos",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Todo items", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.TodoItem"}}},
                    "401": {"description": "Missing or invalid token"},
                    "500": {"description": "Internal server error"}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Create a todo",
                "parameters": [
                    {"name": "todo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateTodoDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created todo item", "schema": {"$ref": "#/definitions/entity.TodoItem"}},
                    "400": {"description": "Invalid request body"},
                    "401": {"description": "Missing or invalid token"},
                    "500": {"description": "Internal server error"}
                }
            }
        },
        "/todos/{todoId}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Update a todo",
                "parameters": [
                    {"type": "string", "name": "todoId", "in": "path", "required": true},
                    {"name": "todo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UpdateTodoDTO"}}
                ],
                "responses": {
                    "200": {"description": "Updated fields", "schema": {"$ref": "#/definitions/model.TodoUpdate"}},
                    "400": {"description": "Invalid request body"},
                    "401": {"description": "Missing or invalid token"},
                    "404": {"description": "Todo not found"},
                    "500": {"description": "Internal server error"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Delete a todo",
                "parameters": [
                    {"type": "string", "name": "todoId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deletion confirmation", "schema": {"$ref": "#/definitions/model.DeleteTodoResponse"}},
                    "401": {"description": "Missing or invalid token"},
                    "500": {"description": "Internal server error"}
                }
            }
        },
        "/todos/{todoId}/attachment": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Generate an attachment upload URL",
                "parameters": [
                    {"type": "string", "name": "todoId", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Presigned upload URL", "schema": {"$ref": "#/definitions/model.UploadUrlResponse"}},
                    "401": {"description": "Missing or invalid token"},
                    "404": {"description": "Todo not found"},
                    "429": {"description": "Too many requests"},
                    "500": {"description": "Internal server error"}
                }
            }
        }
    },
    "definitions": {
        "entity.TodoItem": {
            "type": "object",
            "properties": {
                "todoId": {"type": "string"},
                "userId": {"type": "string"},
                "createdAt": {"type": "string"},
                "name": {"type": "string"},
                "dueDate": {"type": "string"},
                "done": {"type": "boolean"},
                "attachmentUrl": {"type": "string"}
            }
        },
        "model.CreateTodoDTO": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "dueDate": {"type": "string"}
            }
        },
        "model.UpdateTodoDTO": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "dueDate": {"type": "string"},
                "done": {"type": "boolean"}
            }
        },
        "model.TodoUpdate": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "dueDate": {"type": "string"},
                "done": {"type": "boolean"}
            }
        },
        "model.DeleteTodoResponse": {
            "type": "object",
            "properties": {
                "todoId": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "model.UploadUrlResponse": {
            "type": "object",
            "properties": {
                "uploadUrl": {"type": "string"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "components": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/todo-api",
	Schemes:          []string{},
	Title:            "Todo API",
	Description:      "REST API for managing todo items and their attachments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
