// Package docs registers the generated OpenAPI document with the swagger
// handler. Regenerate with `swag init -g cmd/api/main.go`.
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
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/process-audio": {
            "post": {
                "description": "Normalizes the upload (video gets its audio track extracted), transcribes it, then runs the same extraction pipeline as the transcript endpoint.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Processing"],
                "summary": "Extract tasks from an audio or video recording",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Audio or video file (max 100MB)",
                        "name": "audio",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.processAudioResp"}},
                    "400": {"description": "Missing file, invalid type or no speech", "schema": {"$ref": "#/definitions/response.ErrResp"}},
                    "502": {"description": "Upstream AI failure", "schema": {"$ref": "#/definitions/response.ErrResp"}}
                }
            }
        },
        "/process-transcript": {
            "post": {
                "description": "Sends the transcript to the language model, validates the extracted items and persists the valid ones.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Processing"],
                "summary": "Extract tasks from a typed transcript",
                "parameters": [
                    {
                        "description": "Meeting transcript",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.processTranscriptReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.processTranscriptResp"}},
                    "400": {"description": "Empty transcript or unparseable AI payload", "schema": {"$ref": "#/definitions/response.ErrResp"}},
                    "502": {"description": "Upstream AI failure", "schema": {"$ref": "#/definitions/response.ErrResp"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "description": "Returns all tasks, most recently created first.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.taskResp"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrResp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete all tasks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrResp"}}
                }
            }
        },
        "/tasks/export": {
            "get": {
                "description": "Streams the current task list as a CSV or Excel download.",
                "produces": ["text/csv"],
                "tags": ["Tasks"],
                "summary": "Export the task list",
                "parameters": [
                    {"type": "string", "description": "csv (default) or xlsx", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/response.ErrResp"}}
                }
            }
        },
        "/tasks/{id}": {
            "put": {
                "description": "Merges the provided fields into an existing task.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "integer", "description": "Task id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.updateReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.taskResp"}},
                    "400": {"description": "Invalid id or priority", "schema": {"$ref": "#/definitions/response.ErrResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrResp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "integer", "description": "Task id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResp"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/response.ErrResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrResp"}}
                }
            }
        }
    },
    "definitions": {
        "http.processAudioResp": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.taskResp"}},
                "transcript": {"type": "string"}
            }
        },
        "http.processTranscriptReq": {
            "type": "object",
            "properties": {
                "transcript": {"type": "string"}
            }
        },
        "http.processTranscriptResp": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.taskResp"}}
            }
        },
        "http.taskResp": {
            "type": "object",
            "properties": {
                "assignee": {"type": "string"},
                "createdAt": {"type": "string"},
                "deadline": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "priority": {"type": "string"}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "assignee": {"type": "string", "minLength": 1},
                "deadline": {"type": "string", "minLength": 1},
                "description": {"type": "string", "minLength": 1},
                "priority": {"type": "string", "enum": ["P1", "P2", "P3"]}
            }
        },
        "response.ErrResp": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "response.MessageResp": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Meeting Task Converter API",
	Description:      "Turns meeting transcripts and recordings into structured, prioritized tasks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
