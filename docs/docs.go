// Package docs registers the Swagger document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/chat/hr_agent": {
            "post": {
                "description": "Routes the message to one HR operation, runs it and returns the rendered reply.\nApplication failures are returned with HTTP 200 and success=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Run a free-text HR request",
                "parameters": [
                    {
                        "description": "Message",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.agentReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.agentResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/chat/hr_help": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Usage help",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.helpResp"}}
                }
            }
        },
        "/chat/hr_suggestions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Example messages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.suggestionsResp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API and its Data Service backend can serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Backend unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.agentReq": {
            "type": "object",
            "properties": {
                "conversation_id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.agentResp": {
            "type": "object",
            "properties": {
                "api_called": {"type": "string"},
                "confidence": {"type": "number"},
                "conversation_id": {"type": "string"},
                "data": {},
                "intent": {"type": "string"},
                "response": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "http.helpResp": {
            "type": "object",
            "properties": {
                "help": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "http.suggestionsResp": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "success": {"type": "boolean"},
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "HR Agent API",
	Description:      "HR back-office API with a deterministic Vietnamese/English intent router.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
