// Package docs registers the Swagger specification for the API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/api/submit-entry": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "summary": "Submit a contest entry",
                "parameters": [
                    {"type": "string", "name": "full_name", "in": "formData", "required": true},
                    {"type": "string", "name": "email_address", "in": "formData", "required": true},
                    {"type": "string", "name": "contact_number", "in": "formData"},
                    {"type": "string", "name": "submission_capacity", "in": "formData"},
                    {"type": "file", "name": "visuals", "in": "formData", "description": "zero or more attachments"}
                ],
                "responses": {
                    "200": {"description": "entry stored"},
                    "400": {"description": "missing required field or disallowed attachment type"},
                    "500": {"description": "upload or persistence failure"}
                }
            }
        },
        "/api/entries": {
            "get": {
                "produces": ["application/json"],
                "summary": "List entries",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/entries/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get one entry",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "not found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Contest Entry API",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
