package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Discord Ticket Dashboard API",
    "description": "Admin API over the ticket bot's guild configurations and ticket logs",
    "version": "1.0"
  },
  "basePath": "/",
  "securityDefinitions": {
    "DashboardSecret": {"type": "apiKey", "in": "header", "name": "X-Dashboard-Secret"}
  },
  "paths": {
    "/api/guilds": {
      "get": {
        "tags": ["guilds"],
        "summary": "List guild configurations",
        "produces": ["application/json"],
        "parameters": [
          {"name": "page", "in": "query", "type": "integer", "default": 1},
          {"name": "limit", "in": "query", "type": "integer", "default": 10},
          {"name": "search", "in": "query", "type": "string"}
        ],
        "responses": {
          "200": {"description": "OK"},
          "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
        }
      },
      "delete": {
        "tags": ["guilds"],
        "summary": "Delete a guild configuration",
        "security": [{"DashboardSecret": []}],
        "produces": ["application/json"],
        "parameters": [
          {"name": "guildId", "in": "query", "type": "string", "required": true}
        ],
        "responses": {
          "200": {"description": "OK"},
          "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
          "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
          "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
        }
      }
    },
    "/api/tickets": {
      "get": {
        "tags": ["tickets"],
        "summary": "List ticket logs",
        "produces": ["application/json"],
        "parameters": [
          {"name": "page", "in": "query", "type": "integer", "default": 1},
          {"name": "limit", "in": "query", "type": "integer", "default": 20},
          {"name": "status", "in": "query", "type": "string", "default": "all"},
          {"name": "type", "in": "query", "type": "string", "default": "all"},
          {"name": "guildId", "in": "query", "type": "string"},
          {"name": "search", "in": "query", "type": "string"}
        ],
        "responses": {
          "200": {"description": "OK"},
          "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
        }
      },
      "post": {
        "tags": ["tickets"],
        "summary": "Create a ticket log manually",
        "security": [{"DashboardSecret": []}],
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "parameters": [
          {"name": "ticket", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NewTicket"}}
        ],
        "responses": {
          "200": {"description": "OK"},
          "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
          "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
          "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
        }
      }
    },
    "/api/stats": {
      "get": {
        "tags": ["stats"],
        "summary": "Dashboard statistics",
        "produces": ["application/json"],
        "responses": {
          "200": {"description": "OK"},
          "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
        }
      }
    }
  },
  "definitions": {
    "ErrorResponse": {
      "type": "object",
      "properties": {"error": {"type": "string"}}
    },
    "NewTicket": {
      "type": "object",
      "description": "guild_id and owner_id are Discord snowflakes sent as JSON strings. Numeric JSON values are rejected with \"Invalid payload\"; non-numeric strings with \"<field> must be a Discord id\".",
      "required": ["guild_id", "owner_id"],
      "properties": {
        "guild_id": {"type": "string", "pattern": "^[0-9]+$"},
        "channel_id": {"type": "string"},
        "channel_name": {"type": "string"},
        "owner_id": {"type": "string", "pattern": "^[0-9]+$"},
        "ticket_type": {"type": "string"},
        "ticket_number": {"type": "integer"},
        "status": {"type": "string", "enum": ["open", "closed"]}
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
