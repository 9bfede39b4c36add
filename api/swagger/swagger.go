package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Melody Bakes Inquiry API",
        "description": "Order-inquiry intake and moderation API for the Melody Bakes site",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Intake", "description": "Public order-inquiry submission"},
        {"name": "Survey", "description": "Guided quotation survey"},
        {"name": "Auth", "description": "Dashboard authentication"},
        {"name": "Inquiries", "description": "Inquiry moderation dashboard"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/submit-order-inquiry": {
            "post": {
                "tags": ["Intake"],
                "summary": "Submit an order inquiry",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitInquiryRequest"}}
                ],
                "responses": {
                    "200": {"description": "Accepted", "schema": {"$ref": "#/definitions/IntakeSuccess"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/IntakeError"}},
                    "405": {"description": "Method not allowed", "schema": {"$ref": "#/definitions/IntakeError"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/IntakeError"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/IntakeError"}}
                }
            }
        },
        "/api/v1/survey/quote": {
            "post": {
                "tags": ["Survey"],
                "summary": "Submit a completed quotation survey",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SurveyQuoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "Accepted", "schema": {"$ref": "#/definitions/SurveyQuoteResponse"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/IntakeError"}},
                    "422": {"description": "Terms not accepted", "schema": {"$ref": "#/definitions/IntakeError"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/IntakeError"}}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate a dashboard user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token pair", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate a refresh token",
                "responses": {
                    "200": {"description": "New token pair", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid refresh token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke a refresh token",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Logged out"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/inquiries": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "List inquiries",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["new", "contacted", "confirmed", "completed", "cancelled"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Paginated inquiries", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/inquiries/export": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "Export inquiries as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Export file"}
                }
            }
        },
        "/api/v1/inquiries/{id}": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "Fetch a single inquiry",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Inquiry", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/inquiries/{id}/status": {
            "patch": {
                "tags": ["Inquiries"],
                "summary": "Update inquiry status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated inquiry", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown status", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/inquiries/{id}/sheet": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "Render a printable order sheet",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "PDF order sheet"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/inquiries/{id}/whatsapp": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "Build a WhatsApp follow-up link",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "wa.me URL", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "SubmitInquiryRequest": {
            "type": "object",
            "required": ["name", "contact", "cake_type", "date_needed"],
            "properties": {
                "name": {"type": "string"},
                "contact": {"type": "string"},
                "cake_type": {"type": "string"},
                "date_needed": {"type": "string", "example": "2026-03-14"},
                "event_type": {"type": "string"},
                "delivery_option": {"type": "string", "enum": ["pickup", "delivery"]},
                "delivery_location": {"type": "string"},
                "additional_notes": {"type": "string"},
                "honeypot": {"type": "string", "description": "Hidden field; must be empty"}
            }
        },
        "IntakeSuccess": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "IntakeError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "rateLimited": {"type": "boolean"},
                "disqualified": {"type": "boolean"}
            }
        },
        "SurveyQuoteRequest": {
            "type": "object",
            "required": ["cake_type"],
            "properties": {
                "cake_type": {"type": "string"},
                "occasion": {"type": "string"},
                "timeframe": {"type": "string"},
                "serving_size": {"type": "string"},
                "budget": {"type": "string"},
                "delivery": {"type": "string"},
                "delivery_location": {"type": "string"},
                "tiers": {"type": "string"},
                "shape": {"type": "string"},
                "custom_shape": {"type": "string"},
                "flavour": {"type": "string"},
                "other_flavour": {"type": "string"},
                "filling": {"type": "string"},
                "finish": {"type": "string"},
                "toppers": {"type": "string"},
                "topper_details": {"type": "string"},
                "reference_link": {"type": "string"},
                "color_theme": {"type": "string"},
                "confirmations": {"type": "object", "additionalProperties": {"type": "string"}},
                "name": {"type": "string"},
                "contact": {"type": "string"},
                "email": {"type": "string"},
                "notes": {"type": "string"},
                "honeypot": {"type": "string", "description": "Hidden field; must be empty"}
            }
        },
        "SurveyQuoteResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "id": {"type": "string"},
                "message": {"type": "string"},
                "whatsapp_url": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["new", "contacted", "confirmed", "completed", "cancelled"]}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
