package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Gate Pass API",
        "description": "Student gate pass submission and watchman review backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Gate Passes", "description": "Student submission and status lookup"},
        {"name": "Watchmen", "description": "Review, decisions and exports (bearer secret required)"},
        {"name": "System", "description": "Probes and metrics"}
    ],
    "securityDefinitions": {
        "SharedSecret": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/submit_gate_pass": {
            "post": {
                "tags": ["Gate Passes"],
                "summary": "Submit a gate pass request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitGatePassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing field or invalid pass type"}
                }
            }
        },
        "/get_gate_pass_status/{prn_number}": {
            "get": {
                "tags": ["Gate Passes"],
                "summary": "List a student's gate passes by PRN",
                "parameters": [
                    {"name": "prn_number", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK, possibly empty array"},
                    "400": {"description": "Blank PRN"}
                }
            }
        },
        "/get_gate_passes": {
            "get": {
                "tags": ["Watchmen"],
                "summary": "List all gate passes in full",
                "security": [{"SharedSecret": []}],
                "parameters": [
                    {"name": "type", "in": "query", "type": "string", "enum": ["local", "leave"]}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/update_gate_pass/{id}": {
            "post": {
                "tags": ["Watchmen"],
                "summary": "Approve or reject a gate pass",
                "security": [{"SharedSecret": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Decision applied"},
                    "400": {"description": "Status not Approved/Rejected"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Unknown gate pass"}
                }
            }
        },
        "/watchmen/gate_passes": {
            "get": {
                "tags": ["Watchmen"],
                "summary": "List gate passes projected for review",
                "security": [{"SharedSecret": []}],
                "parameters": [
                    {"name": "type", "in": "query", "type": "string", "enum": ["local", "leave"]}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/watchmen/gate_passes/export": {
            "get": {
                "tags": ["Watchmen"],
                "summary": "Download the gate pass register as CSV",
                "security": [{"SharedSecret": []}],
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "type", "in": "query", "type": "string", "enum": ["local", "leave"]}
                ],
                "responses": {
                    "200": {"description": "CSV attachment"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/watchmen/gate_pass/{id}": {
            "get": {
                "tags": ["Watchmen"],
                "summary": "Get one gate pass in full",
                "security": [{"SharedSecret": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Unknown gate pass"}
                }
            }
        },
        "/download_pdf/{id}": {
            "get": {
                "tags": ["Watchmen"],
                "summary": "Download a gate pass as PDF",
                "security": [{"SharedSecret": []}],
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF attachment"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Unknown gate pass"}
                }
            }
        },
        "/get_statistics": {
            "get": {
                "tags": ["Watchmen"],
                "summary": "Gate pass counts per type and status",
                "security": [{"SharedSecret": []}],
                "responses": {
                    "200": {"description": "Nested counts with last_updated"},
                    "401": {"description": "Unauthorized"}
                }
            }
        }
    },
    "definitions": {
        "SubmitGatePassRequest": {
            "type": "object",
            "required": ["pass_type", "prn_number", "department", "name", "wing", "room_number", "reason", "phone_no", "proposed_visit", "outing_dates"],
            "properties": {
                "pass_type": {"type": "string", "enum": ["local", "leave"]},
                "prn_number": {"type": "string"},
                "department": {"type": "string"},
                "name": {"type": "string"},
                "wing": {"type": "string"},
                "room_number": {"type": "string"},
                "reason": {"type": "string"},
                "phone_no": {"type": "string"},
                "proposed_visit": {"type": "string"},
                "outing_dates": {"type": "string"}
            }
        },
        "UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["Approved", "Rejected"]},
                "reason": {"type": "string"}
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
