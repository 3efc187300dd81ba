// Package docs holds the OpenAPI description served under /swagger.
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
        "CustomerRef": {"type": "apiKey", "in": "header", "name": "X-Customer-Ref"},
        "ActorRef": {"type": "apiKey", "in": "header", "name": "X-Actor-Ref"}
    },
    "paths": {
        "/ping": {"get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/me/profile": {"get": {"tags": ["customer"], "security": [{"CustomerRef": []}], "summary": "Caller's client profile", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/me/orders": {
            "post": {"tags": ["customer"], "security": [{"CustomerRef": []}], "summary": "Submit an order (JSON, or multipart with payload + photo)", "consumes": ["application/json", "multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "502": {"description": "Photo upload failed"}}},
            "get": {"tags": ["customer"], "security": [{"CustomerRef": []}], "summary": "List the caller's orders", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK"}}}
        },
        "/me/orders/{id}": {"get": {"tags": ["customer"], "security": [{"CustomerRef": []}], "summary": "One of the caller's orders", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/me/orders/{id}/revisions": {
            "get": {"tags": ["customer"], "security": [{"CustomerRef": []}], "summary": "Revision history of an order", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["customer"], "security": [{"CustomerRef": []}], "summary": "Request a revision", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"201": {"description": "Created"}, "409": {"description": "Order delivered"}}}
        },
        "/me/orders/{id}/payments/deposit": {"post": {"tags": ["payments"], "security": [{"CustomerRef": []}], "summary": "Pay the deposit", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "Approved"}, "402": {"description": "Not approved"}}}},
        "/me/orders/{id}/payments/balance": {"post": {"tags": ["payments"], "security": [{"CustomerRef": []}], "summary": "Pay the balance", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "Approved"}, "402": {"description": "Not approved"}}}},
        "/me/revisions": {"get": {"tags": ["customer"], "security": [{"CustomerRef": []}], "summary": "The caller's revisions", "responses": {"200": {"description": "OK"}}}},
        "/me/revisions/{id}/payments": {"post": {"tags": ["payments"], "security": [{"CustomerRef": []}], "summary": "Pay a revision fee", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "Approved"}, "400": {"description": "Revision is free"}}}},
        "/admin/stats": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Dashboard statistics", "responses": {"200": {"description": "OK"}}}},
        "/admin/orders": {
            "get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "List orders", "parameters": [{"name": "status", "in": "query", "type": "string"}, {"name": "statuses", "in": "query", "type": "string"}, {"name": "customer_ref", "in": "query", "type": "string"}, {"name": "rush", "in": "query", "type": "boolean"}, {"name": "delivery_from", "in": "query", "type": "string"}, {"name": "delivery_to", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Record a walk-in order", "responses": {"201": {"description": "Created"}}}
        },
        "/admin/orders/repair-history": {"post": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Repair every order without an originating revision", "responses": {"200": {"description": "OK"}}}},
        "/admin/orders/{id}": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Get an order", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/admin/orders/{id}/quote": {"patch": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Quote a base price", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid price"}}}},
        "/admin/orders/{id}/delivery-date": {"patch": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Reschedule delivery", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/admin/orders/{id}/deposit": {"post": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Confirm the deposit", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/admin/orders/{id}/final-payment": {"post": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Confirm the final payment", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/admin/orders/{id}/status": {"patch": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Change order status", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown status"}}}},
        "/admin/orders/{id}/repair-history": {"post": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Repair one order's history", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/admin/orders/{id}/revisions": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Revisions of an order", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/admin/orders/{id}/payments": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Payments of an order", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/admin/revisions": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "List revisions", "parameters": [{"name": "status", "in": "query", "type": "string", "enum": ["pending"]}], "responses": {"200": {"description": "OK"}}}},
        "/admin/revisions/{id}": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Get a revision", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/admin/revisions/{id}/status": {"patch": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Approve, reject or apply a revision", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "409": {"description": "Transition not allowed"}}}},
        "/admin/revisions/{id}/fee-paid": {"post": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Mark a revision fee paid", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/admin/clients": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "List client profiles", "responses": {"200": {"description": "OK"}}}},
        "/admin/clients/lookup": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Find a client by phone", "parameters": [{"name": "phone", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/admin/clients/{ref}": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Get a client profile", "parameters": [{"name": "ref", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/admin/payments/{id}": {"get": {"tags": ["admin"], "security": [{"ActorRef": []}], "summary": "Get a payment", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Atelier Orders API",
	Description:      "Custom garment orders: rush pricing, deposits, revisions and client profiles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
