// Package docs registers the OpenAPI document served under /api-docs.
//
// The document is maintained by hand next to the handler annotations; keep
// paths and definitions in step with internal/handler when routes change.
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
        "/porocila": {
            "get": {
                "produces": ["application/json"],
                "tags": ["porocila"],
                "summary": "List financial reports",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/model.FinancialReport"}
                        }
                    }
                }
            },
            "post": {
                "description": "avtor, when given, must be the id of an existing employee.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["porocila"],
                "summary": "Create a financial report",
                "parameters": [
                    {
                        "description": "Report",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.CreateReportRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/model.FinancialReport"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/errs.HTTPError"}
                    }
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/stroski": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stroski"],
                "summary": "List expenses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/model.Expense"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["stroski"],
                "summary": "Create an expense",
                "parameters": [
                    {
                        "description": "Expense",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.CreateExpenseRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/model.Expense"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/errs.HTTPError"}
                    }
                }
            }
        },
        "/stroski/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stroski"],
                "summary": "Get an expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expense id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.Expense"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/errs.HTTPError"}
                    }
                }
            }
        },
        "/zaposleni": {
            "get": {
                "produces": ["application/json"],
                "tags": ["zaposleni"],
                "summary": "List employees",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/model.Employee"}
                        }
                    }
                }
            },
            "post": {
                "description": "All four fields are required. A welcome e-mail is queued when background jobs are enabled.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["zaposleni"],
                "summary": "Create an employee",
                "parameters": [
                    {
                        "description": "Employee",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.CreateEmployeeRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/model.Employee"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/errs.HTTPError"}
                    }
                }
            }
        },
        "/zaposleni/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["zaposleni"],
                "summary": "Get an employee",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Employee id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.Employee"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/errs.HTTPError"}
                    }
                }
            }
        }
    },
    "definitions": {
        "errs.Action": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "type": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "errs.FieldError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "errs.HTTPError": {
            "type": "object",
            "properties": {
                "action": {"$ref": "#/definitions/errs.Action"},
                "code": {"type": "string"},
                "errors": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/errs.FieldError"}
                },
                "message": {"type": "string"},
                "override": {"type": "boolean"},
                "status": {"type": "integer"}
            }
        },
        "handler.CreateEmployeeRequest": {
            "type": "object",
            "required": ["email", "ime", "polozaj", "priimek"],
            "properties": {
                "email": {"type": "string"},
                "ime": {"type": "string"},
                "polozaj": {"type": "string"},
                "priimek": {"type": "string"}
            }
        },
        "handler.CreateExpenseRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "name": {"type": "string"}
            }
        },
        "handler.CreateReportRequest": {
            "type": "object",
            "required": ["naslov", "vsebina"],
            "properties": {
                "avtor": {"type": "string"},
                "datum": {"type": "string"},
                "naslov": {"type": "string"},
                "vsebina": {"type": "string"}
            }
        },
        "model.Employee": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "ime": {"type": "string"},
                "polozaj": {"type": "string"},
                "priimek": {"type": "string"}
            }
        },
        "model.Expense": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "model.FinancialReport": {
            "type": "object",
            "properties": {
                "avtor": {"type": "string"},
                "datum": {"type": "string"},
                "id": {"type": "string"},
                "naslov": {"type": "string"},
                "vsebina": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Stroski API",
	Description:      "Expenses, employees and financial reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
