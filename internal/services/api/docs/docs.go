// Package docs holds the swagger 2.0 document served at /api/docs
package docs

import "github.com/swaggo/swag/v2"

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
        "/analysis": {
            "post": {
                "tags": [
                    "Analysis"
                ],
                "summary": "Analyze a maintenance description",
                "operationId": "analysisAnalyze",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/analysis.Report"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Taxonomy unavailable",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "description": "Splits the description into parts and labor segments and classifies both",
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analysis.AnalyzeInput"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/analysis/batch": {
            "post": {
                "tags": [
                    "Analysis"
                ],
                "summary": "Analyze many descriptions and aggregate by category",
                "operationId": "analysisBatch",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/analysis.BatchReport"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Taxonomy unavailable",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analysis.BatchInput"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/analysis/classify": {
            "post": {
                "tags": [
                    "Analysis"
                ],
                "summary": "Classify text against one taxonomy",
                "operationId": "analysisClassify",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/classifier.Result"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Taxonomy unavailable",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analysis.ClassifyInput"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/classifications/stats": {
            "get": {
                "tags": [
                    "Classifications"
                ],
                "summary": "Most detected categories",
                "operationId": "classificationsStats",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/classifications.UsageReport"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer",
                        "required": false,
                        "description": "max categories (default 10)"
                    }
                ]
            }
        },
        "/classifications/records/{id}": {
            "get": {
                "tags": [
                    "Classifications"
                ],
                "summary": "Classification history of one maintenance record",
                "operationId": "classificationsByRecord",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/classifications.Record"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "integer",
                        "required": true,
                        "description": "maintenance record id"
                    }
                ]
            }
        },
        "/taxonomy": {
            "get": {
                "tags": [
                    "Taxonomy"
                ],
                "summary": "Taxonomy cache state",
                "operationId": "taxonomyStats",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/taxonomy.Stat"
                            }
                        }
                    }
                }
            }
        },
        "/taxonomy/invalidate": {
            "post": {
                "tags": [
                    "Taxonomy"
                ],
                "summary": "Drop cached taxonomies",
                "operationId": "taxonomyInvalidate",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/taxonomy.Stat"
                            }
                        }
                    }
                },
                "description": "Call after editing categories or keywords; the next analysis reloads"
            }
        },
        "/taxonomy/{kind}": {
            "get": {
                "tags": [
                    "Taxonomy"
                ],
                "summary": "Loaded taxonomy for one kind",
                "operationId": "taxonomyView",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/taxonomy.View"
                        }
                    },
                    "422": {
                        "description": "Unknown kind",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Taxonomy unavailable",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "kind",
                        "type": "string",
                        "required": true,
                        "description": "part or labor"
                    }
                ]
            }
        },
        "/meta/health": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Health check",
                "operationId": "metaHealth",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/meta.HealthResponse"
                        }
                    }
                }
            }
        },
        "/meta/ready": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Readiness probe with dependency checks",
                "operationId": "metaReady",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/meta.ReadyResponse"
                        }
                    }
                }
            }
        },
        "/meta/version": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Build and version info",
                "operationId": "metaVersion",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/version.BuildInfo"
                        }
                    }
                }
            }
        },
        "/meta/service": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Service info and uptime",
                "operationId": "metaService",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/meta.ServiceResponse"
                        }
                    }
                }
            }
        },
        "/meta/engine": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Scoring constants and taxonomy cache state",
                "operationId": "metaEngine",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "$ref": "#/definitions/meta.EngineResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "analysis.AnalyzeInput": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "example": "Repuestos: 1 filtro de aceite | Trabajo realizado: Service general"
                },
                "record_id": {
                    "type": "integer",
                    "minimum": 1
                }
            }
        },
        "analysis.MatchView": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "confidence": {
                    "type": "number",
                    "example": 82.5
                },
                "keywords": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "analysis.Report": {
            "type": "object",
            "properties": {
                "parts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.MatchView"
                    }
                },
                "labor": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.MatchView"
                    }
                },
                "part_confidence": {
                    "type": "number"
                },
                "labor_confidence": {
                    "type": "number"
                },
                "best_part": {
                    "type": "string",
                    "x-nullable": true
                },
                "best_labor": {
                    "type": "string",
                    "x-nullable": true
                },
                "summary": {
                    "type": "string",
                    "example": "Detectados 1 tipos de repuestos y 1 tipos de trabajos"
                }
            }
        },
        "analysis.BatchItem": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "record_id": {
                    "type": "integer",
                    "minimum": 1
                },
                "client": {
                    "type": "string"
                },
                "equipment": {
                    "type": "string"
                }
            }
        },
        "analysis.BatchInput": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.BatchItem"
                    },
                    "minItems": 1
                }
            },
            "required": [
                "items"
            ]
        },
        "analysis.CategoryAggregate": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "avg_confidence": {
                    "type": "number"
                },
                "color": {
                    "type": "string"
                },
                "clients": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "equipment": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "analysis.ClientSummary": {
            "type": "object",
            "properties": {
                "client": {
                    "type": "string"
                },
                "part_uses": {
                    "type": "integer"
                },
                "part_types": {
                    "type": "integer"
                },
                "top_parts": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "labor_uses": {
                    "type": "integer"
                },
                "labor_types": {
                    "type": "integer"
                },
                "top_labor": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "analysis.BatchReport": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "parts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.CategoryAggregate"
                    }
                },
                "labor": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.CategoryAggregate"
                    }
                },
                "clients": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.ClientSummary"
                    }
                },
                "reports": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.Report"
                    }
                }
            }
        },
        "analysis.ClassifyInput": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "kind": {
                    "type": "string",
                    "enum": [
                        "part",
                        "labor"
                    ]
                }
            },
            "required": [
                "kind"
            ]
        },
        "classifier.Match": {
            "type": "object",
            "properties": {
                "category_id": {
                    "type": "integer"
                },
                "category": {
                    "type": "string"
                },
                "confidence": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 1
                },
                "keywords": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "root": {
                    "type": "boolean"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "classifier.Result": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "normalized": {
                    "type": "string"
                },
                "matches": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/classifier.Match"
                    }
                },
                "best": {
                    "$ref": "#/definitions/classifier.Match"
                },
                "confidence": {
                    "type": "number"
                },
                "generation": {
                    "type": "integer"
                }
            }
        },
        "classifications.UsageRow": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "uses": {
                    "type": "integer"
                },
                "avg_confidence": {
                    "type": "number"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "classifications.UsageReport": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/classifications.UsageRow"
                    }
                }
            }
        },
        "classifications.Record": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "record_id": {
                    "type": "integer"
                },
                "text": {
                    "type": "string"
                },
                "pass": {
                    "type": "string",
                    "enum": [
                        "part",
                        "labor"
                    ]
                },
                "category": {
                    "type": "string"
                },
                "confidence": {
                    "type": "number"
                },
                "keywords": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "taxonomy.Stat": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "loaded": {
                    "type": "boolean"
                },
                "keywords": {
                    "type": "integer"
                },
                "categories": {
                    "type": "integer"
                },
                "generation": {
                    "type": "integer"
                },
                "loaded_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "taxonomy.CategoryView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "parent_id": {
                    "type": "integer"
                },
                "color": {
                    "type": "string"
                },
                "complexity": {
                    "type": "integer"
                },
                "keywords": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "taxonomy.View": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "generation": {
                    "type": "integer"
                },
                "loaded_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "keywords": {
                    "type": "integer"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/taxonomy.CategoryView"
                    }
                }
            }
        },
        "meta.HealthResponse": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean"
                },
                "service": {
                    "type": "string"
                },
                "started": {
                    "type": "string"
                },
                "now": {
                    "type": "string"
                }
            }
        },
        "meta.ReadyCheck": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "meta.ReadyResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "checks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.ReadyCheck"
                    }
                },
                "now": {
                    "type": "string"
                }
            }
        },
        "meta.ServiceResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "started": {
                    "type": "string"
                },
                "uptime": {
                    "type": "integer"
                }
            }
        },
        "meta.EngineResponse": {
            "type": "object",
            "properties": {
                "threshold": {
                    "type": "number"
                },
                "divisor": {
                    "type": "number"
                },
                "taxonomy": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/taxonomy.Stat"
                    }
                },
                "build": {
                    "$ref": "#/definitions/version.BuildInfo"
                }
            }
        },
        "version.BuildInfo": {
            "type": "object",
            "properties": {
                "service": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "commit": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Taller API",
	Description:      "Maintenance text classification: parts and labor analysis, taxonomy cache, audit stats",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
