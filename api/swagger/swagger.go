package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "GPCal API",
        "description": "Personal academic tracking: semesters, courses, GPA/CGPA analytics, and AI insights",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Semesters", "description": "Semester records and link graph"},
        {"name": "Courses", "description": "Courses within a semester"},
        {"name": "Analytics", "description": "GPA, cumulative GPA, donut chart"},
        {"name": "Insights", "description": "AI collaborator"},
        {"name": "Settings", "description": "Global configuration"}
    ],
    "paths": {
        "/semesters": {
            "get": {
                "tags": ["Semesters"],
                "summary": "List semesters",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"},
                    {"name": "sortBy", "in": "query", "type": "string"},
                    {"name": "sortOrder", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Semesters"],
                "summary": "Create semester",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSemesterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/semesters/{id}": {
            "get": {
                "tags": ["Semesters"],
                "summary": "Get semester with courses and linked ids",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Semesters"],
                "summary": "Update semester",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSemesterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Semesters"],
                "summary": "Delete semester, unlinking neighbors and removing courses",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/semesters/{id}/links": {
            "get": {
                "tags": ["Semesters"],
                "summary": "List linked semesters as full records",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Semesters"],
                "summary": "Link two semesters symmetrically",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LinkSemesterRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/semesters/{id}/links/{linkedId}": {
            "delete": {
                "tags": ["Semesters"],
                "summary": "Remove the link between two semesters",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "linkedId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/semesters/{id}/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List a semester's courses",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Add a course and recompute the semester GPA",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{id}": {
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete a course and recompute the semester GPA",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/semesters/{id}/analytics": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Semester GPA, cumulative GPA, and donut chart data",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/analytics/system": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Runtime metrics snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/semesters/{id}/insight": {
            "post": {
                "tags": ["Insights"],
                "summary": "Ask the AI collaborator about a semester",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/InsightRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings/grading-scheme": {
            "get": {
                "tags": ["Settings"],
                "summary": "Current global grading scheme",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Update the global grading scheme",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateGradingSchemeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Semester": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "gpa": {"type": "number", "x-nullable": true},
                "grading_system": {"type": "string"},
                "last_updated": {"type": "string"},
                "linked_semesters": {"type": "array", "items": {"type": "string"}},
                "courses": {"type": "array", "items": {"$ref": "#/definitions/Course"}}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "semester_id": {"type": "string"},
                "name": {"type": "string"},
                "credit_unit": {"type": "integer", "x-nullable": true},
                "grade_point": {"type": "string", "x-nullable": true},
                "created_at": {"type": "string"}
            }
        },
        "SemesterAnalytics": {
            "type": "object",
            "properties": {
                "semester_id": {"type": "string"},
                "gpa": {"type": "number", "x-nullable": true},
                "cgpa": {"type": "number", "x-nullable": true},
                "donut": {"type": "array", "items": {"$ref": "#/definitions/DonutSlice"}},
                "linked_count": {"type": "integer"},
                "generated_at": {"type": "string"}
            }
        },
        "DonutSlice": {
            "type": "object",
            "properties": {
                "value": {"type": "number"},
                "color": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "Insight": {
            "type": "object",
            "properties": {
                "semester_id": {"type": "string"},
                "reply": {"type": "string"},
                "suggestion": {"type": "string"},
                "generated_at": {"type": "string"}
            }
        },
        "CreateSemesterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "grading_system": {"type": "string"}
            },
            "required": ["name"]
        },
        "UpdateSemesterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "gpa": {"type": "number", "x-nullable": true}
            },
            "required": ["name"]
        },
        "LinkSemesterRequest": {
            "type": "object",
            "properties": {
                "linked_semester_id": {"type": "string"}
            },
            "required": ["linked_semester_id"]
        },
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "credit_unit": {"type": "integer"},
                "grade_point": {"type": "string"}
            },
            "required": ["name"]
        },
        "InsightRequest": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string"}
            },
            "required": ["prompt"]
        },
        "UpdateGradingSchemeRequest": {
            "type": "object",
            "properties": {
                "grading_system": {"type": "string"}
            },
            "required": ["grading_system"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
