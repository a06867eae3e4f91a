package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Control API",
        "description": "Student records: students, courses, classes and roster exports",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student registry and photos"},
        {"name": "Courses", "description": "Course catalog"},
        {"name": "Classes", "description": "Class sections per course, year and semester"},
        {"name": "Reports", "description": "Roster exports"},
        {"name": "System", "description": "Store diagnostics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Store health",
                "responses": {
                    "200": {"description": "Connected", "schema": {"$ref": "#/definitions/HealthResponse"}},
                    "500": {"description": "Disconnected", "schema": {"$ref": "#/definitions/HealthResponse"}}
                }
            }
        },
        "/tables": {
            "get": {
                "tags": ["System"],
                "summary": "List store tables",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TableInfo"}}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students ordered by name",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentDetail"}}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Register student",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "name", "in": "formData", "type": "string", "required": true},
                    {"name": "birth_date", "in": "formData", "type": "string", "format": "date", "required": true},
                    {"name": "address", "in": "formData", "type": "string"},
                    {"name": "phone", "in": "formData", "type": "string"},
                    {"name": "email", "in": "formData", "type": "string"},
                    {"name": "cpf", "in": "formData", "type": "string"},
                    {"name": "rg", "in": "formData", "type": "string"},
                    {"name": "status", "in": "formData", "type": "string", "enum": ["active", "suspended", "graduated"]},
                    {"name": "photo", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreateStudentResponse"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "413": {"description": "Photo too large", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "415": {"description": "Photo is not an accepted image", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "student not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "description": "Replaces every scalar field. The photo changes only when a new one is sent.",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "name", "in": "formData", "type": "string", "required": true},
                    {"name": "birth_date", "in": "formData", "type": "string", "format": "date", "required": true},
                    {"name": "address", "in": "formData", "type": "string"},
                    {"name": "phone", "in": "formData", "type": "string"},
                    {"name": "email", "in": "formData", "type": "string"},
                    {"name": "cpf", "in": "formData", "type": "string"},
                    {"name": "rg", "in": "formData", "type": "string"},
                    {"name": "status", "in": "formData", "type": "string", "enum": ["active", "suspended", "graduated"]},
                    {"name": "photo", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "404": {"description": "student not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes, newest year and semester first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ClassDetail"}}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Register class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreateClassResponse"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "course not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reports/students": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export student roster",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Roster file", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "birth_date": {"type": "string", "format": "date"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "cpf": {"type": "string"},
                "rg": {"type": "string"},
                "photo_path": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "suspended", "graduated"]},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "StudentDetail": {
            "allOf": [
                {"$ref": "#/definitions/Student"},
                {"type": "object", "properties": {"active_enrollments": {"type": "integer"}}}
            ]
        },
        "CreateStudentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "message": {"type": "string"},
                "student": {"$ref": "#/definitions/Student"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "ClassDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "course_id": {"type": "integer"},
                "course_name": {"type": "string"},
                "year": {"type": "integer"},
                "semester": {"type": "integer", "enum": [1, 2]},
                "max_students": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "CreateClassRequest": {
            "type": "object",
            "required": ["course_id", "year", "semester", "max_students"],
            "properties": {
                "name": {"type": "string"},
                "course_id": {"type": "integer"},
                "year": {"type": "integer"},
                "semester": {"type": "integer", "enum": [1, 2]},
                "max_students": {"type": "integer", "minimum": 1, "maximum": 100}
            }
        },
        "CreateClassResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "message": {"type": "string"},
                "class": {"$ref": "#/definitions/ClassDetail"}
            }
        },
        "HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["ok", "error"]},
                "database": {"type": "string", "enum": ["connected", "disconnected"]},
                "message": {"type": "string"},
                "error": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "TableInfo": {
            "type": "object",
            "properties": {
                "table_name": {"type": "string"}
            }
        },
        "MessageBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"}
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
