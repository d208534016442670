package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Curriculum API",
        "description": "Curriculum, learning outcome, indicator and course management",
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
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the JWT token."
        }
    },
    "tags": [
        {"name": "Authentication", "description": "Login, logout and account registration"},
        {"name": "Kurikulum", "description": "Curriculum management"},
        {"name": "CPL", "description": "Learning outcome management"},
        {"name": "Indikator", "description": "Outcome indicator management"},
        {"name": "Matkul", "description": "Course management and outcome links"},
        {"name": "Users", "description": "User directory (department head only)"},
        {"name": "Cocktails", "description": "External cocktail catalogue pass-through"}
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
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Revoke current token",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Logged out"},
                    "400": {"description": "Token already revoked"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register user (kadep only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error or duplicate user_id"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/kurikulum": {
            "get": {
                "tags": ["Kurikulum"],
                "summary": "List curricula",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Kurikulum"],
                "summary": "Create curriculum",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCurriculumRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error or duplicate name"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/kurikulum/{id_kurikulum}": {
            "get": {
                "tags": ["Kurikulum"],
                "summary": "Get curriculum with its CPL list",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Malformed UUID"},
                    "404": {"description": "Not found"}
                }
            },
            "patch": {
                "tags": ["Kurikulum"],
                "summary": "Update curriculum",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCurriculumRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation error"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Kurikulum"],
                "summary": "Delete curriculum and all children",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/kurikulum/{id_kurikulum}/export": {
            "get": {
                "tags": ["Kurikulum"],
                "summary": "Export outcome matrix as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unknown format"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/cpl/{id_kurikulum}": {
            "post": {
                "tags": ["CPL"],
                "summary": "Create learning outcome",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCPLRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad code format or duplicate"},
                    "404": {"description": "Curriculum not found"}
                }
            }
        },
        "/cpl/{id_kurikulum}/{id_cpl}": {
            "get": {
                "tags": ["CPL"],
                "summary": "Get learning outcome detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"},
                    {"name": "id_cpl", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "patch": {
                "tags": ["CPL"],
                "summary": "Update learning outcome description",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"},
                    {"name": "id_cpl", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCPLRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Empty description"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["CPL"],
                "summary": "Delete learning outcome and children",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"},
                    {"name": "id_cpl", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/indikator/{id_kurikulum}/{id_cpl}": {
            "post": {
                "tags": ["Indikator"],
                "summary": "Create outcome indicator",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"},
                    {"name": "id_cpl", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateIndicatorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad code format or duplicate"},
                    "404": {"description": "CPL not found"}
                }
            }
        },
        "/indikator/{id_kurikulum}/{id_cpl}/{id_indikator}": {
            "patch": {
                "tags": ["Indikator"],
                "summary": "Update indicator, optionally moving it to another CPL",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"},
                    {"name": "id_cpl", "in": "path", "required": true, "type": "string"},
                    {"name": "id_indikator", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateIndicatorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Destination already exists"},
                    "404": {"description": "Indicator or target CPL not found"}
                }
            },
            "delete": {
                "tags": ["Indikator"],
                "summary": "Delete outcome indicator",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_kurikulum", "in": "path", "required": true, "type": "string"},
                    {"name": "id_cpl", "in": "path", "required": true, "type": "string"},
                    {"name": "id_indikator", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/matkul": {
            "get": {
                "tags": ["Matkul"],
                "summary": "List courses with outcome links",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Matkul"],
                "summary": "Create course with outcome links",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Duplicate course code"},
                    "404": {"description": "Linked CPL not found"}
                }
            }
        },
        "/matkul/{id_matkul}": {
            "get": {
                "tags": ["Matkul"],
                "summary": "Get course detail with CPL and indicators",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_matkul", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "patch": {
                "tags": ["Matkul"],
                "summary": "Update course; a supplied cpl_list replaces all links",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_matkul", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation error"},
                    "404": {"description": "Course or linked CPL not found"}
                }
            },
            "delete": {
                "tags": ["Matkul"],
                "summary": "Delete course and its outcome links",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id_matkul", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/users/{user_id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "user_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Users"],
                "summary": "Update user",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "user_id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation error"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete user",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "user_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No content"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/cocktails": {
            "get": {
                "tags": ["Cocktails"],
                "summary": "Search cocktails by name",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Upstream failure"}
                }
            }
        },
        "/api/cocktails/{cocktail_id}": {
            "get": {
                "tags": ["Cocktails"],
                "summary": "Get cocktail by id",
                "parameters": [
                    {"name": "cocktail_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Upstream failure"}
                }
            }
        },
        "/api/cocktails/by-letter/{letter}": {
            "get": {
                "tags": ["Cocktails"],
                "summary": "List cocktails by first letter",
                "parameters": [
                    {"name": "letter", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Not a single letter"},
                    "500": {"description": "Upstream failure"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["user_id", "password"],
            "properties": {
                "user_id": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "required": ["user_id", "nama", "password", "role"],
            "properties": {
                "user_id": {"type": "string", "maxLength": 25},
                "nama": {"type": "string"},
                "password": {"type": "string", "minLength": 8},
                "role": {"type": "string", "enum": ["kadep", "dosen"]}
            }
        },
        "UpdateUserRequest": {
            "type": "object",
            "properties": {
                "nama": {"type": "string"},
                "role": {"type": "string", "enum": ["kadep", "dosen"]}
            }
        },
        "CreateCurriculumRequest": {
            "type": "object",
            "required": ["nama_kurikulum", "status_kurikulum"],
            "properties": {
                "nama_kurikulum": {"type": "string"},
                "revisi": {"type": "string"},
                "status_kurikulum": {"type": "string", "enum": ["aktif", "nonaktif"]}
            }
        },
        "UpdateCurriculumRequest": {
            "type": "object",
            "properties": {
                "nama_kurikulum": {"type": "string"},
                "revisi": {"type": "string"},
                "status_kurikulum": {"type": "string", "enum": ["aktif", "nonaktif"]}
            }
        },
        "CreateCPLRequest": {
            "type": "object",
            "required": ["id_cpl", "deskripsi"],
            "properties": {
                "id_cpl": {"type": "string", "example": "CPL-01"},
                "deskripsi": {"type": "string"}
            }
        },
        "UpdateCPLRequest": {
            "type": "object",
            "properties": {
                "deskripsi": {"type": "string"}
            }
        },
        "CreateIndicatorRequest": {
            "type": "object",
            "required": ["id_indikator", "deskripsi"],
            "properties": {
                "id_indikator": {"type": "string", "example": "IND-01-01"},
                "deskripsi": {"type": "string"}
            }
        },
        "UpdateIndicatorRequest": {
            "type": "object",
            "properties": {
                "deskripsi": {"type": "string"},
                "id_cpl_baru": {"type": "string", "example": "CPL-02"}
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "required": ["id_matkul", "mata_kuliah", "sks", "semester"],
            "properties": {
                "id_matkul": {"type": "string", "example": "MK-001"},
                "mata_kuliah": {"type": "string"},
                "sks": {"type": "integer"},
                "semester": {"type": "integer"},
                "cpl_list": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/CourseOutcomeInput"}
                }
            }
        },
        "UpdateCourseRequest": {
            "type": "object",
            "properties": {
                "mata_kuliah": {"type": "string"},
                "sks": {"type": "integer"},
                "semester": {"type": "integer"},
                "cpl_list": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/CourseOutcomeInput"}
                }
            }
        },
        "CourseOutcomeInput": {
            "type": "object",
            "required": ["id_kurikulum", "id_cpl"],
            "properties": {
                "id_kurikulum": {"type": "string"},
                "id_cpl": {"type": "string"}
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
