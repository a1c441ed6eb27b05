// Package docs contiene el documento OpenAPI del API (formato swag).
// Se regenera con: swag init -g cmd/api/main.go -o internal/docs
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
        "/animals/list": {
            "get": {
                "tags": [
                    "animals"
                ],
                "summary": "Listar animales",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/animals.animalResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/animals/{id}": {
            "get": {
                "tags": [
                    "animals"
                ],
                "summary": "Obtener animal por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del animal",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/add": {
            "post": {
                "tags": [
                    "animals"
                ],
                "summary": "Crear animal",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Datos del animal",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.createAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/update/{id}": {
            "put": {
                "tags": [
                    "animals"
                ],
                "summary": "Actualizar animal (parcial)",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del animal",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.updateAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/deactivate/{id}": {
            "post": {
                "tags": [
                    "animals"
                ],
                "summary": "Dar de baja un animal (soft delete)",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del animal",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/delete/{id}": {
            "delete": {
                "tags": [
                    "animals"
                ],
                "summary": "Borrar animal (hard delete)",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del animal",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cares/list": {
            "get": {
                "tags": [
                    "cares"
                ],
                "summary": "Listar cuidados",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/cares.careResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cares/by-id/{id}": {
            "get": {
                "tags": [
                    "cares"
                ],
                "summary": "Obtener cuidado por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del cuidado",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/cares.careResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cares/add": {
            "post": {
                "tags": [
                    "cares"
                ],
                "summary": "Crear cuidado",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Datos del cuidado",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/cares.createCareRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/cares.careResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cares/update/{id}": {
            "put": {
                "tags": [
                    "cares"
                ],
                "summary": "Actualizar cuidado (parcial)",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del cuidado",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/cares.updateCareRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/cares.careResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cares/delete/{id}": {
            "delete": {
                "tags": [
                    "cares"
                ],
                "summary": "Borrar cuidado",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del cuidado",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animal-cares/list": {
            "get": {
                "tags": [
                    "animal-cares"
                ],
                "summary": "Listar relaciones animal-cuidado",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/animalcares.animalCareResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animal-cares/by-id/{id}": {
            "get": {
                "tags": [
                    "animal-cares"
                ],
                "summary": "Obtener relación por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la relación",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animalcares.animalCareResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animal-cares/by-animal/by-id/{id}": {
            "get": {
                "tags": [
                    "animal-cares"
                ],
                "summary": "Primera relación de un animal",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del animal",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animalcares.animalCareResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animal-cares/by-animal/list/{id}": {
            "get": {
                "tags": [
                    "animal-cares"
                ],
                "summary": "Todas las relaciones de un animal",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del animal",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/animalcares.animalCareResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animal-cares/add": {
            "post": {
                "tags": [
                    "animal-cares"
                ],
                "summary": "Registrar cuidado para un animal",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Relación",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animalcares.createAnimalCareRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/animalcares.animalCareResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animal-cares/update/{id}": {
            "put": {
                "tags": [
                    "animal-cares"
                ],
                "summary": "Actualizar relación (parcial)",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la relación",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animalcares.updateAnimalCareRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animalcares.animalCareResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animal-cares/delete/{id}": {
            "delete": {
                "tags": [
                    "animal-cares"
                ],
                "summary": "Borrar relación",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la relación",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "animal_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "specie": {
                    "type": "string"
                },
                "habitat": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "country_of_origin": {
                    "type": "string"
                },
                "date_of_birth": {
                    "type": "string",
                    "format": "date"
                },
                "is_active": {
                    "type": "boolean"
                }
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "specie": {
                    "type": "string"
                },
                "habitat": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "country_of_origin": {
                    "type": "string"
                },
                "date_of_birth": {
                    "type": "string",
                    "description": "DD/MM/YYYY o YYYY-MM-DD"
                }
            }
        },
        "animals.updateAnimalRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "specie": {
                    "type": "string"
                },
                "habitat": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "country_of_origin": {
                    "type": "string"
                },
                "date_of_birth": {
                    "type": "string"
                }
            }
        },
        "cares.careResponse": {
            "type": "object",
            "properties": {
                "cares_id": {
                    "type": "integer"
                },
                "type_of_care": {
                    "type": "string"
                },
                "frequency": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "cares.createCareRequest": {
            "type": "object",
            "properties": {
                "type_of_care": {
                    "type": "string"
                },
                "frequency": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "cares.updateCareRequest": {
            "type": "object",
            "properties": {
                "type_of_care": {
                    "type": "string"
                },
                "frequency": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "animalcares.animalCareResponse": {
            "type": "object",
            "properties": {
                "animal_care_id": {
                    "type": "integer"
                },
                "date_of_care": {
                    "type": "string",
                    "format": "date"
                },
                "fk_cares_cares_id": {
                    "type": "integer"
                },
                "fk_animal_animal_id": {
                    "type": "integer"
                }
            }
        },
        "animalcares.createAnimalCareRequest": {
            "type": "object",
            "properties": {
                "date_of_care": {
                    "type": "string"
                },
                "fk_cares_cares_id": {
                    "type": "integer"
                },
                "fk_animal_animal_id": {
                    "type": "integer"
                }
            }
        },
        "animalcares.updateAnimalCareRequest": {
            "type": "object",
            "properties": {
                "date_of_care": {
                    "type": "string"
                },
                "fk_cares_cares_id": {
                    "type": "integer"
                },
                "fk_animal_animal_id": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Zoo Inventory API",
	Description:      "Inventario del zoológico: animales, cuidados y cuidados por animal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
