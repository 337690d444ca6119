// Package docs registra la especificación OpenAPI de la API en el runtime de swag.
// swagger.json se mantiene a partir de las anotaciones de los handlers y se sirve tal cual
// en /docs (UI) y /api/openapi.json.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerJSON string

// SwaggerInfo metadatos de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vitrinas API",
	Description:      "Inventario y ventas de una red de vitrinas, con semáforo de stock.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  swaggerJSON,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
