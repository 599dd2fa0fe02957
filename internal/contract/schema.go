// Package contract publishes JSON schemas for the payloads the
// dashboard renderer consumes, so the frontend build can validate its
// fixtures against the same shapes this pipeline emits.
package contract

import (
	"github.com/invopop/jsonschema"

	"github.com/Prosono/HomeGPT/internal/dto"
)

func generateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// HeatmapViewSchema describes the heatmap payload.
func HeatmapViewSchema() *jsonschema.Schema {
	return generateSchema[dto.Heatmap]()
}

// DigestViewSchema describes the preview card payload.
func DigestViewSchema() *jsonschema.Schema {
	return generateSchema[dto.Digest]()
}
