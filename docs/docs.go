// Package docs embeds the OpenAPI description of the HTTP API.
package docs

import _ "embed"

// OpenAPISpec is served at /swagger/openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
