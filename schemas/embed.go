// Package schemas holds the JSON Schema files describing the resume document.
package schemas

import _ "embed"

// Resume is the JSON Schema of the resume document.
//
//go:embed resume.schema.json
var Resume []byte
