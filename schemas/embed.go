// Package schemas embeds the JSON Schema documents that describe accepted input shapes.
package schemas

import "embed"

// Schema file names
const (
	ResumeData        = "resume_data.schema.json"
	TemplateOverrides = "template_overrides.schema.json"
)

// FS holds every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS
