// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
)

// ResumeData is the canonical, normalized resume record consumed by the document templates
type ResumeData struct {
	Contact        Contact      `json:"contact"`
	Summary        Summary      `json:"summary"`
	Experience     []Experience `json:"experience,omitempty" validate:"dive"`
	Education      []Education  `json:"education,omitempty" validate:"dive"`
	Skills         []string     `json:"skills,omitempty"`
	Languages      []string     `json:"languages,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`

	// Extra holds unrecognized top-level keys. They are written back at the top level on marshal.
	Extra map[string]any `json:"-"`
}

// Contact holds the candidate's identity and contact details
type Contact struct {
	Name     string `json:"name" validate:"required"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Summary is the professional summary, always stored in its object form
type Summary struct {
	Content string `json:"content"`
}

// IsEmpty reports whether the summary has no visible text
func (s Summary) IsEmpty() bool {
	return strings.TrimSpace(s.Content) == ""
}

// Experience represents one position held by the candidate
type Experience struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education represents one degree or program
type Education struct {
	Degree      string `json:"degree" validate:"required"`
	School      string `json:"school" validate:"required"`
	Year        string `json:"year,omitempty"`
	StartYear   string `json:"startYear,omitempty"`
	EndYear     string `json:"endYear,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// resumeFields lists the top-level keys owned by ResumeData; everything else is passthrough
var resumeFields = map[string]bool{
	"contact":        true,
	"summary":        true,
	"experience":     true,
	"education":      true,
	"skills":         true,
	"languages":      true,
	"certifications": true,
}

// IsResumeField reports whether key is one of the recognized top-level resume keys
func IsResumeField(key string) bool {
	return resumeFields[key]
}

// MarshalJSON writes the known fields plus any passthrough keys at the top level
func (r ResumeData) MarshalJSON() ([]byte, error) {
	type plain ResumeData
	base, err := json.Marshal(plain(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return base, nil
	}

	merged := make(map[string]any, len(r.Extra)+len(resumeFields))
	for k, v := range r.Extra {
		if !IsResumeField(k) {
			merged[k] = v
		}
	}
	var known map[string]json.RawMessage
	if err := json.Unmarshal(base, &known); err != nil {
		return nil, err
	}
	for k, v := range known {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// SplitList splits a comma-separated string into trimmed, non-empty items, keeping their order
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
