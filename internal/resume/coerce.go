package resume

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// coerce maps an accepted input document onto the canonical record.
// It never fails: unusable values become zero values.
func coerce(raw map[string]any) types.ResumeData {
	var data types.ResumeData

	if c, ok := raw["contact"].(map[string]any); ok {
		data.Contact = types.Contact{
			Name:     asString(c["name"]),
			Title:    asString(c["title"]),
			Email:    asString(c["email"]),
			Phone:    asString(c["phone"]),
			Location: asString(c["location"]),
			LinkedIn: asString(c["linkedin"]),
			Website:  asString(c["website"]),
		}
	}

	data.Summary = asSummary(raw["summary"])

	for _, obj := range asObjectList(raw["experience"]) {
		data.Experience = append(data.Experience, types.Experience{
			Title:       asString(obj["title"]),
			Company:     asString(obj["company"]),
			StartDate:   asString(obj["startDate"]),
			EndDate:     asString(obj["endDate"]),
			Current:     asBool(obj["current"]),
			Description: asString(obj["description"]),
		})
	}

	for _, obj := range asObjectList(raw["education"]) {
		data.Education = append(data.Education, types.Education{
			Degree:      asString(obj["degree"]),
			School:      asString(obj["school"]),
			Year:        asString(obj["year"]),
			StartYear:   asString(obj["startYear"]),
			EndYear:     asString(obj["endYear"]),
			Current:     asBool(obj["current"]),
			Description: asString(obj["description"]),
		})
	}

	data.Skills = asStringList(raw["skills"])
	data.Languages = asStringList(raw["languages"])
	data.Certifications = asStringList(raw["certifications"])

	for k, v := range raw {
		if types.IsResumeField(k) {
			continue
		}
		if data.Extra == nil {
			data.Extra = make(map[string]any)
		}
		data.Extra[k] = v
	}

	return data
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "1":
			return true
		}
		return false
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return false
	}
}

// asObjectList accepts a single object or a list of objects
func asObjectList(v any) []map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return []map[string]any{t}
	case []map[string]any:
		return t
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, item := range t {
			if obj, ok := item.(map[string]any); ok {
				out = append(out, obj)
			}
		}
		return out
	default:
		return nil
	}
}

// asStringList accepts a comma-separated string or a list of strings
func asStringList(v any) []string {
	var items []string
	switch t := v.(type) {
	case string:
		return types.SplitList(t)
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
	case []any:
		for _, item := range t {
			if s := asString(item); s != "" {
				items = append(items, s)
			}
		}
	}
	return items
}

func asSummary(v any) types.Summary {
	switch t := v.(type) {
	case string:
		return types.Summary{Content: strings.TrimSpace(t)}
	case map[string]any:
		return types.Summary{Content: asString(t["content"])}
	default:
		return types.Summary{}
	}
}
