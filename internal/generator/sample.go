package generator

// SampleData returns the built-in resume used by Preview. Each call returns a fresh value.
func SampleData() map[string]any {
	return map[string]any{
		"contact": map[string]any{
			"name":     "Alex Morgan",
			"title":    "Senior Software Engineer",
			"email":    "alex.morgan@example.com",
			"phone":    "+1 (555) 010-2030",
			"location": "Portland, OR",
			"linkedin": "linkedin.com/in/alexmorgan",
		},
		"summary": "Backend engineer with ten years of experience building payment and " +
			"document platforms. Comfortable owning services from design to on-call.",
		"experience": []any{
			map[string]any{
				"title":     "Senior Software Engineer",
				"company":   "Northwind Payments",
				"startDate": "2020",
				"current":   true,
				"description": "Led the rewrite of the settlement service, cutting batch time from 4 hours to 25 minutes\n" +
					"Designed the idempotency layer used by every public API\n" +
					"Mentored five engineers through their first on-call rotations",
			},
			map[string]any{
				"title":     "Software Engineer",
				"company":   "Contoso Docs",
				"startDate": "2016",
				"endDate":   "2020",
				"description": "Built the PDF rendering pipeline serving 2M documents a month\n" +
					"Introduced contract tests between the editor and storage teams",
			},
		},
		"education": []any{
			map[string]any{
				"degree":    "B.S. Computer Science",
				"school":    "Oregon State University",
				"startYear": "2010",
				"endYear":   "2014",
			},
		},
		"skills":         []any{"Go", "PostgreSQL", "Kafka", "Kubernetes", "gRPC", "Terraform"},
		"languages":      []any{"English", "Spanish"},
		"certifications": []any{"AWS Certified Solutions Architect"},
	}
}
