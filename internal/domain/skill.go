package domain

import "fmt"

type SkillCategory string

const (
	SkillSecurity SkillCategory = "Cybersecurity"
	SkillFrontend SkillCategory = "Frontend"
	SkillBackend  SkillCategory = "Backend"
	SkillTools    SkillCategory = "DevOps & Tools"
)

// SkillCategories is the fixed display order of the skills grid.
var SkillCategories = []SkillCategory{
	SkillSecurity,
	SkillFrontend,
	SkillBackend,
	SkillTools,
}

// ParseSkillCategory accepts either the display label or its short key
// (security, frontend, backend, tools).
func ParseSkillCategory(s string) (SkillCategory, error) {
	switch s {
	case string(SkillSecurity), "security":
		return SkillSecurity, nil
	case string(SkillFrontend), "frontend":
		return SkillFrontend, nil
	case string(SkillBackend), "backend":
		return SkillBackend, nil
	case string(SkillTools), "tools":
		return SkillTools, nil
	}
	return "", fmt.Errorf("unknown skill category %q", s)
}

// Key returns the short, stable key used in content files.
func (c SkillCategory) Key() string {
	switch c {
	case SkillSecurity:
		return "security"
	case SkillFrontend:
		return "frontend"
	case SkillBackend:
		return "backend"
	case SkillTools:
		return "tools"
	}
	return string(c)
}

type Skill struct {
	Name      string
	Category  SkillCategory
	Highlight bool
}
