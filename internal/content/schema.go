package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a content file. YAML and JSON share the
// same field names.
type Document struct {
	Profile      ProfileDoc       `yaml:"profile" json:"profile"`
	Skills       []SkillDoc       `yaml:"skills" json:"skills"`
	CaseStudies  []CaseStudyDoc   `yaml:"case_studies" json:"case_studies"`
	Achievements []AchievementDoc `yaml:"achievements" json:"achievements"`
}

type ProfileDoc struct {
	Name     string     `yaml:"name" json:"name"`
	Role     string     `yaml:"role,omitempty" json:"role,omitempty"`
	Badge    string     `yaml:"badge,omitempty" json:"badge,omitempty"`
	Headline []string   `yaml:"headline" json:"headline"`
	Subtext  string     `yaml:"subtext,omitempty" json:"subtext,omitempty"`
	About    AboutDoc   `yaml:"about" json:"about"`
	Contact  ContactDoc `yaml:"contact" json:"contact"`
}

type AboutDoc struct {
	Title      string   `yaml:"title" json:"title"`
	Subtitle   string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
	FocusAreas []string `yaml:"focus_areas,omitempty" json:"focus_areas,omitempty"`
}

type ContactDoc struct {
	Title    string   `yaml:"title" json:"title"`
	Pitch    []string `yaml:"pitch,omitempty" json:"pitch,omitempty"`
	Email    string   `yaml:"email,omitempty" json:"email,omitempty"`
	LinkedIn string   `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   string   `yaml:"github,omitempty" json:"github,omitempty"`
}

type SkillDoc struct {
	Name      string `yaml:"name" json:"name"`
	Category  string `yaml:"category" json:"category"`
	Highlight bool   `yaml:"highlight,omitempty" json:"highlight,omitempty"`
}

type FeatureDoc struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

type CaseStudyDoc struct {
	ID                 string      `yaml:"id,omitempty" json:"id,omitempty"`
	Slug               string      `yaml:"slug" json:"slug"`
	Title              string      `yaml:"title" json:"title"`
	Tagline            string      `yaml:"tagline" json:"tagline"`
	Problem            string      `yaml:"problem" json:"problem"`
	WhyFails           []string    `yaml:"why_fails" json:"why_fails"`
	Solution           string      `yaml:"solution" json:"solution"`
	Workflow           []string    `yaml:"workflow" json:"workflow"`
	TechnicalDecisions []string    `yaml:"technical_decisions" json:"technical_decisions"`
	Features           *FeatureDoc `yaml:"features,omitempty" json:"features,omitempty"`
	Outcomes           []string    `yaml:"outcomes" json:"outcomes"`
	Learnings          []string    `yaml:"learnings" json:"learnings"`
	TechStack          []string    `yaml:"tech_stack" json:"tech_stack"`
	RepoURL            string      `yaml:"repo_url,omitempty" json:"repo_url,omitempty"`
	DemoURL            string      `yaml:"demo_url,omitempty" json:"demo_url,omitempty"`
	Image              string      `yaml:"image,omitempty" json:"image,omitempty"`
	Featured           bool        `yaml:"featured" json:"featured"`
}

type AchievementDoc struct {
	ID           string `yaml:"id,omitempty" json:"id,omitempty"`
	Title        string `yaml:"title" json:"title"`
	Organization string `yaml:"organization" json:"organization"`
	Date         string `yaml:"date" json:"date"`
	Description  string `yaml:"description" json:"description"`
	Icon         string `yaml:"icon" json:"icon"`
}

// Format identifies a content encoding.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatBundle Format = "bundle"
)

// ParseFormat accepts yaml, yml, json, db and bundle.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "db", "sqlite", "bundle":
		return FormatBundle, nil
	}
	return "", fmt.Errorf("unknown content format %q (valid: yaml, json, bundle)", s)
}

// FormatForPath infers the format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer content format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Decode parses a YAML or JSON document. Unknown fields are rejected so
// typos in content files surface instead of silently dropping data.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parsing yaml content: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing json content: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot decode %s content from bytes", format)
	}
	return &doc, nil
}

// Encode writes doc to w as YAML (two-space indent) or indented JSON.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml content: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json content: %w", err)
		}
		return nil
	}
	return fmt.Errorf("cannot encode %s content as a stream", format)
}
