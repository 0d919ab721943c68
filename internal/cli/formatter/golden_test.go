package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/amandev/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenDir := filepath.Join("testdata")
	goldenPath := filepath.Join(goldenDir, name+".golden")

	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll(goldenDir, 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func goldenCaseStudy() *domain.CaseStudy {
	return &domain.CaseStudy{
		ID:                 "7",
		Slug:               "vault-scanner",
		Title:              "Vault Scanner",
		Tagline:            "Secret Detection for Git History",
		Problem:            "Credentials leak into repositories and stay in history long after removal.",
		WhyFails:           []string{"Scanners only look at the latest commit", "Regex rules drown reviewers in noise"},
		Solution:           "Vault Scanner walks every commit and scores findings by entropy and context.",
		Workflow:           []string{"Clone the repository mirror", "Walk commits oldest first", "Score and report findings"},
		TechnicalDecisions: []string{"Shannon entropy over fixed regexes", "Streaming diff parser"},
		Features:           &domain.FeatureSection{Title: "Security Focus", Items: []string{"No secrets leave the machine"}},
		Outcomes:           []string{"Found 12 live keys in a test corpus"},
		Learnings:          []string{"History is the real attack surface"},
		TechStack:          []string{"Go", "libgit2"},
		RepoURL:            "https://github.com/example/vault-scanner",
		DemoURL:            "https://vault.example.dev",
		ImagePlaceholder:   "/placeholder.svg",
		Featured:           true,
	}
}

func TestCaseStudyMarkdown_Golden_Full(t *testing.T) {
	goldenTest(t, "casestudy_full", CaseStudyMarkdown(goldenCaseStudy()))
}

func TestCaseStudyMarkdown_Golden_Minimal(t *testing.T) {
	cs := &domain.CaseStudy{
		Slug:     "tiny",
		Title:    "Tiny",
		Tagline:  "Just enough",
		Problem:  "Small problem.",
		Solution: "Small fix.",
	}
	goldenTest(t, "casestudy_minimal", CaseStudyMarkdown(cs))
}
