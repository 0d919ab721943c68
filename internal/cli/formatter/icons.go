package formatter

import (
	"strings"

	"github.com/amandev/folio/internal/domain"
)

// Icon names a glyph used on cards, the skills grid and the timeline.
type Icon string

const (
	IconShield      Icon = "shield"
	IconDatabase    Icon = "database"
	IconLock        Icon = "lock"
	IconTerminal    Icon = "terminal"
	IconCPU         Icon = "cpu"
	IconCode        Icon = "code"
	IconServer      Icon = "server"
	IconWrench      Icon = "wrench"
	IconTrophy      Icon = "trophy"
	IconCertificate Icon = "certificate"
	IconBriefcase   Icon = "briefcase"
)

var glyphs = map[Icon]string{
	IconShield:      "⛨",
	IconDatabase:    "⛁",
	IconLock:        "⚿",
	IconTerminal:    ">_",
	IconCPU:         "▣",
	IconCode:        "</>",
	IconServer:      "☰",
	IconWrench:      "⚙",
	IconTrophy:      "♛",
	IconCertificate: "✪",
	IconBriefcase:   "▤",
}

// Glyph returns the terminal glyph for the icon.
func (i Icon) Glyph() string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return "•"
}

// ProjectIcon picks a card icon from keywords in the slug. The first
// matching rule wins, so a slug containing both "secure" and "password"
// gets the shield.
func ProjectIcon(slug string) Icon {
	switch {
	case strings.Contains(slug, "safe"), strings.Contains(slug, "secure"):
		return IconShield
	case strings.Contains(slug, "cloud"):
		return IconDatabase
	case strings.Contains(slug, "password"):
		return IconLock
	case strings.Contains(slug, "spam"):
		return IconTerminal
	}
	return IconCPU
}

func AchievementIcon(icon domain.AchievementIcon) Icon {
	switch icon {
	case domain.IconTrophy:
		return IconTrophy
	case domain.IconCertificate:
		return IconCertificate
	}
	return IconBriefcase
}

func CategoryIcon(c domain.SkillCategory) Icon {
	switch c {
	case domain.SkillSecurity:
		return IconShield
	case domain.SkillFrontend:
		return IconCode
	case domain.SkillBackend:
		return IconServer
	}
	return IconWrench
}
