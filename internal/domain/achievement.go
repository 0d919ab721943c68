package domain

import "fmt"

type AchievementIcon string

const (
	IconTrophy      AchievementIcon = "trophy"
	IconCertificate AchievementIcon = "certificate"
	IconBriefcase   AchievementIcon = "briefcase"
)

func ParseAchievementIcon(s string) (AchievementIcon, error) {
	switch AchievementIcon(s) {
	case IconTrophy, IconCertificate, IconBriefcase:
		return AchievementIcon(s), nil
	}
	return "", fmt.Errorf("unknown achievement icon %q", s)
}

// Achievement is one entry of the experience timeline. Date is a free-text
// label ("2024 – Ongoing") and is never parsed.
type Achievement struct {
	ID           string
	Title        string
	Organization string
	Date         string
	Description  string
	Icon         AchievementIcon
}
