package model

import "strings"

// MoonRule selects how a successful moon shot is scored
type MoonRule string

const (
	MoonRuleOld MoonRule = "Old" // Every other player takes 26
	MoonRuleNew MoonRule = "New" // Shooter takes -26
)

// MoonRules lists the rules in display order
var MoonRules = []MoonRule{MoonRuleOld, MoonRuleNew}

// ParseMoonRule converts a case-insensitive name into a MoonRule
func ParseMoonRule(s string) (MoonRule, error) {
	for _, r := range MoonRules {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", ErrInvalidMoonRule
}

// Description explains the rule in one line
func (r MoonRule) Description() string {
	if r == MoonRuleNew {
		return "The shooter subtracts 26 points"
	}
	return "Every other player takes 26 points"
}

// AccentColor is the cosmetic theme of the scoreboard
type AccentColor string

const (
	AccentRed   AccentColor = "Red"
	AccentBlue  AccentColor = "Blue"
	AccentGreen AccentColor = "Green"
)

// AccentColors lists the colors in display order
var AccentColors = []AccentColor{AccentRed, AccentBlue, AccentGreen}

// ParseAccentColor converts a case-insensitive name into an AccentColor
func ParseAccentColor(s string) (AccentColor, error) {
	for _, c := range AccentColors {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", ErrInvalidAccentColor
}

// Settings holds the persisted user preferences
type Settings struct {
	MoonRule        MoonRule    `json:"moon_rule"`
	AccentColor     AccentColor `json:"accent_color"`
	SavePlayerNames bool        `json:"save_player_names"`
}

// DefaultSettings returns the values written on first launch
func DefaultSettings() Settings {
	return Settings{
		MoonRule:        MoonRuleOld,
		AccentColor:     AccentRed,
		SavePlayerNames: true,
	}
}
