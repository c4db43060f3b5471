package persistence

import "fmt"

// Store keys, shared with earlier releases of the app
const (
	initialSetupKey        = "InitialSetup"
	moonRuleKey            = "MoonRules"
	savePlayerNamesKey     = "SavePlayerNames"
	selectedAccentColorKey = "SelectedAccentColor"
	roundKey               = "Round"
)

// playerNameKey returns the key for a seat's display name
func playerNameKey(seat int) string {
	return fmt.Sprintf("PlayerName%d", seat)
}

// playerScoresKey returns the key for a seat's JSON score ledger
func playerScoresKey(seat int) string {
	return fmt.Sprintf("PlayerScores%d", seat)
}

// playerIDKey returns the key for a seat's stable player ID
func playerIDKey(seat int) string {
	return fmt.Sprintf("PlayerID%d", seat)
}
