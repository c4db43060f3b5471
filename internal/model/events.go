package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Game events
	EventPointsAdded     EventType = "points_added"
	EventMoonShot        EventType = "moon_shot"
	EventRoundScoreReset EventType = "round_score_reset"
	EventNextRound       EventType = "next_round_tapped"
	EventPreviousRound   EventType = "previous_round_tapped"
	EventGameOver        EventType = "game_over"
	EventReset           EventType = "reset"

	// Player events
	EventPlayerRenamed EventType = "player_renamed"

	// Settings events
	EventMoonRulesChanged       EventType = "moon_rules_changed"
	EventAccentColorChanged     EventType = "accent_color_changed"
	EventSavePlayerNamesToggled EventType = "save_player_names_toggled"
)

// Event parameter names
const (
	ParamPlayerSeat          = "player_seat"
	ParamPoints              = "points"
	ParamRound               = "round"
	ParamHardReset           = "hard_reset"
	ParamPreviousMoonRule    = "previous_moon_rule"
	ParamSelectedMoonRule    = "selected_moon_rule"
	ParamPreviousAccentColor = "previous_accent_color"
	ParamSelectedAccentColor = "selected_accent_color"
	ParamEnabled             = "enabled"
)

// Event is a named notification emitted around game operations
type Event struct {
	Type      EventType
	Timestamp time.Time
	Params    map[string]string
}
