package menu

import "fmt"

// Screen identifiers of the bundled menu tree.
const (
	RootID       ID = "main"
	SettingsID   ID = "settings"
	AudioID      ID = "settings:audio"
	ControlsID   ID = "settings:controls"
	DifficultyID ID = "settings:difficulty"
)

// Action identifiers of the bundled menu tree.
const (
	ActionPlay        = "play"
	ActionQuit        = "quit"
	ActionMute        = "audio:mute"
	ActionUnmute      = "audio:unmute"
	ActionSensitivity = "controls:sensitivity"
	ActionDifficulty  = "difficulty"
)

// BuildRegistry constructs the bundled game style menu tree.
func BuildRegistry() *Registry {
	root := NewNode(RootID, "Main Menu",
		ActionItem(ActionPlay, "Play", nil),
		SubmenuItem(SettingsID, "Settings"),
		ActionItem(ActionQuit, "Quit", nil),
	)
	settings := NewNode(SettingsID, "",
		SubmenuItem(AudioID, "Audio"),
		SubmenuItem(ControlsID, "Controls"),
		SubmenuItem(DifficultyID, "Difficulty"),
	)
	audio := NewNode(AudioID, "",
		ActionItem(ActionMute, "Mute", true),
		ActionItem(ActionUnmute, "Unmute", false),
	)
	controls := NewNode(ControlsID, "",
		Item{ID: "low", Label: "Stick sensitivity: low", Action: &Action{ID: ActionSensitivity, Payload: float32(0.35)}},
		Item{ID: "medium", Label: "Stick sensitivity: medium", Action: &Action{ID: ActionSensitivity, Payload: float32(0.20)}},
		Item{ID: "high", Label: "Stick sensitivity: high", Action: &Action{ID: ActionSensitivity, Payload: float32(0.10)}},
	)
	difficulty := NewNode(DifficultyID, "",
		Item{ID: "easy", Label: "Easy", Action: &Action{ID: ActionDifficulty, Payload: "easy"}},
		Item{ID: "normal", Label: "Normal", Action: &Action{ID: ActionDifficulty, Payload: "normal"}},
		Item{ID: "hard", Label: "Hard", Action: &Action{ID: ActionDifficulty, Payload: "hard"}},
	)
	return NewRegistry(root, settings, audio, controls, difficulty)
}

// DefaultHandler maps the bundled actions onto ActionResult events.
func DefaultHandler(sel Selection) interface{} {
	action := sel.Item.Action
	if action == nil {
		return nil
	}
	switch action.ID {
	case ActionPlay:
		return ActionResult{ID: action.ID, Info: "Starting game", Quit: true}
	case ActionQuit:
		return ActionResult{ID: action.ID, Info: "Goodbye", Quit: true}
	case ActionMute, ActionUnmute:
		muted, _ := action.Payload.(bool)
		return ActionResult{ID: action.ID, Info: fmt.Sprintf("Muted: %t", muted)}
	case ActionSensitivity:
		threshold, ok := action.Payload.(float32)
		if !ok {
			return ActionResult{ID: action.ID, Err: fmt.Errorf("sensitivity %s: payload %T is not a threshold", sel.Item.ID, action.Payload)}
		}
		return ActionResult{ID: action.ID, Info: fmt.Sprintf("Stick threshold %.2f", threshold), StickThreshold: threshold}
	case ActionDifficulty:
		return ActionResult{ID: action.ID, Info: fmt.Sprintf("Difficulty %v", action.Payload)}
	}
	return ActionResult{ID: action.ID, Err: fmt.Errorf("no handler for action %s", action.ID)}
}
