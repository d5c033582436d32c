package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentListRecipes
	IntentOpenRecipe
	IntentStartCooking
	IntentNext
	IntentBack
	IntentRepeat
	IntentIngredients
	IntentNutrition
	IntentStartTimer
	IntentStopTimer
	IntentToggleLanguage
	IntentStatus
	IntentHistory
	IntentRecook
	IntentQuit
	IntentHelp
	IntentAskQuestion // free-form question sent to the AI assistant
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentListRecipes:
		return "list_recipes"
	case IntentOpenRecipe:
		return "open_recipe"
	case IntentStartCooking:
		return "start_cooking"
	case IntentNext:
		return "next"
	case IntentBack:
		return "back"
	case IntentRepeat:
		return "repeat"
	case IntentIngredients:
		return "ingredients"
	case IntentNutrition:
		return "nutrition"
	case IntentStartTimer:
		return "start_timer"
	case IntentStopTimer:
		return "stop_timer"
	case IntentToggleLanguage:
		return "toggle_language"
	case IntentStatus:
		return "status"
	case IntentHistory:
		return "history"
	case IntentRecook:
		return "recook"
	case IntentQuit:
		return "quit"
	case IntentHelp:
		return "help"
	case IntentAskQuestion:
		return "ask_question"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional context, e.g. recipe number for open
}
