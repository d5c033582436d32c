package command

import (
	"testing"

	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
)

func TestParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewParser(log)

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Navigation
		{"next", domain.IntentNext, ""},
		{"done", domain.IntentNext, ""},
		{"n", domain.IntentNext, ""},
		{"back", domain.IntentBack, ""},
		{"prev", domain.IntentBack, ""},
		{"repeat", domain.IntentRepeat, ""},
		{"again", domain.IntentRepeat, ""},

		// Recipe views
		{"ingredients", domain.IntentIngredients, ""},
		{"nutrition", domain.IntentNutrition, ""},

		// Timer
		{"timer", domain.IntentStartTimer, ""},
		{"start timer", domain.IntentStartTimer, ""},
		{"stop", domain.IntentStopTimer, ""},
		{"stop timer", domain.IntentStopTimer, ""},

		// Language
		{"lang", domain.IntentToggleLanguage, ""},
		{"hindi", domain.IntentToggleLanguage, ""},
		{"english", domain.IntentToggleLanguage, ""},

		// Session
		{"status", domain.IntentStatus, ""},
		{"history", domain.IntentHistory, ""},
		{"recook", domain.IntentRecook, ""},
		{"cook again", domain.IntentRecook, ""},

		// Library
		{"list", domain.IntentListRecipes, ""},
		{"recipes", domain.IntentListRecipes, ""},
		{"2", domain.IntentOpenRecipe, "2"},
		{"open 3", domain.IntentOpenRecipe, "3"},
		{"pick 1", domain.IntentOpenRecipe, "1"},
		{"start", domain.IntentStartCooking, ""},
		{"cook", domain.IntentStartCooking, ""},

		// Misc
		{"quit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},

		// Case-insensitive
		{"NEXT", domain.IntentNext, ""},
		{"Stop Timer", domain.IntentStopTimer, ""},

		// Questions
		{"how long should I knead?", domain.IntentAskQuestion, "how long should I knead?"},
		{"can I use oil instead of ghee", domain.IntentAskQuestion, "can I use oil instead of ghee"},

		// Unknown
		{"flibbertigibbet", domain.IntentUnknown, "flibbertigibbet"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		name := tt.input
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			intent := parser.Parse(tt.input)
			if intent.Type != tt.wantType {
				t.Errorf("Parse(%q).Type = %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if intent.Payload != tt.wantPayload {
				t.Errorf("Parse(%q).Payload = %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}
