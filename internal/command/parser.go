// Package command parses REPL input into intents and carries the
// terminal notifier.
package command

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
)

// Parser matches user input to intents using keywords and simple
// patterns. Unrecognized input that looks like a question becomes an
// IntentAskQuestion for the assistant.
type Parser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewParser creates a keyword-based command parser.
func NewParser(log *logger.Logger) *Parser {
	p := &Parser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(next|done|continue|n)$`), domain.IntentNext},
		{regexp.MustCompile(`(?i)^(back|prev|previous|b)$`), domain.IntentBack},
		{regexp.MustCompile(`(?i)^(repeat|again|r)$`), domain.IntentRepeat},
		{regexp.MustCompile(`(?i)^(ingredients|ing|i)$`), domain.IntentIngredients},
		{regexp.MustCompile(`(?i)^(nutrition|nutritional|macros)$`), domain.IntentNutrition},
		{regexp.MustCompile(`(?i)^(stop timer|stop)$`), domain.IntentStopTimer},
		{regexp.MustCompile(`(?i)^(timer|start timer|t)$`), domain.IntentStartTimer},
		{regexp.MustCompile(`(?i)^(lang|language|hindi|english|switch)$`), domain.IntentToggleLanguage},
		{regexp.MustCompile(`(?i)^(status|where|progress)$`), domain.IntentStatus},
		{regexp.MustCompile(`(?i)^(history|cooked)$`), domain.IntentHistory},
		{regexp.MustCompile(`(?i)^(recook|cook again|restart)$`), domain.IntentRecook},
		{regexp.MustCompile(`(?i)^(list|recipes|browse)$`), domain.IntentListRecipes},
		{regexp.MustCompile(`(?i)^(start|cook|begin|let'?s go)$`), domain.IntentStartCooking},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.IntentQuit},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
	}
	return p
}

// Parse converts user input into an intent.
func (p *Parser) Parse(input string) *domain.Intent {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}
	}

	p.log.Debug("parsing input: %q", trimmed)

	// Recipe selection by number ("1", "2", ...).
	if len(trimmed) <= 2 && isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentOpenRecipe, Payload: trimmed}
	}

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent}
		}
	}

	// "open <n>" / "select <n>" / "pick <n>".
	lower := strings.ToLower(trimmed)
	for _, prefix := range []string{"open ", "select ", "pick "} {
		if strings.HasPrefix(lower, prefix) {
			return &domain.Intent{
				Type:    domain.IntentOpenRecipe,
				Payload: strings.TrimSpace(trimmed[len(prefix):]),
			}
		}
	}

	if isQuestion(trimmed) {
		return &domain.Intent{Type: domain.IntentAskQuestion, Payload: trimmed}
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}
}

// questionPrefixes are common English question starters.
var questionPrefixes = []string{
	"how", "what", "why", "when", "where", "who",
	"can", "could", "should", "would", "will", "do", "does", "is", "are",
	"tell me", "explain",
}

// isQuestion returns true if the input looks like a question.
func isQuestion(s string) bool {
	if strings.HasSuffix(s, "?") {
		return true
	}
	lower := strings.ToLower(s)
	for _, prefix := range questionPrefixes {
		if strings.HasPrefix(lower, prefix+" ") {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
