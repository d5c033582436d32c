package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
)

// systemPrompt keeps the assistant short and honest. Answers are
// printed in a terminal, so no markdown.
const systemPrompt = `You are Rasoi, a concise and knowledgeable cooking assistant.
You are guiding a user through a recipe step-by-step. The recipe may be
in English or Hindi; answer in the language the question was asked in.

Rules:
- Answer the user's cooking question in 1-3 sentences.
- Be direct. No filler, no flattery.
- If the question is about steps or progress, answer from the session
  context provided. Do NOT guess or make things up.
- If the question is unrelated to cooking, say so briefly and redirect.
- Plain text only. No markdown, no emojis.`

// Assistant wraps the chat Client with cooking-context building. It is
// the single entry-point the CLI calls for AI-powered answers.
type Assistant struct {
	client *Client
	log    *logger.Logger
}

// New creates a cooking assistant backed by the given Client.
func New(client *Client, log *logger.Logger) *Assistant {
	return &Assistant{client: client, log: log}
}

// Ask sends a free-form question to the model together with the current
// recipe and progress and returns the answer.
func (a *Assistant) Ask(ctx context.Context, question string, parsed *domain.ParsedRecipe, progress *domain.CookingProgress) (string, error) {
	msgs := []Message{{Role: RoleSystem, Content: systemPrompt}}

	if ctxBlock := buildContext(parsed, progress); ctxBlock != "" {
		msgs = append(msgs, Message{Role: RoleUser, Content: ctxBlock})
		// Fake an ack so the model treats context as established.
		msgs = append(msgs, Message{Role: RoleAssistant, Content: "Got it, I have the context."})
	}

	msgs = append(msgs, Message{Role: RoleUser, Content: question})
	return a.client.Chat(ctx, msgs)
}

// buildContext serializes the current recipe and progress into a
// plain-text block the model can reason over.
func buildContext(parsed *domain.ParsedRecipe, progress *domain.CookingProgress) string {
	if parsed == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("[Current Recipe]\n")
	fmt.Fprintf(&b, "Title: %s\n", parsed.Title)

	if len(parsed.Ingredients) > 0 {
		b.WriteString("\nIngredients:\n")
		for _, ing := range parsed.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
	}

	if len(parsed.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, step := range parsed.Steps {
			fmt.Fprintf(&b, "%d. %s", step.Index+1, step.Text)
			if step.DurationMinutes > 0 {
				fmt.Fprintf(&b, " [%d min]", step.DurationMinutes)
			}
			b.WriteString("\n")
		}
	}

	if len(parsed.Nutrition) > 0 {
		b.WriteString("\nNutrition (approximate):\n")
		for _, fact := range parsed.Nutrition {
			fmt.Fprintf(&b, "- %s: %s\n", fact.Label, fact.Value)
		}
	}

	if progress != nil {
		b.WriteString("\n[Session]\n")
		fmt.Fprintf(&b, "Language: %s\n", progress.Language)
		fmt.Fprintf(&b, "Current step: %d of %d\n", progress.CurrentStepIndex+1, len(parsed.Steps))
		if progress.Completed {
			b.WriteString("The recipe is finished.\n")
		} else if progress.CurrentStepIndex >= 0 && progress.CurrentStepIndex < len(parsed.Steps) {
			cur := parsed.Steps[progress.CurrentStepIndex]
			fmt.Fprintf(&b, "Current step text: %s\n", cur.Text)
		}
	} else {
		b.WriteString("\n[No active cooking session. The user is browsing recipes.]\n")
	}

	return b.String()
}
