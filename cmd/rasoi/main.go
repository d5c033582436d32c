// Rasoi — a bilingual step-by-step cooking companion.
//
// Usage:
//
//	rasoi [-verbose] [-quiet] [-lang en|hi] [-recipe file.md]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/rasoi/internal/assistant"
	"github.com/hammamikhairi/rasoi/internal/chime"
	"github.com/hammamikhairi/rasoi/internal/command"
	"github.com/hammamikhairi/rasoi/internal/countdown"
	"github.com/hammamikhairi/rasoi/internal/display"
	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
	"github.com/hammamikhairi/rasoi/internal/recipe"
	"github.com/hammamikhairi/rasoi/internal/recipetext"
	"github.com/hammamikhairi/rasoi/internal/session"
	"github.com/hammamikhairi/rasoi/internal/storage"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".rasoi-logs/rasoi.log", "file to write logs to (use \"stderr\" to log to console)")
	stateFile := flag.String("state", ".rasoi-state/progress.json", "file holding cooking progress between runs")
	memState := flag.Bool("mem", false, "keep progress in memory only (nothing survives exit)")
	langFlag := flag.String("lang", "", "recipe language: en or hi (default: last used)")
	recipeFile := flag.String("recipe", "", "load an extra recipe document from a file")
	noChime := flag.Bool("no-chime", false, "disable the timer alert tone")
	noAI := flag.Bool("no-ai", false, "disable the AI assistant even if GPT keys are set")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by third-party libs) to
	// the same output so it doesn't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	var store domain.ProgressStore
	if *memState {
		store = storage.NewMemoryStore(log)
	} else {
		fs, err := storage.NewFileStore(*stateFile, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open state file %s: %v (progress will not persist)\n", *stateFile, err)
			store = storage.NewMemoryStore(log)
		} else {
			store = fs
		}
	}

	library := recipe.NewMemoryLibrary(log)
	if *recipeFile != "" {
		doc, err := recipe.FromFile(*recipeFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		library.Add(doc)
	}

	timer := countdown.New(log)
	ui := display.NewUI(timer.State)
	notifier := command.NewTerminalNotifier(log, ui.Printf)
	parser := command.NewParser(log)

	tracker := session.New(store, log,
		session.WithCompletionListener(domain.CompletionListenerFunc(
			func(ctx context.Context, ev domain.CompletionEvent) error {
				log.Info("recipe completed: %s", ev.RecipeKey)
				return notifier.Notify(ctx, "Recipe complete — well done!")
			})),
	)

	// Audio alert tone for expired timers. Optional: a machine with no
	// audio device still runs fine.
	var bell *chime.Chime
	if !*noChime {
		b, err := chime.New(log)
		if err != nil {
			log.Warn("audio init failed, chime disabled: %v", err)
		} else {
			bell = b
		}
	}

	// Build the AI assistant if GPT credentials are available.
	var assist *assistant.Assistant

	gptKey := os.Getenv("GPT_CHAT_KEY")
	gptEndpoint := os.Getenv("GPT_CHAT_ENDPOINT")

	if gptKey != "" && gptEndpoint != "" && !*noAI {
		client := assistant.NewClient(gptEndpoint, gptKey, log)
		assist = assistant.New(client, log)
		log.Info("AI assistant enabled")
	} else if !*noAI {
		log.Info("AI assistant disabled: set GPT_CHAT_KEY and GPT_CHAT_ENDPOINT env vars to enable")
	}

	// Language: flag wins, otherwise the saved preference.
	lang := tracker.LanguagePreference(ctx)
	if *langFlag != "" {
		chosen := domain.Language(*langFlag)
		if !chosen.Valid() {
			fmt.Fprintf(os.Stderr, "error: unknown language %q (use en or hi)\n", *langFlag)
			os.Exit(1)
		}
		lang = chosen
	}

	app := &cliApp{
		tracker:  tracker,
		library:  library,
		parser:   parser,
		notifier: notifier,
		assist:   assist,
		timer:    timer,
		bell:     bell,
		lang:     lang,
		log:      log,
		ui:       ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

type cliApp struct {
	tracker  *session.Tracker
	library  domain.RecipeSource
	parser   *command.Parser
	notifier domain.Notifier
	assist   *assistant.Assistant // nil when AI is disabled
	timer    *countdown.Countdown
	bell     *chime.Chime // nil when audio is unavailable
	log      *logger.Logger
	ui       *display.UI

	lang      domain.Language
	selected  *domain.RecipeDocument // recipe chosen before typing 'start'
	cooking   bool                   // a session is on screen right now
	awaitLang bool                   // next input answers the en/hi resume prompt
}

func (a *cliApp) run(ctx context.Context) {
	// A session left over from a previous run is offered up front.
	if progress, err := a.tracker.Current(ctx); err == nil && !progress.Completed {
		a.ui.PrintChat(fmt.Sprintf("Welcome back! You were cooking %s (step %d).", progress.Title, progress.CurrentStepIndex+1))
		a.ui.PrintHint("Type 'start' to pick up where you left off, or 'list' to browse.")
	} else {
		a.showRecipes(ctx)
	}

	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if a.awaitLang {
			a.resolveLanguageChoice(ctx, input)
			continue
		}

		intent := a.parser.Parse(input)
		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)

		if a.handleIntent(ctx, intent) {
			return
		}
	}
}

// handleIntent dispatches one intent. Returns true when the app should
// exit.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentListRecipes:
		a.showRecipes(ctx)
	case domain.IntentOpenRecipe:
		a.openRecipe(ctx, intent.Payload)
	case domain.IntentStartCooking:
		a.startCooking(ctx)
	case domain.IntentNext:
		a.advance(ctx)
	case domain.IntentBack:
		a.retreat(ctx)
	case domain.IntentRepeat:
		a.showCurrentStep(ctx)
	case domain.IntentIngredients:
		a.showIngredients(ctx)
	case domain.IntentNutrition:
		a.showNutrition(ctx)
	case domain.IntentStartTimer:
		a.startTimer(ctx)
	case domain.IntentStopTimer:
		a.stopTimer()
	case domain.IntentToggleLanguage:
		a.toggleLanguage(ctx)
	case domain.IntentStatus:
		a.status(ctx)
	case domain.IntentHistory:
		a.showHistory(ctx)
	case domain.IntentRecook:
		a.recook(ctx)
	case domain.IntentAskQuestion:
		a.askQuestion(ctx, intent.Payload)
	case domain.IntentQuit:
		a.ui.PrintChat("Happy cooking. Bye!")
		return true
	case domain.IntentUnknown:
		if intent.Payload != "" {
			a.ui.PrintHint(fmt.Sprintf("Didn't catch that (%q). Type 'help' for commands.", intent.Payload))
		}
	}
	return false
}

// ── Library ──────────────────────────────────────────────────────

func (a *cliApp) showRecipes(ctx context.Context) {
	docs, err := a.library.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading recipes: %v", err))
		return
	}

	a.ui.PrintStep("Available recipes:")
	a.ui.Println("")
	for i, d := range docs {
		line := fmt.Sprintf("[%d] %s", i+1, d.Title)
		switch a.tracker.Status(ctx, d.Title) {
		case domain.StatusCompleted:
			line += "  ✓ cooked"
		case domain.StatusInProgress:
			if p, err := a.tracker.Archived(ctx, d.Title); err == nil {
				line += fmt.Sprintf("  … at step %d", p.CurrentStepIndex+1)
			}
		}
		a.ui.PrintInstruction(line)
	}
	a.ui.Println("")
	a.ui.PrintChat("Pick a recipe by number, then type 'start'.")
}

func (a *cliApp) openRecipe(ctx context.Context, payload string) {
	docs, err := a.library.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	idx, err := strconv.Atoi(strings.TrimSpace(payload))
	if err != nil || idx < 1 || idx > len(docs) {
		a.ui.PrintHint(fmt.Sprintf("No recipe %q. Type 'list' to see what's available.", payload))
		return
	}

	doc := docs[idx-1]
	a.selected = &doc
	a.cooking = false

	parsed, err := recipetext.Parse(doc.Content, a.lang)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	a.ui.PrintStep(fmt.Sprintf("=== %s ===", parsed.Title))
	a.ui.PrintHint(fmt.Sprintf("%d ingredients, %d steps", len(parsed.Ingredients), len(parsed.Steps)))

	if p, err := a.tracker.Archived(ctx, doc.Title); err == nil {
		switch a.tracker.Status(ctx, doc.Title) {
		case domain.StatusInProgress:
			a.ui.PrintChat(fmt.Sprintf("You left off at step %d. 'start' resumes from there.", p.CurrentStepIndex+1))
		case domain.StatusCompleted:
			a.ui.PrintChat("You've cooked this before. 'start' resumes, 'recook' begins again.")
		}
	} else {
		a.ui.PrintChat("Type 'start' when you're ready to cook.")
	}
}

// ── Cooking session ──────────────────────────────────────────────

func (a *cliApp) startCooking(ctx context.Context) {
	// Bare 'start' with nothing selected continues the saved session.
	if a.selected == nil {
		progress, err := a.tracker.Current(ctx)
		if err != nil {
			a.ui.PrintHint("Pick a recipe first. Type 'list' to browse.")
			return
		}
		a.cooking = true
		a.ui.PrintChat(fmt.Sprintf("Resuming %s.", progress.Title))
		a.showCurrentStep(ctx)
		return
	}

	progress, err := a.tracker.Resume(ctx, a.selected, a.lang)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error starting session: %v", err))
		return
	}
	a.cooking = true

	// The archive remembers its own language. If it disagrees with the
	// current preference, let the user choose before showing a step.
	if progress.Language != a.lang {
		a.awaitLang = true
		a.ui.PrintChat(fmt.Sprintf("You were cooking this in %s. Continue in English or Hindi? (en/hi)", languageName(progress.Language)))
		return
	}
	if progress.CurrentStepIndex > 0 || progress.Completed {
		a.ui.PrintChat(fmt.Sprintf("Resuming %s at step %d.", progress.Title, progress.CurrentStepIndex+1))
	} else {
		a.ui.PrintChat(fmt.Sprintf("Let's cook %s!", progress.Title))
	}
	a.showCurrentStep(ctx)
}

// resolveLanguageChoice consumes the answer to the en/hi resume
// prompt. Anything unrecognized keeps the archived language.
func (a *cliApp) resolveLanguageChoice(ctx context.Context, input string) {
	a.awaitLang = false

	var chosen domain.Language
	switch strings.ToLower(input) {
	case "en", "english":
		chosen = domain.LangEnglish
	case "hi", "hindi":
		chosen = domain.LangHindi
	default:
		a.ui.PrintHint("Keeping the saved language.")
		a.showCurrentStep(ctx)
		return
	}

	progress, err := a.tracker.SetLanguage(ctx, chosen)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.lang = chosen
	a.ui.PrintChat(fmt.Sprintf("Resuming %s in %s.", progress.Title, languageName(chosen)))
	a.showCurrentStep(ctx)
}

// current loads the live session and its parsed variant, or explains
// what to do instead.
func (a *cliApp) current(ctx context.Context) (*domain.CookingProgress, *domain.ParsedRecipe, bool) {
	progress, err := a.tracker.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			a.ui.PrintHint("No active session. Pick a recipe and type 'start'.")
		} else {
			a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		}
		return nil, nil, false
	}

	parsed, err := recipetext.Parse(progress.Content, progress.Language)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return nil, nil, false
	}
	return progress, parsed, true
}

func (a *cliApp) showCurrentStep(ctx context.Context) {
	progress, parsed, ok := a.current(ctx)
	if !ok {
		return
	}

	if len(parsed.Steps) == 0 {
		a.ui.PrintHint("This recipe has no instruction steps.")
		return
	}

	idx := progress.CurrentStepIndex
	if idx < 0 || idx >= len(parsed.Steps) {
		idx = len(parsed.Steps) - 1
	}
	step := parsed.Steps[idx]

	header := fmt.Sprintf("Step %d/%d", idx+1, len(parsed.Steps))
	if step.DurationMinutes > 0 {
		header += fmt.Sprintf(" (~%dm)", step.DurationMinutes)
	}
	a.ui.PrintStep(header)
	a.ui.PrintInstruction(step.Text)

	if step.DurationMinutes > 0 {
		a.ui.PrintHint(fmt.Sprintf("This step takes %d minutes — type 'timer' to count it down.", step.DurationMinutes))
	}

	if progress.Completed && idx == len(parsed.Steps)-1 {
		a.ui.PrintChat("That was the last step. 'recook' starts over.")
	}
}

func (a *cliApp) advance(ctx context.Context) {
	progress, err := a.tracker.Advance(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			a.ui.PrintHint("No active session. Pick a recipe and type 'start'.")
			return
		}
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.log.Debug("advanced to step %d", progress.CurrentStepIndex)
	a.showCurrentStep(ctx)
}

func (a *cliApp) retreat(ctx context.Context) {
	_, err := a.tracker.Retreat(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			a.ui.PrintHint("No active session. Pick a recipe and type 'start'.")
			return
		}
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.showCurrentStep(ctx)
}

func (a *cliApp) recook(ctx context.Context) {
	progress, err := a.tracker.Restart(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			a.ui.PrintHint("No active session to restart.")
			return
		}
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.cooking = true
	a.ui.PrintChat(fmt.Sprintf("Starting %s from the top.", progress.Title))
	a.showCurrentStep(ctx)
}

func (a *cliApp) toggleLanguage(ctx context.Context) {
	next := a.lang.Toggle()

	progress, err := a.tracker.SetLanguage(ctx, next)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			// No session: just flip the default for the next one.
			a.lang = next
			a.ui.PrintChat("Recipes will show in " + languageName(next) + ".")
			return
		}
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	a.lang = next
	a.ui.PrintChat("Switched to " + languageName(next) + ".")
	a.log.Debug("language now %s at step %d", progress.Language, progress.CurrentStepIndex)
	if a.cooking {
		a.showCurrentStep(ctx)
	}
}

// ── Recipe views ─────────────────────────────────────────────────

func (a *cliApp) showIngredients(ctx context.Context) {
	parsed, ok := a.parsedForDisplay(ctx)
	if !ok {
		return
	}
	if len(parsed.Ingredients) == 0 {
		a.ui.PrintHint("No ingredients listed.")
		return
	}

	a.ui.PrintStep("Ingredients:")
	for _, ing := range parsed.Ingredients {
		a.ui.PrintInstruction("  - " + ing)
	}
}

func (a *cliApp) showNutrition(ctx context.Context) {
	parsed, ok := a.parsedForDisplay(ctx)
	if !ok {
		return
	}
	if len(parsed.Nutrition) == 0 {
		a.ui.PrintHint("No nutritional information listed.")
		return
	}

	a.ui.PrintStep("Approximate nutrition:")
	for _, fact := range parsed.Nutrition {
		a.ui.PrintInstruction(fmt.Sprintf("  %s: %s", fact.Label, fact.Value))
	}
}

// parsedForDisplay prefers the live session's recipe and language, and
// falls back to the browsed selection.
func (a *cliApp) parsedForDisplay(ctx context.Context) (*domain.ParsedRecipe, bool) {
	if progress, err := a.tracker.Current(ctx); err == nil {
		parsed, err := recipetext.Parse(progress.Content, progress.Language)
		if err == nil {
			return parsed, true
		}
	}
	if a.selected != nil {
		parsed, err := recipetext.Parse(a.selected.Content, a.lang)
		if err == nil {
			return parsed, true
		}
	}
	a.ui.PrintHint("Open a recipe first. Type 'list' to browse.")
	return nil, false
}

// ── Timer ────────────────────────────────────────────────────────

func (a *cliApp) startTimer(ctx context.Context) {
	progress, parsed, ok := a.current(ctx)
	if !ok {
		return
	}

	idx := progress.CurrentStepIndex
	if idx < 0 || idx >= len(parsed.Steps) {
		a.ui.PrintHint("No current step to time.")
		return
	}
	minutes := parsed.Steps[idx].DurationMinutes
	if minutes <= 0 {
		a.ui.PrintHint("This step has no duration to count down.")
		return
	}

	started := a.timer.Start(minutes, nil, func() {
		a.notifier.NotifyUrgent(ctx, fmt.Sprintf("⏰ Time's up — step %d is done!", idx+1))
		a.bell.Ring()
	})
	if started {
		a.ui.PrintChat(fmt.Sprintf("Timer set for %d minutes.", minutes))
	}
}

func (a *cliApp) stopTimer() {
	if !a.timer.Running() {
		a.ui.PrintHint("No timer running.")
		return
	}
	a.timer.Stop()
	a.ui.PrintChat("Timer stopped.")
}

// ── Status & history ─────────────────────────────────────────────

func (a *cliApp) status(ctx context.Context) {
	progress, parsed, ok := a.current(ctx)
	if !ok {
		return
	}

	a.ui.PrintStep(fmt.Sprintf("Cooking: %s", progress.Title))
	a.ui.PrintInstruction(fmt.Sprintf("Step:     %d/%d", progress.CurrentStepIndex+1, len(parsed.Steps)))
	a.ui.PrintInstruction(fmt.Sprintf("Language: %s", languageName(progress.Language)))
	if progress.Completed {
		a.ui.PrintInstruction("Done:     yes")
	}

	if snap := a.timer.State(); snap.Running {
		a.ui.PrintChat(fmt.Sprintf("%s — %ds remaining", snap.Label, snap.RemainingSeconds))
	} else if snap.Fired {
		a.ui.PrintUrgent(snap.Label + " — DONE")
	} else {
		a.ui.PrintHint("Timer:    none running")
	}
}

func (a *cliApp) showHistory(ctx context.Context) {
	docs, err := a.library.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	a.ui.PrintStep("Cooking history:")
	shown := 0
	for _, d := range docs {
		status := a.tracker.Status(ctx, d.Title)
		if status == domain.StatusNotStarted {
			continue
		}
		shown++
		line := fmt.Sprintf("  %s — %s", d.Title, status)
		if status == domain.StatusInProgress {
			if p, err := a.tracker.Archived(ctx, d.Title); err == nil {
				line += fmt.Sprintf(" (step %d)", p.CurrentStepIndex+1)
			}
		}
		a.ui.PrintInstruction(line)
	}
	if shown == 0 {
		a.ui.PrintHint("  Nothing cooked yet.")
	}
}

// ── AI ───────────────────────────────────────────────────────────

func (a *cliApp) askQuestion(ctx context.Context, question string) {
	if a.assist == nil {
		a.ui.PrintHint("The AI assistant is not configured (set GPT_CHAT_KEY and GPT_CHAT_ENDPOINT).")
		return
	}

	a.ui.PrintHint("Thinking...")

	var progress *domain.CookingProgress
	var parsed *domain.ParsedRecipe
	if p, err := a.tracker.Current(ctx); err == nil {
		progress = p
		parsed, _ = recipetext.Parse(p.Content, p.Language)
	} else if a.selected != nil {
		parsed, _ = recipetext.Parse(a.selected.Content, a.lang)
	}

	answer, err := a.assist.Ask(ctx, question, parsed, progress)
	if err != nil {
		a.log.Error("AI question failed: %v", err)
		a.ui.PrintUrgent("The assistant couldn't answer right now.")
		return
	}
	a.ui.PrintChat(answer)
}

// ── Help ─────────────────────────────────────────────────────────

func (a *cliApp) showHelp() {
	a.ui.PrintStep("Commands:")
	a.ui.PrintInstruction("  list / recipes   Show available recipes")
	a.ui.PrintInstruction("  1, 2, 3...       Open a recipe by number")
	a.ui.PrintInstruction("  start / cook     Start (or resume) the opened recipe")
	a.ui.PrintInstruction("  next / done      Move to the next step")
	a.ui.PrintInstruction("  back / prev      Go back one step")
	a.ui.PrintInstruction("  repeat / again   Show the current step again")
	a.ui.PrintInstruction("  ingredients      List the ingredients")
	a.ui.PrintInstruction("  nutrition        Show nutritional values")
	a.ui.PrintInstruction("  timer            Count down the current step's duration")
	a.ui.PrintInstruction("  stop             Cancel a running timer")
	a.ui.PrintInstruction("  lang / hindi     Switch between English and Hindi")
	a.ui.PrintInstruction("  status / where   Show session progress")
	a.ui.PrintInstruction("  history          Show what you've cooked")
	a.ui.PrintInstruction("  recook           Cook the current recipe again from step 1")
	a.ui.PrintInstruction("  help             Show this message")
	a.ui.PrintInstruction("  quit / exit      Exit (progress is saved)")
	if a.assist != nil {
		a.ui.Println("")
		a.ui.PrintStep("Ask anything:")
		a.ui.PrintInstruction("  can I use...?    Free-form cooking questions go to the AI")
	}
}

func languageName(lang domain.Language) string {
	if lang == domain.LangHindi {
		return "Hindi"
	}
	return "English"
}
