package command

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*TerminalNotifier)(nil)

// ANSI escape codes for terminal formatting.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
	cyan  = "\033[36m"
)

// PrintFunc is a function used to print formatted output. Matches the
// signature of both fmt.Printf and display.UI.Printf.
type PrintFunc func(format string, a ...interface{})

// TerminalNotifier writes notifications to the terminal with ANSI
// formatting.
type TerminalNotifier struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewTerminalNotifier creates a terminal-based notifier. If printFn is
// nil, fmt.Printf is used.
func NewTerminalNotifier(log *logger.Logger, printFn PrintFunc) *TerminalNotifier {
	if printFn == nil {
		printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &TerminalNotifier{log: log, printFn: printFn}
}

// Notify prints a normal notification.
func (n *TerminalNotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s%s%s%s", cyan, bold, message, reset)
	return nil
}

// NotifyUrgent prints an urgent notification in bold red.
func (n *TerminalNotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.printFn("%s%s%s%s", red, bold, message, reset)
	return nil
}
