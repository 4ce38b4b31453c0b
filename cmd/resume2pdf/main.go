package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommand names recognized by runMain.
var commands = []string{"convert", "open", "doctor", "install", "version", "help"}

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose") {
		logger := newLogger(os.Stderr, log.DebugLevel)
		_, _ = maxprocs.Set(maxprocs.Logger(logger.Debugf))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// args includes the program name.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := splitCommand(args[1:])

	switch cmd {
	case "convert":
		return runConvertCmd(ctx, rest, env)
	case "open":
		return runOpenCmd(ctx, rest, env)
	case "doctor":
		return runDoctorCmd(ctx, rest, env)
	case "install":
		return runInstallCmd(ctx, rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "resume2pdf %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	}

	fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}

// notifyContext returns a context canceled by the first stop signal.
// Call stop() to release resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, stopSignals...)
}

// splitCommand separates the command name from its arguments.
// No arguments, a leading flag, or an HTML path all mean convert.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "convert", nil
	}
	first := args[0]
	switch {
	case isCommand(first):
		return first, args[1:]
	case strings.HasPrefix(first, "-"), looksLikeHTML(first):
		return "convert", args
	}
	return first, args[1:]
}

// isCommand reports whether s names a subcommand. Matching is case sensitive.
func isCommand(s string) bool {
	return slices.Contains(commands, s)
}

// looksLikeHTML reports whether s is a plausible résumé source.
func looksLikeHTML(s string) bool {
	if strings.HasPrefix(strings.ToLower(s), "file:") {
		return true
	}
	switch strings.ToLower(filepath.Ext(s)) {
	case ".html", ".htm":
		return true
	}
	return strings.ContainsAny(s, `/\`)
}

// defaultSource is converted when neither arguments nor config name one.
const defaultSource = "index.html"

// pickSource chooses the source from the positional argument, then config.
func pickSource(positional []string, configured string) string {
	if len(positional) > 0 && positional[0] != "" {
		return positional[0]
	}
	if configured != "" {
		return configured
	}
	return defaultSource
}
