// Command softhyphen inserts soft hyphens into HTML and plain text.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := envFromContext(ctx)

	cfg, err := loadSettings(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	env.Cfg = cfg
	if cmd.Bool("debug") {
		env.Cfg.Logging.Console.Level = "debug"
	}
	env.Log = env.Cfg.Logging.Prepare(env.stderr)
	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if cmd.String("config") == "" {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	_ = env.Log.Sync()
	return nil
}

var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	if env.Cfg != nil && env.Cfg.Logging.Console.Level != "none" {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func langFlag() cli.Flag {
	return &cli.StringFlag{Name: "lang", Aliases: []string{"l"}, Usage: "hyphenate text in language `CODE` (BCP 47)"}
}

func languageFlags() []cli.Flag {
	return []cli.Flag{
		langFlag(),
		&cli.StringFlag{Name: "hyphen", Usage: "insert `STRING` at break points instead of a soft hyphen"},
		&cli.IntFlag{Name: "min-length", Usage: "do not hyphenate words shorter than `N` characters"},
		&cli.IntFlag{Name: "min-before", Usage: "keep at least `N` characters before a break"},
		&cli.IntFlag{Name: "min-after", Usage: "keep at least `N` characters after a break"},
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "softhyphen",
		Usage:           "inserts soft hyphens into HTML and text",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug messages"},
		},
		Commands: []*cli.Command{
			{
				Name:         "html",
				Usage:        "Hyphenates an HTML fragment or document",
				OnUsageError: usageErrorHandler,
				Action:       runHTML,
				Flags: append([]cli.Flag{
					&cli.BoolFlag{Name: "document", Usage: "input is a complete HTML document"},
				}, languageFlags()...),
				ArgsUsage: "[SOURCE [DESTINATION]]",
			},
			{
				Name:         "text",
				Usage:        "Hyphenates plain text",
				OnUsageError: usageErrorHandler,
				Action:       runText,
				Flags:        languageFlags(),
				ArgsUsage:    "[SOURCE [DESTINATION]]",
			},
			{
				Name:         "tokens",
				Usage:        "Lists the tokens of a text",
				OnUsageError: usageErrorHandler,
				Action:       runTokens,
				ArgsUsage:    "[SOURCE]",
			},
			{
				Name:         "exceptions",
				Usage:        "Lists hyphenation exceptions (language and custom)",
				OnUsageError: usageErrorHandler,
				Action:       runExceptions,
				Flags:        []cli.Flag{langFlag()},
				ArgsUsage:    "[PREFIX]",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "[DESTINATION]",
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background(), os.Stdout, os.Stderr),
		os.Interrupt, syscall.SIGTERM)

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}
