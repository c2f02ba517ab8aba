package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/npillmayer/softhyphen/config"
	"github.com/npillmayer/softhyphen/htmltext"
	"github.com/npillmayer/softhyphen/token"
)

func loadSettings(path string) (*config.Settings, error) {
	return config.LoadConfiguration(path)
}

// applyOverrides superimposes command line flags on the settings.
func applyOverrides(cmd *cli.Command, cfg *config.Settings) error {
	if cmd.IsSet("lang") {
		cfg.Language = cmd.String("lang")
	}
	if cmd.IsSet("hyphen") {
		cfg.Hyphenation.Hyphen = cmd.String("hyphen")
	}
	if cmd.IsSet("min-length") {
		cfg.Hyphenation.MinLength = int(cmd.Int("min-length"))
	}
	if cmd.IsSet("min-before") {
		cfg.Hyphenation.MinBefore = int(cmd.Int("min-before"))
	}
	if cmd.IsSet("min-after") {
		cfg.Hyphenation.MinAfter = int(cmd.Int("min-after"))
	}
	return cfg.Validate()
}

// openInput returns the file named by the first argument, or stdin.
func openInput(cmd *cli.Command) (io.ReadCloser, string, error) {
	src := cmd.Args().Get(0)
	if src == "" || src == "-" {
		return io.NopCloser(os.Stdin), "STDIN", nil
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, src, fmt.Errorf("unable to open source file '%s': %w", src, err)
	}
	return f, src, nil
}

// createOutput returns the file named by the argument at index i, or stdout.
func createOutput(env *localEnv, cmd *cli.Command, i int) (io.WriteCloser, string, error) {
	dst := cmd.Args().Get(i)
	if dst == "" || dst == "-" {
		return nopWriteCloser{env.stdout}, "STDOUT", nil
	}
	f, err := os.Create(dst)
	if err != nil {
		return nil, dst, fmt.Errorf("unable to create destination file '%s': %w", dst, err)
	}
	return f, dst, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func newProcessor(ctx context.Context, cmd *cli.Command) (*htmltext.Processor, error) {
	env := envFromContext(ctx)
	if err := applyOverrides(cmd, env.Cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	cache, err := env.Cache()
	if err != nil {
		return nil, err
	}
	if _, ok := cache.Get(env.Cfg.Language); !ok {
		env.Log.Warn("Hyphenation is turned off, no patterns for language",
			zap.String("lang", env.Cfg.Language), zap.String("dir", env.Cfg.PatternDir))
	}
	return htmltext.New(cache, env.Cfg), nil
}

func runHTML(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	p, err := newProcessor(ctx, cmd)
	if err != nil {
		return err
	}
	in, src, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close()
	out, dst, err := createOutput(env, cmd, 1)
	if err != nil {
		return err
	}
	defer out.Close()

	env.Log.Debug("Processing HTML", zap.String("source", src), zap.String("destination", dst),
		zap.Bool("document", cmd.Bool("document")))
	if cmd.Bool("document") {
		return p.ProcessDocument(in, out)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}
	result, err := p.ProcessFragment(string(data))
	if err != nil {
		return fmt.Errorf("unable to process '%s': %w", src, err)
	}
	_, err = io.WriteString(out, result)
	return err
}

func runText(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	p, err := newProcessor(ctx, cmd)
	if err != nil {
		return err
	}
	in, src, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}
	result, err := p.ProcessText(string(data), env.Cfg.Language)
	if err != nil {
		return fmt.Errorf("unable to process '%s': %w", src, err)
	}
	out, _, err := createOutput(env, cmd, 1)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.WriteString(out, result)
	return err
}

func runTokens(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	in, src, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}
	tz := &token.Tokenizer{MaxWordRun: env.Cfg.Tokenizer.MaxWordRun}
	tokens, err := tz.Tokenize(string(data))
	if err != nil {
		return fmt.Errorf("unable to tokenize '%s': %w", src, err)
	}
	var b strings.Builder
	for _, t := range tokens {
		fmt.Fprintf(&b, "%s\t%q\n", t.Kind, t.Value)
	}
	_, err = io.WriteString(env.stdout, b.String())
	return err
}

func runExceptions(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if err := applyOverrides(cmd, env.Cfg); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	cache, err := env.Cache()
	if err != nil {
		return err
	}
	cache.SetCustomExceptions(env.Cfg.Hyphenation.CustomExceptions)
	h, ok := cache.Get(env.Cfg.Language)
	if !ok {
		env.Log.Warn("No hyphenation data for language", zap.String("lang", env.Cfg.Language), zap.Error(h.LoadError()))
		return nil
	}
	for _, key := range h.Exceptions(cmd.Args().Get(0)) {
		fmt.Fprintln(env.stdout, key)
	}
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	var (
		err   error
		data  []byte
		state string
	)
	if cmd.Bool("default") {
		state = "default"
		data = config.Prepare()
	} else {
		state = "actual"
		if data, err = config.Dump(env.Cfg); err != nil {
			return fmt.Errorf("unable to get configuration: %w", err)
		}
	}
	out, fname, err := createOutput(env, cmd, 0)
	if err != nil {
		return err
	}
	defer out.Close()
	env.Log.Info("Outputting configuration", zap.String("state", state), zap.String("file", fname))
	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
