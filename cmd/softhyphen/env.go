package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/npillmayer/softhyphen"
	"github.com/npillmayer/softhyphen/config"
	"github.com/npillmayer/softhyphen/langfile"
)

type envKey struct{}

// localEnv keeps everything the program needs in a single place.
type localEnv struct {
	Cfg   *config.Settings
	Log   *zap.Logger
	cache *softhyphen.Cache
	start time.Time

	stdout io.Writer // command results
	stderr io.Writer // log messages
}

func envFromContext(ctx context.Context) *localEnv {
	if env, ok := ctx.Value(envKey{}).(*localEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func contextWithEnv(ctx context.Context, stdout, stderr io.Writer) context.Context {
	return context.WithValue(ctx, envKey{}, &localEnv{
		Log:    zap.NewNop(),
		start:  time.Now(),
		stdout: stdout,
		stderr: stderr,
	})
}

// Cache returns the hyphenator cache, creating it on first use. Language
// files are read from the configured pattern directory, which must exist.
func (e *localEnv) Cache() (*softhyphen.Cache, error) {
	if e.cache == nil {
		info, err := os.Stat(e.Cfg.PatternDir)
		if err != nil {
			return nil, fmt.Errorf("pattern directory not usable (see pattern_dir): %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("pattern directory '%s' is not a directory", e.Cfg.PatternDir)
		}
		e.cache = softhyphen.NewCache(langfile.NewLoader(os.DirFS(e.Cfg.PatternDir)))
	}
	return e.cache, nil
}

func (e *localEnv) Uptime() time.Duration {
	return time.Since(e.start)
}
