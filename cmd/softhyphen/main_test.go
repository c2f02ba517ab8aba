package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"

	"github.com/npillmayer/softhyphen/config"
)

func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, logs bytes.Buffer
	ctx := contextWithEnv(context.Background(), &out, &logs)
	err = newApp().Run(ctx, append([]string{"softhyphen"}, args...))
	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleConfig(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs("../../patterns")
	if err != nil {
		t.Fatal(err)
	}
	return writeFile(t, "config.yaml", "language: en-US\npattern_dir: \""+dir+"\"\n")
}

func TestDumpConfigKeepsLogOutOfOutput(t *testing.T) {
	out, logs, err := runApp(t, "dumpconfig")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "language: en-US") {
		t.Fatalf("configuration output does not start with settings: got %q", out)
	}
	if strings.Contains(out, "Outputting configuration") {
		t.Fatalf("log line in configuration output: %q", out)
	}
	if !strings.Contains(logs, "Outputting configuration") {
		t.Fatalf("log lacks info message, got %q", logs)
	}
	if _, err := config.Parse([]byte(out), config.Default()); err != nil {
		t.Fatalf("dumped configuration does not parse: %v", err)
	}
}

func TestTextCommand(t *testing.T) {
	in := writeFile(t, "in.txt", "Hyphenation works")
	out, logs, err := runApp(t, "--config", sampleConfig(t),
		"text", "--hyphen=-", "--min-before", "2", "--min-after", "3", in)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Hy-phen-ation works"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
	if strings.Contains(logs, "turned off") {
		t.Fatalf("unexpected warning: %q", logs)
	}
}

func TestTextCommandWarnsOnStderr(t *testing.T) {
	in := writeFile(t, "in.txt", "Hyphenation works")
	out, logs, err := runApp(t, "--config", sampleConfig(t), "text", "--lang", "it", in)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Hyphenation works" {
		t.Fatalf("expected pass-through, got %q", out)
	}
	if !strings.Contains(logs, "WARN\tHyphenation is turned off") {
		t.Fatalf("expected warning in log, got %q", logs)
	}
}

func TestMissingPatternDirectory(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "pattern_dir: \""+filepath.Join(t.TempDir(), "nowhere")+"\"\n")
	in := writeFile(t, "in.txt", "text")
	if _, _, err := runApp(t, "--config", cfg, "text", in); err == nil {
		t.Fatalf("expected error for missing pattern directory")
	}
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		args    []string
		check   func(*config.Settings) bool
		wantErr bool
	}{
		{nil, func(s *config.Settings) bool {
			return s.Language == "en-US" && s.Hyphenation.MinBefore == 3
		}, false},
		{[]string{"--lang", "de", "--min-before", "2"}, func(s *config.Settings) bool {
			return s.Language == "de" && s.Hyphenation.MinBefore == 2 && s.Hyphenation.MinAfter == 2
		}, false},
		{[]string{"--hyphen", "|", "--min-length", "8"}, func(s *config.Settings) bool {
			return s.Hyphenation.Hyphen == "|" && s.Hyphenation.MinLength == 8
		}, false},
		{[]string{"--min-after=-1"}, nil, true},
		{[]string{"--hyphen", ""}, nil, true},
	}
	for _, tt := range tests {
		cfg := config.Default()
		cmd := &cli.Command{
			Name:  "overrides",
			Flags: languageFlags(),
			Action: func(_ context.Context, cmd *cli.Command) error {
				return applyOverrides(cmd, cfg)
			},
		}
		err := cmd.Run(context.Background(), append([]string{"overrides"}, tt.args...))
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%v: expected error", tt.args)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if !tt.check(cfg) {
			t.Fatalf("%v: settings not applied, got %+v", tt.args, cfg.Hyphenation)
		}
	}
}
