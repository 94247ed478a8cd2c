package main

// Notes:
// - runBuild: driven through a fake SiteBuilder, so these tests cover config
//   resolution, result printing, and hint attachment, not rendering. The real
//   builder is exercised by the integration tests in main_test.go.
// - printResults: quiet, verbose, and default formats.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

// mustParse parses build flags or fails the test.
func mustParse(t *testing.T, args ...string) (*buildFlags, []string) {
	t.Helper()

	var buf bytes.Buffer
	f, positional, err := parseBuildFlags(args, &buf)
	if err != nil {
		t.Fatalf("parseBuildFlags(%v): %v", args, err)
	}
	return f, positional
}

// runFake runs a build against fake with the given CLI args.
func runFake(t *testing.T, fake *fakeBuilder, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	env, outBuf, errBuf := testEnv(t, fake)
	flags, positional := mustParse(t, args...)
	err = runBuild(context.Background(), positional, flags, log.New(io.Discard), env)
	return outBuf.String(), errBuf.String(), err
}

// ---------------------------------------------------------------------------
// TestRunBuild_Resolution - Where source and output come from
// ---------------------------------------------------------------------------

func TestRunBuild_Resolution(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		fake := &fakeBuilder{}
		if _, _, err := runFake(t, fake); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.source != config.DefaultSource || fake.output != config.DefaultOutput {
			t.Errorf("got source=%q output=%q, want %q %q", fake.source, fake.output, config.DefaultSource, config.DefaultOutput)
		}
		if fake.opts == 0 {
			t.Error("expected builder options")
		}
	})

	t.Run("positional source and output flag", func(t *testing.T) {
		t.Parallel()

		fake := &fakeBuilder{}
		if _, _, err := runFake(t, fake, "docs", "-o", "site"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.source != "docs" || fake.output != "site" {
			t.Errorf("got source=%q output=%q, want docs site", fake.source, fake.output)
		}
	})

	t.Run("config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		if err := os.WriteFile(path, []byte("source: content\noutput: dist\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		fake := &fakeBuilder{}
		if _, _, err := runFake(t, fake, "-c", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.source != "content" || fake.output != "dist" {
			t.Errorf("got source=%q output=%q, want content dist", fake.source, fake.output)
		}
	})

	t.Run("flags override config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		if err := os.WriteFile(path, []byte("source: content\noutput: dist\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		fake := &fakeBuilder{}
		if _, _, err := runFake(t, fake, "-c", path, "-o", "public2", "docs"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.source != "docs" || fake.output != "public2" {
			t.Errorf("got source=%q output=%q, want docs public2", fake.source, fake.output)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunBuild_Errors - Failures before and during the build
// ---------------------------------------------------------------------------

func TestRunBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fake     *fakeBuilder
		args     []string
		wantErr  error
		wantHint string
	}{
		{
			name:    "too many args",
			fake:    &fakeBuilder{},
			args:    []string{"a", "b"},
			wantErr: ErrTooManyArgs,
		},
		{
			name:     "missing config",
			fake:     &fakeBuilder{},
			args:     []string{"-c", "/nonexistent/dir/site.yaml"},
			wantErr:  config.ErrConfigNotFound,
			wantHint: "--config",
		},
		{
			name:    "invalid workers",
			fake:    &fakeBuilder{},
			args:    []string{"-w", "1000"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "unknown highlight style",
			fake:    &fakeBuilder{},
			args:    []string{"--highlight-style", "no-such-style"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:     "missing source root",
			fake:     &fakeBuilder{err: fmt.Errorf("%w: src", mdsite.ErrNoSourceRoot)},
			wantErr:  mdsite.ErrNoSourceRoot,
			wantHint: "source directory",
		},
		{
			name:     "collision",
			fake:     &fakeBuilder{err: fmt.Errorf("%w: a.md and a/index.md", mdsite.ErrAddressCollision)},
			wantErr:  mdsite.ErrAddressCollision,
			wantHint: "rename",
		},
		{
			name: "page with unknown layout",
			fake: &fakeBuilder{
				result: &mdsite.BuildResult{Pages: []mdsite.PageResult{
					okPage("src/a.md", "public/a/index.html"),
					failedPage("src/b.md", mdsite.ErrLayoutNotFound),
				}},
				layouts: []string{"base-1.html", "post.html"},
			},
			wantErr:  mdsite.ErrLayoutNotFound,
			wantHint: "available: base-1.html, post.html",
		},
		{
			name: "page write failure",
			fake: &fakeBuilder{
				result: &mdsite.BuildResult{Pages: []mdsite.PageResult{
					failedPage("src/a.md", mdsite.ErrWriteOutput),
				}},
			},
			wantErr:  mdsite.ErrWriteOutput,
			wantHint: "writable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := runFake(t, tt.fake, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantHint != "" && !strings.Contains(err.Error(), tt.wantHint) {
				t.Errorf("error should contain hint %q, got %q", tt.wantHint, err.Error())
			}
		})
	}
}

func TestRunBuild_FailedPagesReported(t *testing.T) {
	t.Parallel()

	fake := &fakeBuilder{result: &mdsite.BuildResult{Pages: []mdsite.PageResult{
		okPage("src/a.md", "public/a/index.html"),
		failedPage("src/b.md", mdsite.ErrLayoutRender),
		failedPage("src/c.md", mdsite.ErrBuildAborted),
	}}}

	stdout, stderr, err := runFake(t, fake)

	var failed *buildFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("err = %v, want *buildFailedError", err)
	}
	if !strings.HasPrefix(err.Error(), "2 page(s) failed") {
		t.Errorf("err = %q, want prefix %q", err.Error(), "2 page(s) failed")
	}
	if !strings.Contains(stdout, "Created public/a/index.html") {
		t.Errorf("stdout missing created line: %q", stdout)
	}
	if !strings.Contains(stdout, "1 succeeded, 2 failed") {
		t.Errorf("stdout missing summary: %q", stdout)
	}
	for _, want := range []string{"FAILED src/b.md", "FAILED src/c.md"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr should contain %q, got %q", want, stderr)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults - Output formats
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	result := &mdsite.BuildResult{Pages: []mdsite.PageResult{
		okPage("src/a.md", "public/a/index.html"),
		failedPage("src/b.md", errors.New("boom")),
	}}

	tests := []struct {
		name        string
		quiet       bool
		verbose     bool
		wantStdout  []string
		avoidStdout []string
	}{
		{
			name:       "default",
			wantStdout: []string{"Created public/a/index.html", "1 succeeded, 1 failed"},
		},
		{
			name:        "verbose",
			verbose:     true,
			wantStdout:  []string{"src/a.md -> public/a/index.html (2ms)"},
			avoidStdout: []string{"Created"},
		},
		{
			name:        "quiet",
			quiet:       true,
			avoidStdout: []string{"Created", "succeeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(t, nil)
			failed := printResults(result, tt.quiet, tt.verbose, env)

			if failed != 1 {
				t.Errorf("printResults() = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED src/b.md: boom") {
				t.Errorf("stderr = %q, want FAILED line", stderr.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, avoid := range tt.avoidStdout {
				if strings.Contains(stdout.String(), avoid) {
					t.Errorf("stdout should not contain %q, got %q", avoid, stdout.String())
				}
			}
		})
	}
}

func TestPrintResults_Empty(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(t, nil)
	if failed := printResults(&mdsite.BuildResult{}, false, false, env); failed != 0 {
		t.Errorf("printResults() = %d, want 0", failed)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}
