package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	mdsite "github.com/alnah/go-mdsite"
)

// fakeBuilder records how it was constructed and returns a canned result.
type fakeBuilder struct {
	source  string
	output  string
	opts    int
	result  *mdsite.BuildResult
	err     error
	layouts []string
}

func (f *fakeBuilder) Build(ctx context.Context) (*mdsite.BuildResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &mdsite.BuildResult{}, nil
	}
	return f.result, nil
}

func (f *fakeBuilder) Layouts() []string {
	return f.layouts
}

// testEnv returns an environment writing to buffers. If fake is non-nil it
// replaces the real builder.
func testEnv(t *testing.T, fake *fakeBuilder) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:        time.Now,
		Stdout:     &stdout,
		Stderr:     &stderr,
		NewBuilder: newSiteBuilder,
	}
	if fake != nil {
		env.NewBuilder = func(source, output string, opts ...mdsite.Option) (SiteBuilder, error) {
			fake.source = source
			fake.output = output
			fake.opts = len(opts)
			return fake, nil
		}
	}
	return env, &stdout, &stderr
}

// okPage returns a successful page result.
func okPage(source, output string) mdsite.PageResult {
	return mdsite.PageResult{
		Page:     mdsite.Page{Source: source, Output: output},
		Duration: 1500 * time.Microsecond,
	}
}

// failedPage returns a failed page result wrapping err.
func failedPage(source string, err error) mdsite.PageResult {
	return mdsite.PageResult{
		Page: mdsite.Page{Source: source},
		Err:  &mdsite.PageError{Source: source, Err: err},
	}
}
