package mdsite

import (
	"errors"
	"strings"
	"testing"
)

func TestPageError(t *testing.T) {
	t.Parallel()

	err := &PageError{Source: "src/a.md", Err: ErrLayoutNotFound}

	if got := err.Error(); got != "src/a.md: layout not found" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrLayoutNotFound) {
		t.Error("PageError should unwrap to its cause")
	}
}

func TestBuildResult(t *testing.T) {
	t.Parallel()

	t.Run("all succeeded", func(t *testing.T) {
		t.Parallel()

		r := &BuildResult{Pages: []PageResult{{}, {}}}
		if r.Succeeded() != 2 || r.Failed() != 0 {
			t.Errorf("Succeeded/Failed = %d/%d, want 2/0", r.Succeeded(), r.Failed())
		}
		if r.Err() != nil {
			t.Errorf("Err() = %v, want nil", r.Err())
		}
	})

	t.Run("failures are joined", func(t *testing.T) {
		t.Parallel()

		r := &BuildResult{Pages: []PageResult{
			{Err: &PageError{Source: "a.md", Err: ErrReadSource}},
			{},
			{Err: &PageError{Source: "b.md", Err: ErrBuildAborted}},
		}}
		if r.Succeeded() != 1 || r.Failed() != 2 {
			t.Errorf("Succeeded/Failed = %d/%d, want 1/2", r.Succeeded(), r.Failed())
		}

		err := r.Err()
		if !errors.Is(err, ErrReadSource) || !errors.Is(err, ErrBuildAborted) {
			t.Errorf("Err() = %v, should match both causes", err)
		}
		if !strings.Contains(err.Error(), "a.md") || !strings.Contains(err.Error(), "b.md") {
			t.Errorf("Err() = %q, should name both sources", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var r BuildResult
		if r.Err() != nil || r.Failed() != 0 {
			t.Error("empty result should be successful")
		}
	})
}
