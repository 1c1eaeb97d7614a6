package domain

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestNotFoundMatching(t *testing.T) {
	err := NotFoundError{Resource: "subtitles ep1.srt_3"}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("typed not-found must match the sentinel")
	}

	wrapped := pkgerrors.Wrap(err, "padding neighbor")
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatalf("matching must survive wrapping")
	}
}

func TestRequiredFieldMatching(t *testing.T) {
	err := RequiredFieldError{Field: "content", Entity: "subtitles"}
	if !errors.Is(err, ErrRequiredField) {
		t.Fatalf("typed required-field must match the sentinel")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("error kinds must not cross-match")
	}
}

func TestBackendErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := BackendError{Op: "search", Err: cause}
	if !errors.Is(err, ErrBackend) {
		t.Fatalf("typed backend error must match the sentinel")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("the cause must stay reachable")
	}
}
