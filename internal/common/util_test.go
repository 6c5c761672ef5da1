package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrDataAccess_WrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("%w: adding survey: %w", ErrDataAccess, cause)

	if !errors.Is(err, ErrDataAccess) {
		t.Fatalf("expected ErrDataAccess in chain, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause in chain, got %v", err)
	}
	if errors.Is(err, ErrorNotFound) {
		t.Fatalf("unexpected ErrorNotFound in chain")
	}
}
