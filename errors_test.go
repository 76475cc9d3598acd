package nav

import (
	"errors"
	"testing"
)

func TestErrNilSequence_Message(t *testing.T) {
	if ErrNilSequence.Error() != "sequence cannot be nil" {
		t.Errorf("unexpected message: %q", ErrNilSequence.Error())
	}
}

func TestErrNilListener_Message(t *testing.T) {
	if ErrNilListener.Error() != "listener cannot be nil" {
		t.Errorf("unexpected message: %q", ErrNilListener.Error())
	}
}

func TestNavigationError_Message(t *testing.T) {
	err := &NavigationError{Index: 2, Value: 30, Err: errors.New("boom")}
	expected := "navigation stopped at node 2 (value 30): boom"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestNavigationError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &NavigationError{Index: 0, Value: 1, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestNavigationError_As(t *testing.T) {
	var err error = &NavigationError{Index: 1, Value: 2, Err: errors.New("boom")}

	var ne *NavigationError
	if !errors.As(err, &ne) {
		t.Fatal("expected errors.As to match *NavigationError")
	}
	if ne.Index != 1 || ne.Value != 2 {
		t.Errorf("unexpected fields: index=%d value=%d", ne.Index, ne.Value)
	}
}
