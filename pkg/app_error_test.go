package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("CART_EMPTY", "Cart is empty", http.StatusUnprocessableEntity)
		if e.Error() != "CART_EMPTY: Cart is empty" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no cause")
		}
		if got := e.ToHTTPError(); got.Code != "CART_EMPTY" || got.Message != "Cart is empty" {
			t.Fatalf("unexpected http error %+v", got)
		}
	})

	t.Run("wrapped cause stays internal", func(t *testing.T) {
		cause := errors.New("disk full")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
		if e.Error() != "INTERNAL_ERROR: An internal error occurred: disk full" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if got := e.ToHTTPError(); got.Message != "An internal error occurred" {
			t.Fatalf("cause leaked: %+v", got)
		}
	})
}
