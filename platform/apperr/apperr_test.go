package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusByKind(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Validation("x"), http.StatusBadRequest},
		{BadRequest("x"), http.StatusBadRequest},
		{Internal("x"), http.StatusInternalServerError},
		{Unavailable("x", errors.New("y")), http.StatusBadGateway},
	}
	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Fatalf("kind %d: expected %d, got %d", tc.err.Kind, tc.want, got)
		}
	}
}

func TestGetKindLooksThroughWrapping(t *testing.T) {
	err := fmt.Errorf("analyze: %w", NotFound("adres niet gevonden"))
	if !Is(err, KindNotFound) {
		t.Fatalf("expected wrapped error to report KindNotFound, got %d", GetKind(err))
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatalf("expected KindUnknown for plain errors")
	}
}

func TestErrorIncludesOp(t *testing.T) {
	err := Validation("adres is verplicht").WithOp("location.Analyze")
	if err.Error() != "location.Analyze: adres is verplicht" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
