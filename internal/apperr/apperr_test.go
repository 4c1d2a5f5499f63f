package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("wajib diisi"), http.StatusBadRequest},
		{Upload("file ditolak"), http.StatusBadRequest},
		{NotFound("tidak ditemukan"), http.StatusNotFound},
		{Internal("gagal", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := Status(tt.err); got != tt.want {
			t.Fatalf("Status(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("tidak ditemukan"))
	if KindOf(err) != KindNotFound {
		t.Fatalf("KindOf = %v, want not-found", KindOf(err))
	}
	if Status(err) != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", Status(err))
	}
}

func TestMessage(t *testing.T) {
	if got := Message(Validation("pesan khusus"), "fallback"); got != "pesan khusus" {
		t.Fatalf("Message = %q", got)
	}
	if got := Message(errors.New("internal detail"), "fallback"); got != "fallback" {
		t.Fatalf("Message = %q, want the fallback (internals must not leak)", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial tcp refused")
	err := Internal("gagal", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
}
