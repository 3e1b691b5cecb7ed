package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo down")
	appErr := NewDomainError("INTERNAL_ERROR", "Erro interno do servidor: dynamo down", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected Unwrap to expose the cause")
	}

	body := appErr.ToHTTPError()
	if body["error"] != "Erro interno do servidor: dynamo down" {
		t.Fatalf("unexpected error field: %v", body["error"])
	}
	if body["code"] != "INTERNAL_ERROR" {
		t.Fatalf("unexpected code field: %v", body["code"])
	}
}

func TestAppErrorSimple(t *testing.T) {
	appErr := NewDomainErrorSimple("PECA_NOT_FOUND", "Peça não encontrada", http.StatusNotFound)
	if appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", appErr.HTTPStatus)
	}
	if appErr.Error() != "PECA_NOT_FOUND: Peça não encontrada" {
		t.Fatalf("unexpected Error(): %q", appErr.Error())
	}
}
