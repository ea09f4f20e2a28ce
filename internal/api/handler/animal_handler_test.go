package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/pawtracks/training-system/internal/core/domain"
	"github.com/pawtracks/training-system/internal/core/ports"
)

type stubAnimalService struct {
	lastInput ports.CreateAnimalInput
	err       error
}

func (s *stubAnimalService) Create(_ context.Context, input ports.CreateAnimalInput) (*domain.Animal, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Animal{
		ID:           "64a000000000000000000099",
		Name:         input.Name,
		HoursTrained: 0,
		Owner:        input.OwnerID,
		DateOfBirth:  input.DateOfBirth,
	}, nil
}

func TestAnimalHandler_Create_Success(t *testing.T) {
	svc := &stubAnimalService{}
	h := NewAnimalHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/animal",
		`{"name":"Rex","dateOfBirth":"2020-06-01"}`)
	withCaller(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	assertStatus(t, rec, http.StatusOK)
	body := decodeBody(t, rec)
	if body["name"] != "Rex" {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["hoursTrained"] != float64(0) {
		t.Fatalf("hoursTrained must be 0, got %v", body["hoursTrained"])
	}
	if body["owner"] != testCallerID {
		t.Fatalf("owner must be the caller, got %v", body["owner"])
	}

	if svc.lastInput.OwnerID != testCallerID {
		t.Fatalf("service received owner %q", svc.lastInput.OwnerID)
	}
	if svc.lastInput.DateOfBirth == nil {
		t.Fatalf("dateOfBirth not parsed")
	}
}

// The owner always comes from the token, so an owner field in the payload is
// ignored.
func TestAnimalHandler_Create_IgnoresOwnerInPayload(t *testing.T) {
	svc := &stubAnimalService{}
	h := NewAnimalHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/animal",
		`{"name":"Rex","owner":"64a000000000000000000fff"}`)
	withCaller(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)
	if svc.lastInput.OwnerID != testCallerID {
		t.Fatalf("owner must come from the token, got %q", svc.lastInput.OwnerID)
	}
}

func TestAnimalHandler_Create_MissingName(t *testing.T) {
	h := NewAnimalHandler(&stubAnimalService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/animal", `{"dateOfBirth":"2020-06-01"}`)
	withCaller(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusBadRequest)
	body := decodeBody(t, rec)
	fields, _ := body["errors"].(map[string]any)
	if _, present := fields["name"]; !present {
		t.Fatalf("expected name error, got %v", body)
	}
}

func TestAnimalHandler_Create_BadDate(t *testing.T) {
	h := NewAnimalHandler(&stubAnimalService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/animal",
		`{"name":"Rex","dateOfBirth":"yesterday"}`)
	withCaller(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestAnimalHandler_Create_NoIdentity(t *testing.T) {
	h := NewAnimalHandler(&stubAnimalService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/animal", `{"name":"Rex"}`)

	assertUnauthorized(t, h.Create(c))
}
