package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/pawtracks/training-system/internal/core/domain"
	"github.com/pawtracks/training-system/internal/core/ports"
)

type stubAdminService struct {
	lastInput ports.PageInput
	users     *ports.UserPage
	animals   *ports.AnimalPage
	logs      *ports.TrainingLogPage
}

func (s *stubAdminService) ListUsers(_ context.Context, input ports.PageInput) (*ports.UserPage, error) {
	s.lastInput = input
	return s.users, nil
}

func (s *stubAdminService) ListAnimals(_ context.Context, input ports.PageInput) (*ports.AnimalPage, error) {
	s.lastInput = input
	return s.animals, nil
}

func (s *stubAdminService) ListTrainingLogs(_ context.Context, input ports.PageInput) (*ports.TrainingLogPage, error) {
	s.lastInput = input
	return s.logs, nil
}

func TestAdminHandler_ListUsers(t *testing.T) {
	svc := &stubAdminService{
		users: &ports.UserPage{
			Items: []*domain.User{
				{ID: "64a000000000000000000001", Email: "a@example.com"},
				{ID: "64a000000000000000000002", Email: "b@example.com"},
			},
			LastID: "64a000000000000000000002",
		},
	}
	h := NewAdminHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/api/admin/users?size=2&lastId=64a000000000000000000000", "")
	withCaller(c)

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	assertStatus(t, rec, http.StatusOK)
	if svc.lastInput.Size != 2 || svc.lastInput.LastID != "64a000000000000000000000" {
		t.Fatalf("query params not forwarded: %+v", svc.lastInput)
	}

	body := decodeBody(t, rec)
	items, ok := body["data"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 data items, got %v", body["data"])
	}
	if body["lastId"] != "64a000000000000000000002" {
		t.Fatalf("unexpected lastId: %v", body["lastId"])
	}
}

func TestAdminHandler_ListUsers_DefaultsOnMissingParams(t *testing.T) {
	svc := &stubAdminService{users: &ports.UserPage{}}
	h := NewAdminHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/api/admin/users", "")
	withCaller(c)

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)
	if svc.lastInput.Size != 0 || svc.lastInput.LastID != "" {
		t.Fatalf("expected zero-value page input, got %+v", svc.lastInput)
	}
}

// Empty pages serialize as data: [] with no lastId key at all.
func TestAdminHandler_EmptyPageShape(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{users: &ports.UserPage{}})

	c, rec := newJSONContext(t, http.MethodGet, "/api/admin/users", "")
	withCaller(c)

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	raw := rec.Body.String()
	if !strings.Contains(raw, `"data":[]`) {
		t.Fatalf("empty page must serialize data as [], got %s", raw)
	}
	if strings.Contains(raw, "lastId") {
		t.Fatalf("empty page must omit lastId, got %s", raw)
	}
}

func TestAdminHandler_ListAnimals(t *testing.T) {
	svc := &stubAdminService{
		animals: &ports.AnimalPage{
			Items:  []*domain.Animal{{ID: "64a000000000000000000011", Name: "Rex"}},
			LastID: "64a000000000000000000011",
		},
	}
	h := NewAdminHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/api/admin/animals?size=5", "")
	withCaller(c)

	if err := h.ListAnimals(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)
	if svc.lastInput.Size != 5 {
		t.Fatalf("size not forwarded: %+v", svc.lastInput)
	}
	body := decodeBody(t, rec)
	if body["lastId"] != "64a000000000000000000011" {
		t.Fatalf("unexpected lastId: %v", body["lastId"])
	}
}

func TestAdminHandler_ListTrainingLogs(t *testing.T) {
	svc := &stubAdminService{
		logs: &ports.TrainingLogPage{
			Items:  []*domain.TrainingLog{{ID: "64a000000000000000000021", Description: "recall"}},
			LastID: "64a000000000000000000021",
		},
	}
	h := NewAdminHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/api/admin/training", "")
	withCaller(c)

	if err := h.ListTrainingLogs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)
	items, _ := decodeBody(t, rec)["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 data item, got %v", items)
	}
}

// A malformed size falls through as 0 and the service applies its default.
func TestAdminHandler_MalformedSize(t *testing.T) {
	svc := &stubAdminService{users: &ports.UserPage{}}
	h := NewAdminHandler(svc)

	c, _ := newJSONContext(t, http.MethodGet, "/api/admin/users?size=lots", "")
	withCaller(c)

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.lastInput.Size != 0 {
		t.Fatalf("malformed size must parse to 0, got %d", svc.lastInput.Size)
	}
}
