package application

import (
	"context"
	"errors"
	"testing"
)

func TestSubmitContact(t *testing.T) {
	repo := &fakeContactRepository{}
	svc := NewContactService(repo, nil, nil)

	m, err := svc.Submit(context.Background(), SubmitContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Is the flat still available?",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if m.ID == 0 {
		t.Error("ID not assigned")
	}
	if len(repo.rows) != 1 {
		t.Errorf("row count = %d, want 1", len(repo.rows))
	}
}

func TestSubmitContactAllowsAnonymous(t *testing.T) {
	repo := &fakeContactRepository{}
	svc := NewContactService(repo, nil, nil)

	if _, err := svc.Submit(context.Background(), SubmitContactInput{Message: "hello"}); err != nil {
		t.Fatalf("Submit without name/email: %v", err)
	}
}

func TestSubmitContactRequiresMessage(t *testing.T) {
	repo := &fakeContactRepository{}
	svc := NewContactService(repo, nil, nil)

	for _, msg := range []string{"", "  \t "} {
		if _, err := svc.Submit(context.Background(), SubmitContactInput{Name: "Ana", Message: msg}); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Submit(message=%q) err = %v, want ErrInvalidInput", msg, err)
		}
	}
	if len(repo.rows) != 0 {
		t.Errorf("%d rows written for invalid input", len(repo.rows))
	}
}
