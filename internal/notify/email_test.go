package notify

import (
	"context"
	"errors"
	"testing"
)

func TestNewSendGridSenderRequiresAPIKey(t *testing.T) {
	if s := NewSendGridSender(SendGridConfig{FromEmail: "noreply@blackos.example"}, nil); s != nil {
		t.Fatal("expected nil sender without an api key")
	}
}

func TestSendGridSenderRejectsUnconfigured(t *testing.T) {
	var s *SendGridSender
	err := s.Send(context.Background(), EmailMessage{To: "team@blackos.example"})
	if err == nil {
		t.Fatal("expected error from unconfigured sender")
	}
}

func TestSendGridSenderRejectsMissingRecipient(t *testing.T) {
	s := NewSendGridSender(SendGridConfig{APIKey: "k", FromEmail: "noreply@blackos.example"}, nil)
	err := s.Send(context.Background(), EmailMessage{Subject: "no destination"})
	if !errors.Is(err, ErrNoRecipient) {
		t.Fatalf("expected ErrNoRecipient, got %v", err)
	}
}

func TestStubEmailSenderRecordsMessages(t *testing.T) {
	stub := NewStubEmailSender(nil)

	if err := stub.Send(context.Background(), EmailMessage{To: "team@blackos.example", Subject: "first"}); err != nil {
		t.Fatalf("stub send: %v", err)
	}
	if err := stub.Send(context.Background(), EmailMessage{Subject: "no recipient"}); !errors.Is(err, ErrNoRecipient) {
		t.Fatalf("expected ErrNoRecipient, got %v", err)
	}

	sent := stub.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 recorded message, got %d", len(sent))
	}
	if sent[0].Subject != "first" {
		t.Fatalf("expected recorded subject, got %q", sent[0].Subject)
	}
}
