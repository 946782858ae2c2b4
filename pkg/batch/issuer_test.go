package batch

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/mwendt/sprechpass/pkg/sprechpass"
)

func TestIssueBatch(t *testing.T) {
	is := NewIssuer(sprechpass.German())
	passwords, err := is.Issue(context.Background(), 50, 2)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if len(passwords) != 50 {
		t.Fatalf("expected 50 passwords, got %d", len(passwords))
	}

	pattern := regexp.MustCompile(`^[a-z]+[2-9]{2}$`)
	for i, pw := range passwords {
		if !pattern.MatchString(pw) {
			t.Errorf("password %d %q does not match pattern", i, pw)
		}
	}
}

func TestIssueZero(t *testing.T) {
	is := NewIssuer(sprechpass.German())
	passwords, err := is.Issue(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if len(passwords) != 0 {
		t.Fatalf("expected no passwords, got %d", len(passwords))
	}
}

func TestIssueInvalidArguments(t *testing.T) {
	is := NewIssuer(sprechpass.German())
	if _, err := is.Issue(context.Background(), -1, 0); err == nil {
		t.Fatal("expected error for negative count")
	}
	if _, err := is.Issue(context.Background(), 1, -1); !errors.Is(err, sprechpass.ErrInvalidDigitCount) {
		t.Fatalf("expected ErrInvalidDigitCount, got %v", err)
	}
}

func TestIssueMalformedModel(t *testing.T) {
	m := &sprechpass.Model{
		StartVowel:     sprechpass.ChainTable{"": {"a"}},
		VowelConsonant: sprechpass.ChainTable{"o": {"t"}}, // "a" missing
		ConsonantVowel: sprechpass.ChainTable{"t": {"e"}},
		VowelEnd:       sprechpass.ChainTable{"e": {"r"}},
		Vowels:         sprechpass.DefaultVowels,
		Digits:         sprechpass.DefaultDigits,
	}

	is := NewIssuer(m)
	_, err := is.Issue(context.Background(), 10, 0)
	var malformed *sprechpass.MalformedTableError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedTableError, got %v", err)
	}
}

func TestIssueCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	is := NewIssuer(sprechpass.German())
	if _, err := is.Issue(ctx, 1000, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestIssueSingleWorker(t *testing.T) {
	is := &Issuer{Model: sprechpass.German(), Workers: 1}
	passwords, err := is.Issue(context.Background(), 7, 0)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if len(passwords) != 7 {
		t.Fatalf("expected 7 passwords, got %d", len(passwords))
	}
	for i, pw := range passwords {
		if pw == "" {
			t.Errorf("password %d is empty", i)
		}
	}
}
