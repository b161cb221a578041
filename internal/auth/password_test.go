package auth

import (
	"testing"

	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"ok", "secret12", true},
		{"too short", "ab1", false},
		{"no digit", "abcdefgh", false},
		{"no letter", "12345678", false},
		{"long mixed", "correct-horse-9", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.valid {
				if err == nil {
					t.Fatal("expected error")
				}
				if !util.HasCode(err, util.CodeValidationFailed) {
					t.Fatalf("expected validation failure, got %v", err)
				}
			}
		})
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret12", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("secret12", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("expected different hashes for the same input")
	}
	if first == "secret12" {
		t.Fatal("hash must not equal plaintext")
	}
}

func TestHashPasswordRejectsWeak(t *testing.T) {
	if _, err := HashPassword("short1", 4); err == nil {
		t.Fatal("expected weak password rejection")
	}
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret12", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, err := ComparePassword(hash, "secret12")
	if err != nil || !match {
		t.Fatalf("expected match, got match=%v err=%v", match, err)
	}

	match, err = ComparePassword(hash, "wrong-pass1")
	if err != nil {
		t.Fatalf("mismatch must not error: %v", err)
	}
	if match {
		t.Fatal("expected mismatch")
	}
}

func TestComparePasswordCorruptHash(t *testing.T) {
	match, err := ComparePassword("not-a-bcrypt-hash", "secret12")
	if match {
		t.Fatal("expected no match")
	}
	if !util.HasCode(err, util.CodeCorruptCredential) {
		t.Fatalf("expected corrupt credential error, got %v", err)
	}
}
