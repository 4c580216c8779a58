// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-sekali")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Errorf("hash has unexpected prefix: %s", hash)
	}

	ok, err := CheckPassword("rahasia-sekali", hash)
	if err != nil {
		t.Fatalf("CheckPassword() error = %v", err)
	}
	if !ok {
		t.Error("CheckPassword() = false for correct password")
	}

	ok, err = CheckPassword("salah", hash)
	if err != nil {
		t.Fatalf("CheckPassword() error = %v", err)
	}
	if ok {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	h1, err := HashPassword("sama")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("sama")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical")
	}
}

func TestCheckPasswordMalformed(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"too few parts", "$argon2id$v=19$m=19456"},
		{"wrong type", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"bad salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
		{"bad params", "$argon2id$v=19$nonsense$c2FsdA$aGFzaA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CheckPassword("x", tt.hash); err == nil {
				t.Errorf("CheckPassword(%q) expected error", tt.hash)
			}
		})
	}
}
