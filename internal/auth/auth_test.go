package auth

import (
	"strings"
	"testing"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	td, err := GenerateJWT("admin@leasehub.io", "test-secret")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if td.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", td.TokenType)
	}

	claims, err := ValidateJWT(td.Token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.Email != "admin@leasehub.io" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	td, err := GenerateJWT("admin@leasehub.io", "test-secret")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ValidateJWT(td.Token, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestValidateJWT_Malformed(t *testing.T) {
	if _, err := ValidateJWT("not.a.token", "test-secret"); err == nil {
		t.Fatal("expected error for malformed token")
	}
	if _, err := ValidateJWT("", "test-secret"); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected empty-token error, got %v", err)
	}
}

func TestGenerateJWT_EmptyInputs(t *testing.T) {
	if _, err := GenerateJWT("", "secret"); err == nil {
		t.Fatal("expected error for empty email")
	}
	if _, err := GenerateJWT("admin@leasehub.io", ""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
