// Package utility - Test tạo và parse JWT.
package utility

import (
	"testing"
)

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := "64f0c2e9a1b2c3d4e5f60718"

	token, err := CreateToken(secret, userID, 30)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	if token == "" {
		t.Fatal("CreateToken trả về token rỗng")
	}

	parsed, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken trả về lỗi: %v", err)
	}
	if parsed != userID {
		t.Errorf("ParseToken trả về user id %q, muốn %q", parsed, userID)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", "64f0c2e9a1b2c3d4e5f60718", 30)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("ParseToken phải trả về lỗi khi sai secret")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-jwt"); err == nil {
		t.Error("ParseToken phải trả về lỗi với chuỗi không phải JWT")
	}
}
