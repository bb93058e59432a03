package utility

import (
	"testing"
)

func TestHashPassword_CheckPassword(t *testing.T) {
	hashed, err := HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi: %v", err)
	}
	if hashed == "Secret@123" {
		t.Fatal("HashPassword không được trả về mật khẩu gốc")
	}

	if !CheckPassword(hashed, "Secret@123") {
		t.Error("CheckPassword phải trả về true với đúng mật khẩu")
	}
	if CheckPassword(hashed, "Wrong@123") {
		t.Error("CheckPassword phải trả về false với sai mật khẩu")
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	h1, err := HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi: %v", err)
	}
	h2, err := HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi: %v", err)
	}
	if h1 == h2 {
		t.Error("Hai lần hash cùng mật khẩu phải cho kết quả khác nhau")
	}
}
