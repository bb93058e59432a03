// Package authsvc - Test xây update document cho hồ sơ user.
package authsvc

import (
	"testing"

	authdto "cine_catalog/internal/api/auth/dto"
	"cine_catalog/internal/utility"
)

func TestProfileUpdateSet_PartialFields(t *testing.T) {
	set, err := profileUpdateSet(&authdto.UserUpdateProfileInput{
		Username:       "newname",
		ProfilePicture: "/avatars/newname.png",
	})
	if err != nil {
		t.Fatalf("profileUpdateSet trả về lỗi: %v", err)
	}

	if set["username"] != "newname" {
		t.Errorf("username = %v, muốn newname", set["username"])
	}
	if set["profilePicture"] != "/avatars/newname.png" {
		t.Errorf("profilePicture = %v, muốn /avatars/newname.png", set["profilePicture"])
	}
	if _, ok := set["email"]; ok {
		t.Error("Email rỗng không được đưa vào $set")
	}
	if _, ok := set["password"]; ok {
		t.Error("Password rỗng không được đưa vào $set")
	}
}

func TestProfileUpdateSet_Empty(t *testing.T) {
	set, err := profileUpdateSet(&authdto.UserUpdateProfileInput{})
	if err != nil {
		t.Fatalf("profileUpdateSet trả về lỗi: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("Input rỗng phải cho $set rỗng, có %v", set)
	}
}

func TestProfileUpdateSet_HashesPassword(t *testing.T) {
	set, err := profileUpdateSet(&authdto.UserUpdateProfileInput{Password: "Secret@123"})
	if err != nil {
		t.Fatalf("profileUpdateSet trả về lỗi: %v", err)
	}

	hashed, ok := set["password"].(string)
	if !ok {
		t.Fatalf("password phải là string, có %T", set["password"])
	}
	if hashed == "Secret@123" {
		t.Fatal("Mật khẩu không được lưu dạng plaintext")
	}
	if !utility.CheckPassword(hashed, "Secret@123") {
		t.Error("Hash trong $set phải khớp mật khẩu gốc")
	}
}
