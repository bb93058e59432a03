package global

import (
	"testing"
)

type reviewInput struct {
	ReviewText string `validate:"required,min=10,max=1000,no_xss"`
	Rating     int    `validate:"required,min=1,max=5"`
}

type registerInput struct {
	Password string `validate:"required,strong_password"`
}

func TestValidator_NoXSS(t *testing.T) {
	InitValidator()

	valid := reviewInput{ReviewText: "Phim hay, diễn xuất tốt.", Rating: 5}
	if err := Validate.Struct(valid); err != nil {
		t.Errorf("Input hợp lệ không được báo lỗi: %v", err)
	}

	cases := []string{
		"Good movie <script>alert(1)</script> indeed",
		"click javascript:alert(1) here please",
		"img tag onerror=alert(1) attack here",
		"<iframe src=x></iframe> nice movie",
	}
	for _, text := range cases {
		input := reviewInput{ReviewText: text, Rating: 3}
		if err := Validate.Struct(input); err == nil {
			t.Errorf("Nội dung chứa XSS phải bị chặn: %q", text)
		}
	}
}

func TestValidator_RatingBounds(t *testing.T) {
	InitValidator()

	for _, rating := range []int{1, 3, 5} {
		input := reviewInput{ReviewText: "Đánh giá đủ dài cho phim này.", Rating: rating}
		if err := Validate.Struct(input); err != nil {
			t.Errorf("Rating %d hợp lệ không được báo lỗi: %v", rating, err)
		}
	}
	for _, rating := range []int{0, 6, -1} {
		input := reviewInput{ReviewText: "Đánh giá đủ dài cho phim này.", Rating: rating}
		if err := Validate.Struct(input); err == nil {
			t.Errorf("Rating %d ngoài khoảng 1-5 phải bị chặn", rating)
		}
	}
}

func TestValidator_ReviewTextLength(t *testing.T) {
	InitValidator()

	short := reviewInput{ReviewText: "Quá ngắn", Rating: 3}
	if err := Validate.Struct(short); err == nil {
		t.Error("Review dưới 10 ký tự phải bị chặn")
	}
}

func TestValidator_StrongPassword(t *testing.T) {
	InitValidator()

	valid := []string{"Secret@123", "abcXYZ99", "P@ssword!"}
	for _, pw := range valid {
		if err := Validate.Struct(registerInput{Password: pw}); err != nil {
			t.Errorf("Mật khẩu %q hợp lệ không được báo lỗi: %v", pw, err)
		}
	}

	invalid := []string{
		"short1A",      // Dưới 8 ký tự
		"alllowercase", // Chỉ 1 nhóm ký tự
		"password123",  // Chỉ 2 nhóm
	}
	for _, pw := range invalid {
		if err := Validate.Struct(registerInput{Password: pw}); err == nil {
			t.Errorf("Mật khẩu yếu %q phải bị chặn", pw)
		}
	}
}
