// Package authdto chứa các cấu trúc input của domain auth.
package authdto

// UserRegisterInput là dữ liệu đầu vào để đăng ký tài khoản
type UserRegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=30,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput là dữ liệu đầu vào để đăng nhập
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateProfileInput là dữ liệu cập nhật hồ sơ.
// Các field đều optional, chỉ cập nhật field nào có giá trị.
type UserUpdateProfileInput struct {
	Username       string `json:"username,omitempty" validate:"omitempty,min=3,max=30,no_xss"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Password       string `json:"password,omitempty" validate:"omitempty,strong_password"`
	ProfilePicture string `json:"profilePicture,omitempty" validate:"omitempty,max=500,no_xss"`
}
