// Package reviewdto chứa các cấu trúc input của domain review.
package reviewdto

// ReviewCreateInput là dữ liệu đầu vào để tạo review mới
type ReviewCreateInput struct {
	ContentID   string `json:"contentId" validate:"required,len=24,hexadecimal"`
	ContentType string `json:"contentType" validate:"required,oneof=Movie Series"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText  string `json:"reviewText" validate:"required,min=10,max=1000,no_xss"`
}

// ReviewUpdateInput là dữ liệu cập nhật review. Chỉ field có giá trị mới được cập nhật.
type ReviewUpdateInput struct {
	Rating     int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	ReviewText string `json:"reviewText,omitempty" validate:"omitempty,min=10,max=1000,no_xss"`
}
