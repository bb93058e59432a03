// Package models - model đánh giá (Review) thuộc domain review.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review là đánh giá của một user cho một content.
// Mỗi user chỉ được đánh giá một content một lần (unique index userId+contentId).
// Review mới tạo hoặc vừa sửa luôn ở trạng thái chờ duyệt (approved=false).
type Review struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId" index:"compound:user_content_unique"`
	ContentID   primitive.ObjectID `json:"contentId" bson:"contentId" index:"compound:user_content_unique"`
	ContentType string             `json:"contentType" bson:"contentType"`
	Username    string             `json:"username" bson:"username"`
	Rating      int                `json:"rating" bson:"rating"`
	ReviewText  string             `json:"reviewText" bson:"reviewText"`
	Approved    bool               `json:"approved" bson:"approved"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
