// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vai trò của người dùng
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// WatchlistEntry là một mục trong danh sách xem của user.
// Progress là phần trăm đã xem (0-100).
type WatchlistEntry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	ContentID   primitive.ObjectID `json:"contentId" bson:"contentId"`
	ContentType string             `json:"contentType" bson:"contentType"`
	Progress    int                `json:"progress" bson:"progress"`
	AddedAt     int64              `json:"addedAt" bson:"addedAt"`
}

// FavoriteEntry là một mục trong danh sách yêu thích của user
type FavoriteEntry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	ContentID   primitive.ObjectID `json:"contentId" bson:"contentId"`
	ContentType string             `json:"contentType" bson:"contentType"`
	AddedAt     int64              `json:"addedAt" bson:"addedAt"`
}

// User định nghĩa mô hình người dùng.
// Watchlist và Favorites nhúng trực tiếp trong document user.
type User struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username" index:"unique"`
	Email          string             `json:"email" bson:"email" index:"unique"`
	Password       string             `json:"-" bson:"password"`
	ProfilePicture string             `json:"profilePicture" bson:"profilePicture"`
	Role           string             `json:"role" bson:"role"`
	Watchlist      []WatchlistEntry   `json:"watchlist" bson:"watchlist"`
	Favorites      []FavoriteEntry    `json:"favorites" bson:"favorites"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin kiểm tra user có vai trò admin không
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
