// Package reviewsvc - Test luồng cập nhật và sắp xếp review.
package reviewsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	reviewdto "cine_catalog/internal/api/review/dto"
)

func TestOwnUpdateSet_ResetsApproval(t *testing.T) {
	set := ownUpdateSet(&reviewdto.ReviewUpdateInput{Rating: 4, ReviewText: "Xem lại vẫn thấy hay như lần đầu."})

	if set["approved"] != false {
		t.Error("Chủ review sửa nội dung thì approved phải bị đưa về false")
	}
	if set["rating"] != 4 {
		t.Errorf("rating = %v, muốn 4", set["rating"])
	}
	if set["reviewText"] != "Xem lại vẫn thấy hay như lần đầu." {
		t.Errorf("reviewText = %v", set["reviewText"])
	}
}

func TestOwnUpdateSet_EmptyInputStillResets(t *testing.T) {
	set := ownUpdateSet(&reviewdto.ReviewUpdateInput{})

	if set["approved"] != false {
		t.Error("approved phải bị đưa về false kể cả khi không sửa field nào")
	}
	if _, ok := set["rating"]; ok {
		t.Error("Rating 0 không được đưa vào $set")
	}
	if _, ok := set["reviewText"]; ok {
		t.Error("ReviewText rỗng không được đưa vào $set")
	}
}

func TestPendingFindOptions_NewestFirst(t *testing.T) {
	opts := pendingFindOptions()

	sort, ok := opts.Sort.(bson.D)
	if !ok {
		t.Fatalf("Sort phải là bson.D, có %T", opts.Sort)
	}
	if len(sort) != 1 || sort[0].Key != "createdAt" {
		t.Fatalf("Sort phải theo createdAt: %v", sort)
	}
	if sort[0].Value != -1 {
		t.Errorf("Review chờ duyệt phải sắp mới nhất trước, sort = %v", sort[0].Value)
	}
}
