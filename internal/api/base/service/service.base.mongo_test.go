// Package basesvc - Test build update document.
package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildUpdateDocument_UpdateData(t *testing.T) {
	update := &UpdateData{
		Set:  map[string]interface{}{"title": "Fight Club"},
		Push: map[string]interface{}{"watchlist": bson.M{"contentId": "x"}},
	}

	doc, err := buildUpdateDocument(update)
	if err != nil {
		t.Fatalf("buildUpdateDocument trả về lỗi: %v", err)
	}

	set, ok := doc["$set"].(map[string]interface{})
	if !ok {
		t.Fatalf("$set phải là map, có %T", doc["$set"])
	}
	if set["title"] != "Fight Club" {
		t.Errorf("$set thiếu trường title: %v", set)
	}
	if _, ok := set["updatedAt"]; !ok {
		t.Error("buildUpdateDocument phải tự gán updatedAt vào $set")
	}
	if _, ok := doc["$push"]; !ok {
		t.Error("$push phải được giữ lại trong update document")
	}
	if _, ok := doc["$unset"]; ok {
		t.Error("$unset rỗng không được xuất hiện trong update document")
	}
}

func TestBuildUpdateDocument_EmptySet(t *testing.T) {
	doc, err := buildUpdateDocument(&UpdateData{
		Pull: map[string]interface{}{"favorites": bson.M{"_id": "x"}},
	})
	if err != nil {
		t.Fatalf("buildUpdateDocument trả về lỗi: %v", err)
	}

	set, ok := doc["$set"].(map[string]interface{})
	if !ok {
		t.Fatalf("$set phải tồn tại kể cả khi Set nil, có %T", doc["$set"])
	}
	if _, ok := set["updatedAt"]; !ok {
		t.Error("updatedAt phải được gán kể cả khi Set nil")
	}
}

func TestBuildUpdateDocument_BsonM(t *testing.T) {
	doc, err := buildUpdateDocument(bson.M{
		"$set": bson.M{"approved": true},
	})
	if err != nil {
		t.Fatalf("buildUpdateDocument trả về lỗi: %v", err)
	}

	set, ok := doc["$set"].(bson.M)
	if !ok {
		t.Fatalf("$set phải là bson.M, có %T", doc["$set"])
	}
	if set["approved"] != true {
		t.Errorf("$set thiếu trường approved: %v", set)
	}
	if _, ok := set["updatedAt"]; !ok {
		t.Error("updatedAt phải được gán vào $set có sẵn")
	}
}

func TestBuildUpdateDocument_Struct(t *testing.T) {
	type payload struct {
		Title     string `bson:"title"`
		CreatedAt int64  `bson:"createdAt"`
	}

	doc, err := buildUpdateDocument(payload{Title: "Se7en", CreatedAt: 123})
	if err != nil {
		t.Fatalf("buildUpdateDocument trả về lỗi: %v", err)
	}

	set, ok := doc["$set"].(map[string]interface{})
	if !ok {
		t.Fatalf("$set phải là map, có %T", doc["$set"])
	}
	if set["title"] != "Se7en" {
		t.Errorf("$set thiếu trường title: %v", set)
	}
	if _, ok := set["createdAt"]; ok {
		t.Error("createdAt không được phép bị ghi đè qua update")
	}
}
