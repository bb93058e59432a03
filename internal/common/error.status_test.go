// Package common - Test chuyển đổi lỗi MongoDB.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) trả về %v, muốn nil", got)
	}
}

func TestConvertMongoError_NotFoundPreserved(t *testing.T) {
	got := ConvertMongoError(ErrNotFound)
	if !errors.Is(got, ErrNotFound) {
		t.Fatalf("ConvertMongoError phải giữ nguyên ErrNotFound, trả về %v", got)
	}
	appErr, ok := got.(*Error)
	if !ok {
		t.Fatal("Kết quả phải là *Error")
	}
	if appErr.StatusCode != StatusNotFound {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, StatusNotFound)
	}
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	got := ConvertMongoError(duplicateKeyError())
	if !errors.Is(got, ErrMongoDuplicate) {
		t.Fatalf("ConvertMongoError phải trả về ErrMongoDuplicate, trả về %v", got)
	}
	appErr, ok := got.(*Error)
	if !ok {
		t.Fatal("Kết quả phải là *Error")
	}
	if appErr.StatusCode != StatusBadRequest {
		t.Errorf("Lỗi trùng khóa phải có status 400, có %d", appErr.StatusCode)
	}
}

func TestConvertMongoError_Unknown(t *testing.T) {
	got := ConvertMongoError(errors.New("boom"))
	appErr, ok := got.(*Error)
	if !ok {
		t.Fatal("Kết quả phải là *Error")
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("Lỗi không xác định phải có status 500, có %d", appErr.StatusCode)
	}
}

func TestIsDuplicate(t *testing.T) {
	if !IsDuplicate(ErrMongoDuplicate) {
		t.Error("IsDuplicate(ErrMongoDuplicate) phải trả về true")
	}
	if !IsDuplicate(duplicateKeyError()) {
		t.Error("IsDuplicate phải nhận diện lỗi trùng khóa thô từ driver")
	}
	if IsDuplicate(ErrNotFound) {
		t.Error("IsDuplicate(ErrNotFound) phải trả về false")
	}
	if IsDuplicate(nil) {
		t.Error("IsDuplicate(nil) phải trả về false")
	}
}
