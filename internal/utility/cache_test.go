package utility

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("k", 42)

	v, ok := c.Get("k")
	if !ok {
		t.Fatal("Get phải tìm thấy key vừa Set")
	}
	if v.(int) != 42 {
		t.Errorf("Get trả về %v, muốn 42", v)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get phải trả về false với key không tồn tại")
	}
}

func TestCache_CleanupLoop(t *testing.T) {
	c := NewCache(10*time.Millisecond, 20*time.Millisecond)
	c.Set("k", "v")

	time.Sleep(80 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("Get phải trả về false sau khi cleanup loop đã chạy")
	}
}
