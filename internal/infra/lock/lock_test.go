package lock

import (
	"context"
	"testing"
	"time"
)

func TestPropertyKey(t *testing.T) {
	if got := PropertyKey(42); got != "booking:property:42" {
		t.Errorf("PropertyKey() = %q", got)
	}
}

func TestNop_AlwaysAcquires(t *testing.T) {
	var l Locker = Nop{}

	for i := 0; i < 2; i++ {
		release, err := l.Acquire(context.Background(), PropertyKey(1), time.Second)
		if err != nil {
			t.Fatalf("Acquire: %v", err)
		}
		release()
	}
}
