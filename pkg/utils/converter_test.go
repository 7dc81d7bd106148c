package utils

import (
	"testing"
	"time"
)

func TestToDuration(t *testing.T) {
	if got := ToDuration(3); got != 3*time.Second {
		t.Errorf("ToDuration(3) = %v, want 3s", got)
	}
	if got := ToDuration(0); got != 0 {
		t.Errorf("ToDuration(0) = %v, want 0", got)
	}
}

func TestToDurationMs(t *testing.T) {
	if got := ToDurationMs(250); got != 250*time.Millisecond {
		t.Errorf("ToDurationMs(250) = %v, want 250ms", got)
	}
	if got := ToDurationMs(-1); got != -time.Millisecond {
		t.Errorf("ToDurationMs(-1) = %v, want -1ms", got)
	}
}
