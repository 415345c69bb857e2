package reach_test

import (
	"testing"

	"github.com/Brandhoej/perfdar/reach"
)

func TestFIFO(t *testing.T) {
	fifo := reach.NewFIFO[int]()
	if _, ok := fifo.Pop(); ok {
		t.Error("an empty queue has nothing to pop")
	}
	fifo.Push(1, 2)
	fifo.Push(3)
	if fifo.Len() != 3 {
		t.Errorf("want 3 queued, got %d", fifo.Len())
	}
	for want := 1; want <= 3; want++ {
		got, ok := fifo.Pop()
		if !ok || got != want {
			t.Errorf("want %d, got %d (ok=%t)", want, got, ok)
		}
	}
}
