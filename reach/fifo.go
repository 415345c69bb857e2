package reach

// FIFO is a first-in-first-out queue. The search uses one as its frontier
// so that states are expanded in discovery order.
type FIFO[T any] struct {
	values []T
}

func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{}
}

func (fifo *FIFO[T]) Push(values ...T) {
	fifo.values = append(fifo.values, values...)
}

func (fifo *FIFO[T]) Pop() (T, bool) {
	if len(fifo.values) == 0 {
		var zero T
		return zero, false
	}
	value := fifo.values[0]
	fifo.values = fifo.values[1:]
	return value, true
}

func (fifo *FIFO[T]) Len() int {
	return len(fifo.values)
}
