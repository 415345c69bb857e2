package perfdar

import "io"

// Loader reads a value from a stream.
type Loader[T any] interface {
	Load(io.Reader) (T, error)
}

// Flusher writes a value to a stream.
type Flusher[T any] interface {
	Flush(io.Writer, T) error
}
