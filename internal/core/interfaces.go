package core

// Marshaler abstracts serialization so savers can be tested without encoders.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
