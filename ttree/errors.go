package ttree

import "fmt"

// CorruptedDataError is raised by a reader whenever the cursor would
// exceed the input length, a tag byte falls outside the registry, a
// field hashtag lacks its high bit, or some other structural rule of
// the wire format is violated while reading.
type CorruptedDataError struct {
	Reason string
}

func (e *CorruptedDataError) Error() string {
	return fmt.Sprintf("ttree: corrupted data: %s", e.Reason)
}

func corrupted(reason string) error {
	return &CorruptedDataError{Reason: reason}
}

func corruptedf(format string, args ...interface{}) error {
	return &CorruptedDataError{Reason: fmt.Sprintf(format, args...)}
}

// MalformedInputError is raised by the encoder when the producer
// supplies a value that violates a structural precondition of the
// format: a non-rectangular table or matrix, a numeric primitive
// outside its declared width, or a constructor index outside its
// legal range.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("ttree: malformed input: %s", e.Reason)
}

func malformed(reason string) error {
	return &MalformedInputError{Reason: reason}
}

func malformedf(format string, args ...interface{}) error {
	return &MalformedInputError{Reason: fmt.Sprintf(format, args...)}
}

// RegistrationError is raised by NewUnhash when two distinct names
// collide on the 31-bit field hash.
type RegistrationError struct {
	NameA, NameB string
	Hash         Hash
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("ttree: hash collision: %q and %q both hash to %#08x", e.NameA, e.NameB, uint32(e.Hash)&0x7fffffff)
}
