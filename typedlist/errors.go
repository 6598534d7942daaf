package typedlist

import (
	"errors"
	"fmt"

	"github.com/inoxlang/typedlist/kind"
)

var (
	ErrUnexpectedKind         = errors.New("unexpected kind")
	ErrNotASequence           = errors.New("not a sequence")
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrNegativeCount          = errors.New("negative count")
	ErrMaxLengthExceeded      = errors.New("maximum list length exceeded")
	ErrNilVariant             = errors.New("nil variant")
	ErrForeignVariant         = errors.New("variant belongs to another registry")
	ErrVariantAlreadyDeclared = errors.New("variant already declared")
)

// ValidationError is returned when a value whose kind is not allowed is passed to an operation,
// the operation has no effect.
type ValidationError struct {
	Expected []kind.Kind
	Actual   kind.Kind

	//index of the rejected element in the candidate sequence, -1 for single values.
	Index int
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("expected one of %s but received a(n) %s", kind.Format(e.Expected), e.actualName())
	if e.Index >= 0 {
		return fmt.Sprintf("element at index %d: %s", e.Index, msg)
	}
	return msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrUnexpectedKind
}

func (e *ValidationError) actualName() string {
	if e.Actual == nil {
		return kind.Nil.Name()
	}
	return e.Actual.Name()
}

// NotASequenceError is returned when an operation expecting an ordered sequence receives another value.
type NotASequenceError struct {
	ValidationError
}

func newNotASequenceError(actual kind.Kind) *NotASequenceError {
	return &NotASequenceError{
		ValidationError: ValidationError{
			Expected: []kind.Kind{kind.Sequence},
			Actual:   actual,
			Index:    -1,
		},
	}
}

func (e *NotASequenceError) Is(target error) bool {
	return target == ErrNotASequence
}

func (e *NotASequenceError) Unwrap() error {
	return &e.ValidationError
}

func fmtIndexOutOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}

func fmtNegativeCount(name string, count int) error {
	return fmt.Errorf("%w: %s is %d", ErrNegativeCount, name, count)
}

func fmtMaxLengthExceeded(name string, count int) error {
	return fmt.Errorf("%w: %s is %d, maximum length is %d", ErrMaxLengthExceeded, name, count, MAX_LENGTH)
}
