package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

func ConvertPanicValueToError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}

	return fmt.Errorf("%#v", v)
}

// CombineErrors combines errors into a single error with a multiline message, nil errors are ignored.
// The result is nil if all errors are nil.
func CombineErrors(errs ...error) error {
	finalErrBuff := bytes.NewBuffer(nil)

	for _, err := range errs {
		if err != nil {
			finalErrBuff.WriteString(err.Error())
			finalErrBuff.WriteRune('\n')
		}
	}

	if finalErrBuff.Len() == 0 {
		return nil
	}

	return errors.New(strings.TrimRight(finalErrBuff.String(), "\n"))
}

// CombineErrorsWithPrefixMessage combines errors into a single error with a multiline message.
func CombineErrorsWithPrefixMessage(prefixMsg string, errs ...error) error {
	err := CombineErrors(errs...)
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", prefixMsg, err)
}
