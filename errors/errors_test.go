package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsError(t *testing.T) {
	assert.Equal(t, "no errors", Errors{}.Error())
	assert.Equal(t, "EOF", Errors{io.EOF}.Error())
	assert.Equal(t, "multiple errors:\n\tfoo\n\tbar\n\tbaz", Errors{New("foo"), New("bar\nbaz")}.Error())
}

func TestErrorsReturn(t *testing.T) {
	var errs Errors
	assert.NoError(t, errs.Return())
	errs = errs.Append(nil, io.EOF, nil)
	assert.Len(t, errs, 1)
	assert.Error(t, errs.Return())
}

type codeError int

func (err codeError) Error() string { return "code" }

func TestErrorsUnwrap(t *testing.T) {
	errs := Errors{New("foo"), io.ErrUnexpectedEOF, codeError(3)}
	assert.True(t, Is(errs, io.ErrUnexpectedEOF))
	assert.False(t, Is(errs, io.EOF))

	var code codeError
	if assert.True(t, As(Union(nil, errs), &code)) {
		assert.Equal(t, codeError(3), code)
	}
}

func TestUnion(t *testing.T) {
	assert.NoError(t, Union(nil, Errors{}, nil))

	err := Union(io.EOF, nil, Errors{io.ErrShortWrite, nil}, io.ErrUnexpectedEOF)
	errs, ok := err.(Errors)
	if assert.True(t, ok) {
		assert.Equal(t, Errors{io.EOF, io.ErrShortWrite, io.ErrUnexpectedEOF}, errs)
	}
}
