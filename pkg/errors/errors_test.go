package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDictionary, "unsupported dictionary: %s", "DICT_9X9_1")

	if err.Code != ErrCodeInvalidDictionary {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDictionary)
	}

	if err.Message != "unsupported dictionary: DICT_9X9_1" {
		t.Errorf("Message = %v, want %v", err.Message, "unsupported dictionary: DICT_9X9_1")
	}

	expected := "INVALID_DICTIONARY: unsupported dictionary: DICT_9X9_1"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeRender, cause, "render marker 5")

	if err.Code != ErrCodeRender {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRender)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidMarkerID, "test"),
			code:     ErrCodeInvalidMarkerID,
			expected: true,
		},
		{
			name:     "different code",
			err:      New(ErrCodeInvalidMarkerID, "test"),
			code:     ErrCodeInvalidSize,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeRender,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeEncode, errors.New("disk full"), "encode"),
			code:     ErrCodeEncode,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidPath, "bad path")); got != ErrCodeInvalidPath {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidPath)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidDictionary, "unsupported dictionary")
	if got := UserMessage(err); got != "unsupported dictionary" {
		t.Errorf("UserMessage() = %q, want %q", got, "unsupported dictionary")
	}

	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain failure")
	}
}
