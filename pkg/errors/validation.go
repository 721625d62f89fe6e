package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// dictionaryNameRegex matches the naming scheme of OpenCV predefined
// dictionaries, e.g. "DICT_6X6_250" or "DICT_ARUCO_ORIGINAL".
var dictionaryNameRegex = regexp.MustCompile(`^DICT_[A-Z0-9]+(_[A-Z0-9]+)*$`)

// ValidateDictionaryName checks that a name is syntactically a dictionary
// name before it is looked up in the registry. A well-formed but unknown name
// still fails the lookup; this catches obvious garbage (paths, empty strings,
// control characters) with a clearer message.
func ValidateDictionaryName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDictionary, "dictionary name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidDictionary, "dictionary name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDictionary, "dictionary name contains control characters")
		}
	}

	if !dictionaryNameRegex.MatchString(name) {
		return New(ErrCodeInvalidDictionary, "malformed dictionary name: %q", name)
	}

	return nil
}

// ValidateOutputDir validates a directory path the tool will create and
// write into.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	return nil
}

// ValidateImagePath validates a path to an existing image given on the
// command line (e.g. for detection). It rejects empty and clearly broken
// paths; existence is checked by the reader.
func ValidateImagePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "image path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "image path contains invalid characters")
	}

	return nil
}
