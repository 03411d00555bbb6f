package errors

import (
	"strings"
	"unicode"
)

// ValidateCategoryTitle validates a category title before it is used as a
// graph root or report subject.
//
// The validation rules are intentionally conservative:
//   - No empty titles
//   - No control characters
//   - Maximum length of 256 characters (MediaWiki's limit is 255 bytes)
//
// Namespace checking is left to callers; titles without the "Category:"
// prefix are legal inputs for wikis with localized namespaces.
func ValidateCategoryTitle(title string) error {
	if title == "" {
		return New(ErrCodeInvalidTitle, "category title cannot be empty")
	}

	if len(title) > 256 {
		return New(ErrCodeInvalidTitle, "category title too long (max 256 characters)")
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTitle, "category title contains control characters")
		}
	}

	// MediaWiki-forbidden title characters.
	if strings.ContainsAny(title, "[]{}<>|#") {
		return New(ErrCodeInvalidTitle, "category title contains forbidden characters")
	}

	return nil
}

// ValidateSnapshotPath validates a snapshot file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes
func ValidateSnapshotPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "snapshot path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "snapshot path too long (max 500 characters)")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "snapshot path contains null byte")
	}

	return nil
}

// ValidateLanguageName validates a language name from configuration.
// Names are display names ("Česky", "Deutsch"), not BCP 47 tags.
func ValidateLanguageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLanguage, "language name cannot be empty")
	}

	if strings.ContainsAny(name, "()") {
		return New(ErrCodeInvalidLanguage, "language name cannot contain parentheses")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLanguage, "language name contains control characters")
		}
	}

	return nil
}
