// Package validation provides input validation utilities
package validation

import "strings"

const (
	maxPostTextLen    = 10000
	maxCommentTextLen = 2000
)

// FieldError describes a validation failure on a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the structured result of validating an input struct.
// A nil/empty slice means the input is valid.
type FieldErrors []FieldError

// HasErrors reports whether any field failed validation.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "valid"
	}
	parts := make([]string, 0, len(fe))
	for _, f := range fe {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// PostInput carries the user-supplied fields of a post create or edit request.
type PostInput struct {
	Text     string `json:"text"`
	GroupID  *uint  `json:"group_id,omitempty"`
	ImageKey string `json:"image_key,omitempty"`
}

// ValidatePost checks a post submission and returns the per-field errors.
func ValidatePost(in PostInput) FieldErrors {
	var errs FieldErrors
	text := strings.TrimSpace(in.Text)
	if text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "text is required"})
	} else if len(in.Text) > maxPostTextLen {
		errs = append(errs, FieldError{Field: "text", Message: "text too long (max 10000 characters)"})
	}
	return errs
}

// CommentInput carries the user-supplied fields of a comment submission.
type CommentInput struct {
	Text string `json:"text"`
}

// ValidateComment checks a comment submission and returns the per-field
// errors. Comment failures surface exactly like post failures; invalid
// submissions are never silently dropped.
func ValidateComment(in CommentInput) FieldErrors {
	var errs FieldErrors
	text := strings.TrimSpace(in.Text)
	if text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "text is required"})
	} else if len(in.Text) > maxCommentTextLen {
		errs = append(errs, FieldError{Field: "text", Message: "text too long (max 2000 characters)"})
	}
	return errs
}
