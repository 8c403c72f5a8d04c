package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if len(input.Company) > 200 {
		errors = append(errors, ValidationError{"company", "must not exceed 200 characters"})
	}

	if len(input.Source) > 100 {
		errors = append(errors, ValidationError{"source", "must not exceed 100 characters"})
	}

	return errors
}

func ValidateChatInput(input ChatInput) []ValidationError {
	var errors []ValidationError

	if len(input.Messages) == 0 {
		errors = append(errors, ValidationError{"messages", "is required"})
		return errors
	}

	for i, m := range input.Messages {
		if m.Role != "user" && m.Role != "assistant" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("messages[%d].role", i),
				Message: "must be user or assistant",
			})
		}
		if m.Content == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("messages[%d].content", i),
				Message: "is required",
			})
		}
	}

	return errors
}
