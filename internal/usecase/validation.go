package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateRegisterMemberInput(input RegisterMemberInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FullName) == "" {
		errors = append(errors, ValidationError{"full_name", "is required"})
	} else if len(input.FullName) < 3 {
		errors = append(errors, ValidationError{"full_name", "must have at least 3 characters"})
	} else if len(input.FullName) > 200 {
		errors = append(errors, ValidationError{"full_name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.BirthDate) == "" {
		errors = append(errors, ValidationError{"birth_date", "is required"})
	} else if !isValidDate(input.BirthDate) {
		errors = append(errors, ValidationError{"birth_date", "must be a valid date (YYYY-MM-DD)"})
	}

	if !ValidateDocument(input.DocumentType, input.DocumentNumber) {
		errors = append(errors, ValidationError{"document_number", DocumentValidationMessage(input.DocumentType, false)})
	}

	if strings.TrimSpace(input.Address) == "" {
		errors = append(errors, ValidationError{"address", "is required"})
	}
	if strings.TrimSpace(input.City) == "" {
		errors = append(errors, ValidationError{"city", "is required"})
	}
	if strings.TrimSpace(input.Country) == "" {
		errors = append(errors, ValidationError{"country", "is required"})
	}
	if !isValidZipCode(input.ZipCode) {
		errors = append(errors, ValidationError{"zip_code", "must be a valid postal code"})
	}

	if strings.TrimSpace(input.ChurchName) == "" {
		errors = append(errors, ValidationError{"church_name", "is required"})
	}

	// Familiares: só nome é obrigatório; documento segue a mesma regra
	// do titular (vazio vale, preenchido tem que bater com o formato)
	for i, fm := range input.FamilyMembers {
		if strings.TrimSpace(fm.FullName) == "" {
			errors = append(errors, ValidationError{
				fmt.Sprintf("family_members[%d].full_name", i), "is required",
			})
		}
		if fm.BirthDate != "" && !isValidDate(fm.BirthDate) {
			errors = append(errors, ValidationError{
				fmt.Sprintf("family_members[%d].birth_date", i), "must be a valid date (YYYY-MM-DD)",
			})
		}
		if !ValidateDocument(fm.DocumentType, fm.DocumentNumber) {
			errors = append(errors, ValidationError{
				fmt.Sprintf("family_members[%d].document_number", i),
				DocumentValidationMessage(fm.DocumentType, false),
			})
		}
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")

	return len(cleaned) >= 7 && len(cleaned) <= 15
}

func isValidDate(dateStr string) bool {

	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}

	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}

	return false
}

func isValidZipCode(zipcode string) bool {
	cleaned := regexp.MustCompile(`\s`).ReplaceAllString(zipcode, "")
	return regexp.MustCompile(`^[A-Za-z0-9-]{3,8}$`).MatchString(cleaned)
}
