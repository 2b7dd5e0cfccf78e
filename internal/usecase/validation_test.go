package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseInput() RegisterMemberInput {
	return RegisterMemberInput{
		FullName:   "João Silva",
		Email:      "joao@example.com",
		Phone:      "+34 612 345 678",
		BirthDate:  "1990-05-15",
		Address:    "Carrer de Sants 10",
		City:       "Barcelona",
		ZipCode:    "08014",
		Country:    "Espanha",
		ChurchName: "AD Bon Pastor",
	}
}

func fieldNames(errs []ValidationError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateRegisterMemberInputValid(t *testing.T) {
	assert.Empty(t, ValidateRegisterMemberInput(baseInput()))
}

func TestValidateRegisterMemberInputMissingFields(t *testing.T) {
	errs := ValidateRegisterMemberInput(RegisterMemberInput{})

	names := fieldNames(errs)
	assert.Contains(t, names, "full_name")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "phone")
	assert.Contains(t, names, "birth_date")
	assert.Contains(t, names, "address")
	assert.Contains(t, names, "city")
	assert.Contains(t, names, "country")
	assert.Contains(t, names, "church_name")
}

func TestValidateRegisterMemberInputBadEmail(t *testing.T) {
	input := baseInput()
	input.Email = "not-an-email"

	errs := ValidateRegisterMemberInput(input)

	assert.Contains(t, fieldNames(errs), "email")
}

func TestValidateRegisterMemberInputBadPhone(t *testing.T) {
	input := baseInput()
	input.Phone = "123" // dígitos demais de menos

	errs := ValidateRegisterMemberInput(input)

	assert.Contains(t, fieldNames(errs), "phone")
}

func TestValidateRegisterMemberInputBadBirthDate(t *testing.T) {
	input := baseInput()
	input.BirthDate = "15/05/1990"

	errs := ValidateRegisterMemberInput(input)

	assert.Contains(t, fieldNames(errs), "birth_date")
}

func TestValidateRegisterMemberInputBadDocument(t *testing.T) {
	input := baseInput()
	input.DocumentType = "dni"
	input.DocumentNumber = "12345678" // falta a letra

	errs := ValidateRegisterMemberInput(input)

	assert.Contains(t, fieldNames(errs), "document_number")
}

// Familiares: campos inválidos saem com o índice no nome do campo
func TestValidateRegisterMemberInputFamilyMembers(t *testing.T) {
	input := baseInput()
	input.FamilyMembers = []FamilyMemberInput{
		{FullName: "Maria Silva"},
		{FullName: "", BirthDate: "not-a-date", DocumentType: "nie", DocumentNumber: "bad"},
	}

	errs := ValidateRegisterMemberInput(input)

	names := fieldNames(errs)
	assert.Contains(t, names, "family_members[1].full_name")
	assert.Contains(t, names, "family_members[1].birth_date")
	assert.Contains(t, names, "family_members[1].document_number")
	assert.NotContains(t, names, "family_members[0].full_name")
}

func TestIsValidZipCode(t *testing.T) {
	assert.True(t, isValidZipCode("08014"))
	assert.True(t, isValidZipCode("SW1A 1AA")) // espaço é tolerado
	assert.True(t, isValidZipCode("1000-001"))

	assert.False(t, isValidZipCode("ab"))
	assert.False(t, isValidZipCode("123456789"))
	assert.False(t, isValidZipCode("08014!"))
}
