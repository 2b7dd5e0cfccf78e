package usecase

import (
	"regexp"
	"strings"
)

// Tipos de documento aceitos no cadastro
const (
	DocumentTypePassport = "passport"
	DocumentTypeNIE      = "nie"
	DocumentTypeDNI      = "dni"
	DocumentTypeCPF      = "cpf"
	DocumentTypeOther    = "other"
)

// Padrões de formato por tipo de documento (case-insensitive)
var documentPatterns = map[string]*regexp.Regexp{
	DocumentTypePassport: regexp.MustCompile(`(?i)^[A-Z0-9]{6,9}$`),    // letras e números, 6-9 caracteres
	DocumentTypeNIE:      regexp.MustCompile(`(?i)^[XYZ][0-9]{7}[A-Z]$`), // letra X/Y/Z + 7 números + letra
	DocumentTypeDNI:      regexp.MustCompile(`(?i)^[0-9]{8}[A-Z]$`),    // 8 números + letra
}

// ValidateDocument verifica se o formato do número de documento é aceitável
// para o tipo informado. Campo vazio é sempre válido (documento é opcional);
// tipos sem padrão definido também não impõem formato.
func ValidateDocument(docType, value string) bool {
	if value == "" {
		return true
	}

	pattern, ok := documentPatterns[strings.ToLower(docType)]
	if !ok {
		return true
	}

	return pattern.MatchString(value)
}

// DocumentValidationMessage devolve o texto de feedback exibido ao usuário
// para o tipo e o resultado da validação. Não interfere na validade em si.
func DocumentValidationMessage(docType string, valid bool) string {
	switch strings.ToLower(docType) {
	case DocumentTypePassport:
		if valid {
			return "Formato de passaporte válido"
		}
		return "Formato inválido. Use apenas letras e números (6-9 caracteres)"
	case DocumentTypeNIE:
		if valid {
			return "Formato de NIE válido"
		}
		return "Formato inválido. Use: Letra + 7 números + letra (ex: X1234567A)"
	case DocumentTypeDNI:
		if valid {
			return "Formato de DNI válido"
		}
		return "Formato inválido. Use: 8 números + letra (ex: 12345678A)"
	default:
		return ""
	}
}
