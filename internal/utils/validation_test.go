package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("0342-6988007"))
	assert.False(t, IsValidPhone("03426988007"), "missing dash must be rejected")
	assert.False(t, IsValidPhone("0342-698800"))
	assert.False(t, IsValidPhone("1342-6988007"))
	assert.False(t, IsValidPhone(""))
}

func TestCNICValidationAndFormatting(t *testing.T) {
	assert.True(t, IsValidCNIC("3520212345671"))
	assert.True(t, IsValidCNIC("35202-1234567-1"))
	assert.False(t, IsValidCNIC("35202-1234567"))
	assert.False(t, IsValidCNIC("abcde-1234567-1"))

	assert.Equal(t, "35202-1234567-1", FormatCNIC("3520212345671"))
	assert.Equal(t, "35202-12345", FormatCNIC("3520212345"))
	assert.Equal(t, "35202", FormatCNIC("35202"))
	assert.Equal(t, "3520212345671", NormalizeCNIC("35202-1234567-1"))
}

func TestCardValidation(t *testing.T) {
	assert.True(t, IsValidCardNumber("4111 1111 1111 1111"))
	assert.True(t, IsValidCardNumber("4111111111111111"))
	assert.False(t, IsValidCardNumber("4111-1111-1111-1111"))
	assert.False(t, IsValidCardNumber("411111111111111"))

	assert.True(t, IsValidCardExpiry("12/27"))
	assert.False(t, IsValidCardExpiry("12/2027"))
	assert.False(t, IsValidCardExpiry("1227"))

	assert.True(t, IsValidCVV("123"))
	assert.False(t, IsValidCVV("12"))
	assert.False(t, IsValidCVV("1234"))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "************1111", MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "************9876", MaskCardNumber("1234567812349876"))
	assert.Equal(t, "1234", MaskCardNumber("1234"), "short values are left as-is")
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("rider@example.com"))
	assert.False(t, IsValidEmail("rider@example"))
	assert.False(t, IsValidEmail("not-an-email"))
}
