package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientInfo(t *testing.T) {
	parsed := ParseClientInfo("Sarah Weber #leadership,confidence @marketing age:34 email:S.Weber@Mail.ch phone:+41-79-123-45-67")

	assert.Equal(t, "Sarah Weber", parsed.Name)
	assert.Equal(t, []string{"leadership", "confidence"}, parsed.Topics)
	assert.Equal(t, "marketing", parsed.Profession)
	assert.Equal(t, 34, parsed.Age)
	assert.Equal(t, "s.weber@mail.ch", parsed.Email)
	assert.Equal(t, "+41791234567", parsed.Phone)
	assert.Empty(t, parsed.Errors)
}

func TestParseClientInfoPlainName(t *testing.T) {
	parsed := ParseClientInfo("Michael Keller")

	assert.Equal(t, "Michael Keller", parsed.Name)
	assert.Empty(t, parsed.Topics)
	assert.Empty(t, parsed.Email)
	assert.Zero(t, parsed.Age)
	assert.Empty(t, parsed.Errors)
}

func TestParseClientInfoSeparateTopics(t *testing.T) {
	parsed := ParseClientInfo("Anna Zimmermann #karriere #selbstvertrauen")

	assert.Equal(t, "Anna Zimmermann", parsed.Name)
	assert.Equal(t, []string{"karriere", "selbstvertrauen"}, parsed.Topics)
}

func TestParseClientInfoCollectsErrors(t *testing.T) {
	parsed := ParseClientInfo("Jemand age:500 email:kaputt")

	assert.Equal(t, "Jemand", parsed.Name)
	assert.Len(t, parsed.Errors, 2)
	assert.Zero(t, parsed.Age)
	assert.Empty(t, parsed.Email)
}

func TestNormalizeEmail(t *testing.T) {
	email, err := NormalizeEmail("  Sarah.Weber@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "sarah.weber@example.com", email)

	_, err = NormalizeEmail("not-an-email")
	assert.Error(t, err)

	email, err = NormalizeEmail("")
	require.NoError(t, err)
	assert.Equal(t, "", email)
}

func TestNormalizePhone(t *testing.T) {
	phone, err := NormalizePhone("+41 79 123 45 67")
	require.NoError(t, err)
	assert.Equal(t, "+41791234567", phone)

	phone, err = NormalizePhone("079-123-45-67")
	require.NoError(t, err)
	assert.Equal(t, "0791234567", phone)

	_, err = NormalizePhone("hello")
	assert.Error(t, err)
}

func TestParseSinceAbsolute(t *testing.T) {
	since, err := ParseSince("15/12/2024")
	require.NoError(t, err)
	require.NotNil(t, since)
	assert.Equal(t, 2024, since.Year())
	assert.Equal(t, time.December, since.Month())
	assert.Equal(t, 15, since.Day())
}

func TestParseSinceRelative(t *testing.T) {
	since, err := ParseSince("2 weeks")
	require.NoError(t, err)
	require.NotNil(t, since)

	expected := time.Now().AddDate(0, 0, -14)
	assert.Equal(t, expected.Year(), since.Year())
	assert.Equal(t, expected.YearDay(), since.YearDay())
}

func TestParseSinceInvalid(t *testing.T) {
	_, err := ParseSince("soon")
	assert.Error(t, err)

	_, err = ParseSince("31/02/2024")
	assert.Error(t, err)
}

func TestParseSinceEmpty(t *testing.T) {
	since, err := ParseSince("")
	require.NoError(t, err)
	assert.Nil(t, since)
}
