package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	valid := []string{
		"Jane Doe",
		"Mary-Jane O'Neil",
		"Dr. John Smith Jr.",
		"A",
		strings.Repeat("a", 100),
	}
	for _, name := range valid {
		assert.NoError(t, FullName(name), "expected %q to be valid", name)
	}

	invalid := []string{
		"",
		"Jane123",
		"Jane_Doe",
		"Jane@Doe",
		strings.Repeat("a", 101),
	}
	for _, name := range invalid {
		assert.Error(t, FullName(name), "expected %q to be invalid", name)
	}
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("a@b.com"))
	assert.NoError(t, Email("jane.doe+tag@example.co.uk"))

	assert.Error(t, Email(""))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email("a@b"))
	assert.Error(t, Email("a b@c.com"))

	// 255 char cap
	long := strings.Repeat("a", 250) + "@example.com"
	assert.Error(t, Email(long))
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("+234 (0) 8012345678"))
	assert.NoError(t, Phone("08012345678"))

	assert.Error(t, Phone(""))
	assert.Error(t, Phone("phone123"))
	assert.Error(t, Phone(strings.Repeat("1", 21)))
}

func TestNoteAndDescriptionCaps(t *testing.T) {
	assert.NoError(t, Note(strings.Repeat("x", 1000)))
	assert.Error(t, Note(strings.Repeat("x", 1001)))

	assert.NoError(t, Description(strings.Repeat("x", 2000)))
	assert.Error(t, Description(strings.Repeat("x", 2001)))
}

func TestChatMessage(t *testing.T) {
	assert.NoError(t, ChatMessage("hello", ""))
	assert.NoError(t, ChatMessage("", "https://cdn.example.com/pic.png"))
	assert.NoError(t, ChatMessage("hello", "https://cdn.example.com/pic.png"))

	assert.Error(t, ChatMessage("", ""))
	assert.Error(t, ChatMessage("   ", ""))
}
