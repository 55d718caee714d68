package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	fullNameRe = regexp.MustCompile(`^[A-Za-z '.\-]{1,100}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^[0-9 ()+\-]{1,20}$`)
)

const (
	MaxNoteLen        = 1000
	MaxDescriptionLen = 2000
	MaxEmailLen       = 255
)

var (
	ErrFullName     = errors.New("full name may only contain letters, spaces, hyphens, apostrophes and periods (1-100 characters)")
	ErrEmail        = errors.New("invalid email address")
	ErrPhone        = errors.New("phone may only contain digits, spaces, +, -, parentheses (1-20 characters)")
	ErrNoteTooLong  = errors.New("note exceeds 1000 characters")
	ErrDescTooLong  = errors.New("description exceeds 2000 characters")
	ErrEmptyMessage = errors.New("message requires text or an image")
)

func FullName(name string) error {
	if !fullNameRe.MatchString(name) {
		return ErrFullName
	}
	return nil
}

func Email(email string) error {
	if len(email) > MaxEmailLen || !emailRe.MatchString(email) {
		return ErrEmail
	}
	return nil
}

func Phone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return ErrPhone
	}
	return nil
}

func Note(note string) error {
	if len(note) > MaxNoteLen {
		return ErrNoteTooLong
	}
	return nil
}

func Description(desc string) error {
	if len(desc) > MaxDescriptionLen {
		return ErrDescTooLong
	}
	return nil
}

// ChatMessage requires at least one of text or image URL.
func ChatMessage(text, imageURL string) error {
	if strings.TrimSpace(text) == "" && strings.TrimSpace(imageURL) == "" {
		return ErrEmptyMessage
	}
	return nil
}
