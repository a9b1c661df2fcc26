// Package entities содержит основные сущности домена.
package entities

import "errors"

// Ошибки домена пользователей и заметок.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrNoteNotFound       = errors.New("note not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrMissingFields      = errors.New("missing required fields")
)

// User представляет запись пользователя в хранилище.
// Имя пользователя уникально, регистрозависимо и неизменяемо после создания.
type User struct {
	Username     string `json:"user"`
	Email        string `json:"email"`
	PasswordHash string `json:"password,omitempty"`
	Notes        []Note `json:"notes"`
}

// FindNoteByText находит первую заметку с точным совпадением текста.
// Две заметки с одинаковым текстом неразличимы: изменение и удаление
// действуют на первую по порядку.
func (u *User) FindNoteByText(text string) int {
	for i := range u.Notes {
		if u.Notes[i].Text == text {
			return i
		}
	}
	return -1
}

// FindNoteByID находит заметку по идентификатору.
func (u *User) FindNoteByID(id string) int {
	for i := range u.Notes {
		if u.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

// Redacted возвращает копию пользователя без хэша пароля.
func (u *User) Redacted() User {
	redacted := *u
	redacted.PasswordHash = ""
	return redacted
}
