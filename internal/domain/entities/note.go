package entities

import (
	"time"

	"github.com/google/uuid"
)

// Note представляет заметку пользователя.
// Идентификатор генерируется при создании; внешний API по-прежнему
// адресует заметки точным совпадением текста.
type Note struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"note"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NewNote создает новую заметку с идентификатором и отметкой времени.
func NewNote(text string) Note {
	return Note{
		ID:        uuid.New().String(),
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
