package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
)

// Memory реализует Storage в памяти. Используется в тестах вместо файла.
// Документ копируется на каждом Load/Save, повторяя семантику полного
// чтения и перезаписи файла.
type Memory struct {
	mu  sync.Mutex
	doc *entities.Document

	// FailLoad и FailSave позволяют тестам имитировать отказ хранилища.
	FailLoad error
	FailSave error
}

// NewMemory создает хранилище в памяти с пустым документом.
func NewMemory() *Memory {
	return &Memory{doc: entities.NewDocument()}
}

var _ repositories.Storage = (*Memory)(nil)

func cloneDocument(doc *entities.Document) (*entities.Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	var clone entities.Document
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &clone, nil
}

// Load возвращает копию документа.
func (m *Memory) Load(_ context.Context) (*entities.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailLoad != nil {
		return nil, m.FailLoad
	}
	return cloneDocument(m.doc)
}

// Save заменяет документ копией переданного.
func (m *Memory) Save(_ context.Context, doc *entities.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave != nil {
		return m.FailSave
	}

	clone, err := cloneDocument(doc)
	if err != nil {
		return err
	}
	m.doc = clone
	return nil
}

// Update выполняет последовательность load-mutate-save под мьютексом.
func (m *Memory) Update(ctx context.Context, fn func(doc *entities.Document) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailLoad != nil {
		return m.FailLoad
	}

	doc, err := cloneDocument(m.doc)
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	if m.FailSave != nil {
		return m.FailSave
	}

	m.doc = doc
	return nil
}
