// Package repositories определяет порты для хранилища записей.
package repositories

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// Storage определяет контракт хранилища документа с пользователями и заметками.
// Load возвращает весь документ; Save полностью перезаписывает его.
// Update выполняет последовательность load-mutate-save как единое целое:
// вызывающий код не должен работать с устаревшим документом между запросами.
type Storage interface {
	Load(ctx context.Context) (*entities.Document, error)

	Save(ctx context.Context, doc *entities.Document) error

	Update(ctx context.Context, fn func(doc *entities.Document) error) error
}
