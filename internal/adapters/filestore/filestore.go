// Package filestore реализует хранилище записей поверх одного JSON файла.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
	"notekeeper/pkg/logger"
)

// Константы для логирования.
const (
	msgLoadingDocument  = "loading document from file"
	msgDocumentLoaded   = "document loaded"
	msgSavingDocument   = "saving document to file"
	msgDocumentSaved    = "document saved"
	msgSeedingDocument  = "seeding empty document"
	errMsgReadFailed    = "failed to read storage file"
	errMsgDecodeFailed  = "failed to decode storage file"
	errMsgEncodeFailed  = "failed to encode document"
	errMsgWriteFailed   = "failed to write storage file"
	errCtxLoadDocument  = "loading document"
	errCtxSaveDocument  = "saving document"
	errCtxUpdate        = "updating document"
	errCtxInitDocument  = "initializing document"
	attrPath            = "path"
	attrUsers           = "users"
	storageFilePerm     = 0o644
	storageIndentPrefix = ""
	storageIndent       = "  "
)

// Ошибки хранилища.
var (
	ErrStorageRead   = errors.New("storage read failed")
	ErrStorageDecode = errors.New("storage document malformed")
	ErrStorageWrite  = errors.New("storage write failed")
)

// Store реализует Storage поверх единственного JSON файла.
// Мьютекс сериализует последовательности load-mutate-save: в отличие от
// исходного сервиса две одновременные записи не затирают друг друга.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore создает новое файловое хранилище с заданным путем.
func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ repositories.Storage = (*Store)(nil)

// Load читает и разбирает сохраненный документ.
// Отсутствующий или некорректный файл - ошибка хранилища.
func (s *Store) Load(ctx context.Context) (*entities.Document, error) {
	log := logger.Log(ctx).With(zap.String(attrPath, s.path))
	log.Debug(ctx, msgLoadingDocument)

	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Error(ctx, errMsgReadFailed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxLoadDocument, ErrStorageRead, err)
	}

	var doc entities.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Error(ctx, errMsgDecodeFailed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxLoadDocument, ErrStorageDecode, err)
	}

	log.Debug(ctx, msgDocumentLoaded, zap.Int(attrUsers, len(doc.Users)))
	return &doc, nil
}

// Save сериализует документ и полностью перезаписывает файл.
func (s *Store) Save(ctx context.Context, doc *entities.Document) error {
	log := logger.Log(ctx).With(zap.String(attrPath, s.path))
	log.Debug(ctx, msgSavingDocument, zap.Int(attrUsers, len(doc.Users)))

	data, err := json.MarshalIndent(doc, storageIndentPrefix, storageIndent)
	if err != nil {
		log.Error(ctx, errMsgEncodeFailed, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errCtxSaveDocument, ErrStorageWrite, err)
	}

	if err := os.WriteFile(s.path, data, storageFilePerm); err != nil {
		log.Error(ctx, errMsgWriteFailed, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errCtxSaveDocument, ErrStorageWrite, err)
	}

	log.Debug(ctx, msgDocumentSaved)
	return nil
}

// Update выполняет последовательность load-mutate-save под мьютексом.
// Ошибка из fn прерывает последовательность без записи на диск.
func (s *Store) Update(ctx context.Context, fn func(doc *entities.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxUpdate, err)
	}

	if err := fn(doc); err != nil {
		return err
	}

	if err := s.Save(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", errCtxUpdate, err)
	}
	return nil
}

// Init создает файл с пустым документом, если его еще нет.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w: %w", errCtxInitDocument, ErrStorageRead, err)
	}

	logger.Log(ctx).Info(ctx, msgSeedingDocument, zap.String(attrPath, s.path))

	if err := s.Save(ctx, entities.NewDocument()); err != nil {
		return fmt.Errorf("%s: %w", errCtxInitDocument, err)
	}
	return nil
}
