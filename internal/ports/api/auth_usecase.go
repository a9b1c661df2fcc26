// Package api определяет интерфейсы бизнес-логики для транспортного слоя.
package api

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// AuthUseCase определяет операции регистрации и аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (*entities.User, error)

	Login(ctx context.Context, name, password string) (string, error)

	ListUsers(ctx context.Context) ([]entities.User, error)
}
