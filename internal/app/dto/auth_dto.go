// Package dto содержит объекты передачи данных HTTP слоя.
package dto

import "notekeeper/internal/domain/entities"

// SignupRequest содержит данные для регистрации пользователя.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse содержит созданную запись пользователя.
type SignupResponse struct {
	Message string        `json:"message"`
	User    entities.User `json:"user"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse содержит токен доступа после успешного входа.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
	Message     string `json:"message"`
}

// UsersResponse содержит список всех пользователей.
type UsersResponse struct {
	Users []entities.User `json:"users"`
}
