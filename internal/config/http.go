package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
// GuardEdit и GuardDelete включают проверку токена для изменения и
// удаления заметок: в исходной таблице маршрутов защищены только
// чтение и создание, поэтому по умолчанию оба флага выключены.
type HTTPConfig struct {
	Host                 string        `yaml:"host" env:"NOTEKEEPER_HTTP_HOST" env-default:"0.0.0.0"`
	Port                 int           `yaml:"port" env:"NOTEKEEPER_HTTP_PORT" env-default:"3019"`
	ReadTimeout          time.Duration `yaml:"read_timeout" env:"NOTEKEEPER_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout         time.Duration `yaml:"write_timeout" env:"NOTEKEEPER_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	GuardEdit            bool          `yaml:"guard_edit" env:"NOTEKEEPER_HTTP_GUARD_EDIT" env-default:"false"`
	GuardDelete          bool          `yaml:"guard_delete" env:"NOTEKEEPER_HTTP_GUARD_DELETE" env-default:"false"`
	ExposePasswordHashes bool          `yaml:"expose_password_hashes" env:"NOTEKEEPER_HTTP_EXPOSE_PASSWORD_HASHES" env-default:"false"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
