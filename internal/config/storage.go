package config

// StorageConfig содержит настройки файлового хранилища.
type StorageConfig struct {
	Path string `yaml:"path" env:"NOTEKEEPER_STORAGE_PATH" env-default:"db.json"`
}
