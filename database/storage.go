package database

import (
	"fmt"

	"github.com/biosecret/taskflow/config"
)

// Storage is the key-value medium the task store persists to. Keys and
// values are plain strings; a missing key is reported with ok == false.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Pinger is implemented by drivers that can check their backing service.
type Pinger interface {
	Ping() error
}

// Open khởi tạo driver lưu trữ theo cấu hình
func Open(cfg config.Storage) (Storage, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemory(), nil
	case "file", "":
		return NewFile(cfg.Path)
	case "sqlite":
		return NewSQLite(cfg.Path)
	case "postgres", "postgresql":
		return NewPostgreSQL(cfg.PostgresURI)
	case "mongo", "mongodb":
		return NewMongo(cfg.MongoURI, cfg.MongoDB)
	case "redis":
		return NewRedis(cfg.RedisHost, cfg.RedisPort, cfg.RedisPass, cfg.RedisDB, cfg.Prefix)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
