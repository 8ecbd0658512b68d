package database

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/storage/redis/v3"
)

// Redis stores keys through the gofiber redis storage, under a prefix so
// several profiles can share one database.
type Redis struct {
	storage *redis.Storage
	prefix  string
}

// NewRedis kết nối tới Redis. gofiber/storage/redis panics when the server
// is unreachable, so the address is dialed first.
func NewRedis(host string, port int, password string, db int, prefix string) (*Redis, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, 3*time.Second)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to Redis at %s: %w", addr, err)
	}
	conn.Close()

	s := redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: db,
	})
	return &Redis{storage: s, prefix: prefix}, nil
}

func (r *Redis) Get(key string) (string, bool, error) {
	data, err := r.storage.Get(r.prefix + key)
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	// gofiber storage returns nil for a missing key
	if data == nil {
		return "", false, nil
	}
	return string(data), true, nil
}

func (r *Redis) Set(key, value string) error {
	if err := r.storage.Set(r.prefix+key, []byte(value), 0); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(key string) error {
	if err := r.storage.Delete(r.prefix + key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.storage.Conn().Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.storage.Close()
}
