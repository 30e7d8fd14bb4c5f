package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore almacén de códigos OTP sobre Redis, con TTL nativo por clave.
// Permite que varias instancias del servicio compartan los códigos.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore construye el almacén sobre el cliente inyectado.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "otp:"}
}

// Set guarda el código con su TTL, sobrescribiendo el anterior.
func (s *RedisStore) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+email, code, ttl).Err(); err != nil {
		return fmt.Errorf("redis set otp: %w", err)
	}
	return nil
}

// Get devuelve el código vivo, o "" si no existe o venció.
func (s *RedisStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, s.prefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get otp: %w", err)
	}
	return code, nil
}

// Delete elimina el código (consumo tras verificación correcta).
func (s *RedisStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.prefix+email).Err(); err != nil {
		return fmt.Errorf("redis del otp: %w", err)
	}
	return nil
}
