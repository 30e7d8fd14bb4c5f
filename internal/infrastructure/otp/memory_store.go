package otp

import (
	"context"
	"sync"
	"time"
)

// entry código vivo con su vencimiento.
type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore almacén de códigos OTP en memoria de proceso, con vigencia por
// entrada. Sobrevive solo mientras vive el proceso; para varias instancias
// usar RedisStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryStore construye el almacén en memoria.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Set guarda el código para el email, sobrescribiendo cualquier código
// anterior (reenvío = last-write-wins). ttl<=0 significa sin vencimiento.
func (s *MemoryStore) Set(_ context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := entry{code: code}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.entries[email] = e
	return nil
}

// Get devuelve el código vivo para el email, o "" si no hay o ya venció.
// Las entradas vencidas se eliminan al leerlas.
func (s *MemoryStore) Get(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[email]
	if !ok {
		return "", nil
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		delete(s.entries, email)
		return "", nil
	}
	return e.code, nil
}

// Delete elimina el código del email (consumo tras verificación correcta).
func (s *MemoryStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}
