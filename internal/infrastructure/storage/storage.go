package storage

import (
	"context"
	"errors"
	"sync"

	"recipe-discovery/internal/infrastructure/config"
)

// ErrNotFound 指定鍵不存在
var ErrNotFound = errors.New("key not found")

// KVStore 裝置層級的鍵值儲存介面
// 偏好與收藏都以 JSON 編碼存放在單一鍵下，寫入採 last-write-wins
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New 根據設定建立鍵值儲存
func New(cfg *config.Config) (KVStore, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return NewMemoryStore(), nil
	default:
		return NewRedisStore(&cfg.Storage)
	}
}

// MemoryStore 進程內鍵值儲存，供測試與無 Redis 環境使用
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore 創建進程內鍵值儲存
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// Get 獲取鍵值
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set 設置鍵值
func (s *MemoryStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete 刪除鍵值
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Close 關閉儲存
func (s *MemoryStore) Close() error {
	return nil
}
