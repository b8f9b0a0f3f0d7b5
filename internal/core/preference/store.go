package preference

import (
	"context"
	"errors"
	"fmt"

	"recipe-discovery/internal/infrastructure/storage"
	"recipe-discovery/internal/pkg/common"

	"go.uber.org/zap"
)

// Store 偏好儲存服務
// 以裝置為單位存放單一 JSON 記錄，解析失敗一律視為不存在
type Store struct {
	kv storage.KVStore
}

// NewStore 創建偏好儲存服務
func NewStore(kv storage.KVStore) *Store {
	return &Store{kv: kv}
}

// key 組合裝置層級的儲存鍵
func (s *Store) key(deviceID string) string {
	return fmt.Sprintf("prefs:%s", deviceID)
}

// Load 載入偏好，不存在或無法解析時回傳預設值
func (s *Store) Load(ctx context.Context, deviceID string) UserPreferences {
	raw, err := s.kv.Get(ctx, s.key(deviceID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			common.LogWarn("讀取偏好失敗，改用預設值",
				zap.Error(err),
				zap.String("device_id", deviceID),
			)
		}
		return Default()
	}

	var prefs UserPreferences
	if err := common.ParseJSON(raw, &prefs); err != nil {
		common.LogWarn("偏好記錄解析失敗，改用預設值",
			zap.Error(err),
			zap.String("device_id", deviceID),
		)
		return Default()
	}

	// 非法枚舉值同樣視為損壞記錄
	if !prefs.Valid() {
		common.LogWarn("偏好記錄包含非法值，改用預設值",
			zap.String("device_id", deviceID),
		)
		return Default()
	}

	return prefs
}

// Save 儲存偏好（last-write-wins）
func (s *Store) Save(ctx context.Context, deviceID string, prefs UserPreferences) error {
	if !prefs.Valid() {
		return common.NewValidationError("invalid preference record")
	}

	data, err := common.ToJSON(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := s.kv.Set(ctx, s.key(deviceID), data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Clear 清除偏好，之後的 Load 會回到預設值
func (s *Store) Clear(ctx context.Context, deviceID string) error {
	if err := s.kv.Delete(ctx, s.key(deviceID)); err != nil {
		return fmt.Errorf("failed to clear preferences: %w", err)
	}
	return nil
}
