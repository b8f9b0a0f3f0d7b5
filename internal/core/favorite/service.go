package favorite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-discovery/internal/core/recipe"
	"recipe-discovery/internal/infrastructure/storage"
	"recipe-discovery/internal/pkg/common"

	"go.uber.org/zap"
)

// Favorite 收藏記錄
// 由使用者顯式建立與刪除，識別碼由標題與建立時間組成
type Favorite struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CookTime    string   `json:"cookTime"`
	Difficulty  string   `json:"difficulty"`
	Servings    string   `json:"servings"`
	Ingredients []string `json:"ingredients"`
	SavedAt     int64    `json:"savedAt"` // Unix 毫秒
}

// Service 收藏服務
// 整份列表以 JSON 存放在裝置鍵下，寫入採 last-write-wins
type Service struct {
	kv  storage.KVStore
	now func() time.Time
}

// NewService 創建收藏服務
func NewService(kv storage.KVStore) *Service {
	return &Service{
		kv:  kv,
		now: time.Now,
	}
}

// key 組合裝置層級的儲存鍵
func (s *Service) key(deviceID string) string {
	return fmt.Sprintf("favorites:%s", deviceID)
}

// load 讀取整份收藏列表
// 鍵不存在或記錄無法解析視為空列表，儲存不可達則回傳錯誤
// 寫入路徑必須走這裡：暫時性的讀取失敗不能被當成空列表再寫回去
func (s *Service) load(ctx context.Context, deviceID string) ([]Favorite, error) {
	raw, err := s.kv.Get(ctx, s.key(deviceID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []Favorite{}, nil
		}
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	var favorites []Favorite
	if err := common.ParseJSON(raw, &favorites); err != nil {
		common.LogWarn("收藏記錄解析失敗，視為空列表",
			zap.Error(err),
			zap.String("device_id", deviceID),
		)
		return []Favorite{}, nil
	}
	return favorites, nil
}

// List 列出收藏，讀取失敗時回傳空列表
func (s *Service) List(ctx context.Context, deviceID string) []Favorite {
	favorites, err := s.load(ctx, deviceID)
	if err != nil {
		common.LogWarn("讀取收藏失敗，回傳空列表",
			zap.Error(err),
			zap.String("device_id", deviceID),
		)
		return []Favorite{}
	}
	return favorites
}

// Add 新增收藏，識別碼為「標題-建立時間戳」
func (s *Service) Add(ctx context.Context, deviceID string, summary recipe.Summary, ingredients []string) (*Favorite, error) {
	if summary.Title == "" {
		return nil, common.NewValidationError("recipe title is required")
	}

	now := s.now().UnixMilli()
	fav := Favorite{
		ID:          fmt.Sprintf("%s-%d", summary.Title, now),
		Title:       summary.Title,
		Description: summary.Description,
		CookTime:    summary.CookTime,
		Difficulty:  summary.Difficulty,
		Servings:    summary.Servings,
		Ingredients: ingredients,
		SavedAt:     now,
	}

	favorites, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	favorites = append(favorites, fav)
	if err := s.save(ctx, deviceID, favorites); err != nil {
		return nil, err
	}

	common.LogInfo("收藏已新增",
		zap.String("id", fav.ID),
		zap.String("device_id", deviceID),
	)
	return &fav, nil
}

// Remove 依識別碼刪除收藏
func (s *Service) Remove(ctx context.Context, deviceID, id string) error {
	favorites, err := s.load(ctx, deviceID)
	if err != nil {
		return err
	}
	filtered := make([]Favorite, 0, len(favorites))
	for _, f := range favorites {
		if f.ID != id {
			filtered = append(filtered, f)
		}
	}
	return s.save(ctx, deviceID, filtered)
}

// Clear 清空裝置的所有收藏
func (s *Service) Clear(ctx context.Context, deviceID string) error {
	if err := s.kv.Delete(ctx, s.key(deviceID)); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}
	return nil
}

// IsFavorited 檢查指定標題是否已收藏
func (s *Service) IsFavorited(ctx context.Context, deviceID, title string) bool {
	return s.GetByTitle(ctx, deviceID, title) != nil
}

// GetByTitle 依標題查找收藏，不存在時回傳 nil
func (s *Service) GetByTitle(ctx context.Context, deviceID, title string) *Favorite {
	for _, f := range s.List(ctx, deviceID) {
		if f.Title == title {
			fav := f
			return &fav
		}
	}
	return nil
}

// save 寫回整份收藏列表
func (s *Service) save(ctx context.Context, deviceID string, favorites []Favorite) error {
	data, err := common.ToJSON(favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.kv.Set(ctx, s.key(deviceID), data); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
