package service

import (
	"errors"
	"sync"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/pkg/logger"
)

var ErrConfigKeyRequired = errors.New("config key is required")

// ConfigService 설정 키-값의 읽기 캐시.
// Get은 캐시만 읽고, Set은 DB와 캐시에 함께 쓴다.
// 다른 인스턴스에서 바꾼 값은 Refresh(스케줄러 주기 실행)로 따라잡는다.
type ConfigService interface {
	Get(key string) string
	Lookup(key string) (string, bool)
	Set(key, value string) error
	List() ([]model.Config, error)
	Refresh() error
}

type configService struct {
	configRepo repository.ConfigRepository

	mu    sync.RWMutex
	cache map[string]string
}

func NewConfigService(configRepo repository.ConfigRepository) ConfigService {
	s := &configService{
		configRepo: configRepo,
		cache:      make(map[string]string),
	}
	// 시작 시 한 번 적재. DB가 비어 있어도 서비스는 뜬다.
	if err := s.Refresh(); err != nil {
		logger.Warn("Initial config load failed, starting with empty cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return s
}

func (s *configService) Get(key string) string {
	value, _ := s.Lookup(key)
	return value
}

func (s *configService) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.cache[key]
	return value, ok
}

func (s *configService) Set(key, value string) error {
	if key == "" {
		return ErrConfigKeyRequired
	}

	if err := s.configRepo.Upsert(key, value); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	logger.Info("Config updated", map[string]interface{}{
		"key": key,
	})
	return nil
}

func (s *configService) List() ([]model.Config, error) {
	return s.configRepo.FindAll()
}

// Refresh 전체 행을 다시 읽어 캐시를 통째로 교체한다
func (s *configService) Refresh() error {
	configs, err := s.configRepo.FindAll()
	if err != nil {
		return err
	}

	fresh := make(map[string]string, len(configs))
	for _, c := range configs {
		fresh[c.Key] = c.Value
	}

	s.mu.Lock()
	s.cache = fresh
	s.mu.Unlock()

	logger.Debug("Config cache refreshed", map[string]interface{}{
		"entries": len(fresh),
	})
	return nil
}
