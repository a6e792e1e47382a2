package scheduler

import (
	"github.com/cafe120/cafe120-backend/internal/app/service"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ConfigRefreshScheduler 설정 캐시 주기 갱신 스케줄러
// 다른 인스턴스에서 바꾼 설정이 재시작 없이 반영되게 한다
type ConfigRefreshScheduler struct {
	cron          *cron.Cron
	configService service.ConfigService
	schedule      string
}

// NewConfigRefreshScheduler 설정 갱신 스케줄러 생성
// schedule은 cron spec ("@every 5m" 등)
func NewConfigRefreshScheduler(configService service.ConfigService, schedule string) *ConfigRefreshScheduler {
	return &ConfigRefreshScheduler{
		cron:          cron.New(),
		configService: configService,
		schedule:      schedule,
	}
}

// Start 스케줄러 시작
func (s *ConfigRefreshScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.configService.Refresh(); err != nil {
			logger.Error("Failed to refresh config cache from scheduler", err, nil)
			return
		}
		logger.Debug("Config cache refreshed by scheduler", nil)
	})

	if err != nil {
		logger.Error("Failed to add cron job for config refresh", err, map[string]interface{}{
			"schedule": s.schedule,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Config refresh scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})

	return nil
}

// Stop 스케줄러 중지
func (s *ConfigRefreshScheduler) Stop() {
	logger.Info("Stopping config refresh scheduler...", nil)
	s.cron.Stop()
	logger.Info("Config refresh scheduler stopped", nil)
}
