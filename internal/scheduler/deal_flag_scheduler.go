package scheduler

import (
	"github.com/ikkim/localdir-backend/internal/app/service"
	"github.com/ikkim/localdir-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DealFlagScheduler periodically rederives Business.has_deals. Deal windows
// lapse by wall clock with no write to trigger a recompute, so the flag goes
// stale without this sweep.
type DealFlagScheduler struct {
	cron        *cron.Cron
	dealService service.DealService
	spec        string
}

func NewDealFlagScheduler(dealService service.DealService, spec string) *DealFlagScheduler {
	return &DealFlagScheduler{
		cron:        cron.New(),
		dealService: dealService,
		spec:        spec,
	}
}

// Start 스케줄러 시작
func (s *DealFlagScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.dealService.RefreshAllDealFlags(); err != nil {
			logger.Error("Failed to refresh deal flags from scheduler", err)
			return
		}
	})
	if err != nil {
		logger.Error("Failed to add cron job for deal flag refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Deal flag scheduler started successfully", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// Stop 스케줄러 중지
func (s *DealFlagScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Deal flag scheduler stopped")
}
