package service

import (
	"errors"
	"time"

	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrDealInvalidWindow = errors.New("deal end date must be after start date")

type CreateDealInput struct {
	BusinessID   string
	Title        string
	Description  string
	DiscountCode *string
	StartDate    time.Time
	EndDate      time.Time
	IsActive     bool
}

type DealService interface {
	// ActiveDeals resolves deals that are flagged active and whose window
	// contains now, soonest-expiring first. Empty businessID means global.
	ActiveDeals(now time.Time, businessID string) ([]model.Deal, error)
	GetBusinessDeals(businessID string) ([]model.Deal, error)
	HasActiveDeal(businessID string, now time.Time) (bool, error)
	CreateDeal(input CreateDealInput) (*model.Deal, error)
	// RefreshDealFlag re-derives Business.has_deals from the active
	// predicate at the current time.
	RefreshDealFlag(businessID string) error
	// RefreshAllDealFlags sweeps every business. Deal windows lapse by wall
	// clock without any triggering write, so the scheduler runs this
	// periodically.
	RefreshAllDealFlags() error
}

type dealService struct {
	dealRepo     repository.DealRepository
	businessRepo repository.BusinessRepository
	locks        *BusinessLocks
}

func NewDealService(
	dealRepo repository.DealRepository,
	businessRepo repository.BusinessRepository,
	locks *BusinessLocks,
) DealService {
	return &dealService{
		dealRepo:     dealRepo,
		businessRepo: businessRepo,
		locks:        locks,
	}
}

func (s *dealService) ActiveDeals(now time.Time, businessID string) ([]model.Deal, error) {
	if businessID != "" {
		if _, err := s.businessRepo.FindByID(businessID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBusinessNotFound
			}
			return nil, err
		}
	}
	return s.dealRepo.FindActive(now, businessID)
}

func (s *dealService) GetBusinessDeals(businessID string) ([]model.Deal, error) {
	if _, err := s.businessRepo.FindByID(businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return s.dealRepo.FindByBusinessID(businessID)
}

func (s *dealService) HasActiveDeal(businessID string, now time.Time) (bool, error) {
	return s.dealRepo.HasActive(businessID, now)
}

func (s *dealService) CreateDeal(input CreateDealInput) (*model.Deal, error) {
	if _, err := s.businessRepo.FindByID(input.BusinessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, ErrDealInvalidWindow
	}

	lock := s.locks.Get(input.BusinessID)
	lock.Lock()
	defer lock.Unlock()

	deal := &model.Deal{
		BusinessID:   input.BusinessID,
		Title:        input.Title,
		Description:  input.Description,
		DiscountCode: input.DiscountCode,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsActive:     input.IsActive,
	}
	if err := s.dealRepo.Create(deal); err != nil {
		logger.Error("Failed to create deal", err, map[string]interface{}{
			"business_id": input.BusinessID,
			"title":       input.Title,
		})
		return nil, err
	}

	if err := s.refreshDealFlagLocked(input.BusinessID); err != nil {
		return nil, err
	}

	logger.Info("Deal created", map[string]interface{}{
		"deal_id":     deal.ID,
		"business_id": input.BusinessID,
	})
	return deal, nil
}

func (s *dealService) RefreshDealFlag(businessID string) error {
	lock := s.locks.Get(businessID)
	lock.Lock()
	defer lock.Unlock()
	return s.refreshDealFlagLocked(businessID)
}

// refreshDealFlagLocked assumes the caller holds the business lock.
func (s *dealService) refreshDealFlagLocked(businessID string) error {
	business, err := s.businessRepo.FindByID(businessID)
	if err != nil {
		return err
	}

	hasActive, err := s.dealRepo.HasActive(businessID, time.Now())
	if err != nil {
		return err
	}

	if business.HasDeals == hasActive {
		return nil
	}
	return s.businessRepo.UpdateHasDeals(businessID, hasActive)
}

func (s *dealService) RefreshAllDealFlags() error {
	businesses, err := s.businessRepo.FindAll()
	if err != nil {
		return err
	}

	for i := range businesses {
		if err := s.RefreshDealFlag(businesses[i].ID); err != nil {
			logger.Error("Failed to refresh deal flag", err, map[string]interface{}{
				"business_id": businesses[i].ID,
			})
			return err
		}
	}

	logger.Debug("Refreshed deal flags", map[string]interface{}{
		"businesses": len(businesses),
	})
	return nil
}
