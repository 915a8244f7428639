package service

import (
	"errors"
	"strings"

	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound    = errors.New("business not found")
	ErrBusinessNameMissing = errors.New("business name is required")
)

type CreateBusinessInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Website     *string `json:"website"`
}

type BusinessService interface {
	List() ([]model.Business, error)
	Search(query string) ([]model.Business, error)
	Get(id string) (*model.Business, error)
	Create(input CreateBusinessInput) (*model.Business, error)
}

type businessService struct {
	businessRepo repository.BusinessRepository
}

func NewBusinessService(businessRepo repository.BusinessRepository) BusinessService {
	return &businessService{businessRepo: businessRepo}
}

func (s *businessService) List() ([]model.Business, error) {
	return s.businessRepo.FindAll()
}

func (s *businessService) Search(query string) ([]model.Business, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.businessRepo.FindAll()
	}
	return s.businessRepo.Search(query)
}

func (s *businessService) Get(id string) (*model.Business, error) {
	business, err := s.businessRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return business, nil
}

func (s *businessService) Create(input CreateBusinessInput) (*model.Business, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrBusinessNameMissing
	}

	business := &model.Business{
		Name:        strings.TrimSpace(input.Name),
		Category:    input.Category,
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		Website:     input.Website,
	}

	if err := s.businessRepo.Create(business); err != nil {
		logger.Error("Failed to create business", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	logger.Info("Business created", map[string]interface{}{
		"business_id": business.ID,
		"name":        business.Name,
	})
	return business, nil
}
