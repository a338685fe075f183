package services

import (
	"context"

	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/validator"
)

// CatalogService exposes the add-on services guests can attach to a booking.
type CatalogService struct {
	repo   *repository.Repository
	policy *Policy
}

func NewCatalogService(repo *repository.Repository, policy *Policy) *CatalogService {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &CatalogService{repo: repo, policy: policy}
}

func (s *CatalogService) ListServices(ctx context.Context, serviceTypeID uint) ([]models.Service, error) {
	return s.repo.ListServices(ctx, serviceTypeID)
}

func (s *CatalogService) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	return s.repo.ListServiceTypes(ctx)
}

func (s *CatalogService) CreateServiceType(ctx context.Context, actor Actor, req dto.CreateServiceTypeRequest) (*models.ServiceType, error) {
	if err := s.policy.Authorize(actor, ActionRoomManage, nil); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	st := &models.ServiceType{Name: req.Name, Description: req.Description}
	if err := s.repo.CreateServiceType(ctx, st); err != nil {
		return nil, apperrors.Transaction("Failed to create service type", err)
	}
	return st, nil
}

func (s *CatalogService) CreateService(ctx context.Context, actor Actor, req dto.CreateServiceRequest) (*models.Service, error) {
	if err := s.policy.Authorize(actor, ActionRoomManage, nil); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validator.ValidateAmount("price", *req.Price); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetServiceType(ctx, req.ServiceTypeID); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	svc := &models.Service{
		ServiceTypeID: req.ServiceTypeID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         *req.Price,
		Available:     available,
	}
	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, apperrors.Transaction("Failed to create service", err)
	}
	return svc, nil
}
