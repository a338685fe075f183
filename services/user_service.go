package services

import (
	"context"
	"strings"

	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/response"
	"hotel-booking/services/logger"
	"hotel-booking/validator"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   *repository.Repository
	policy *Policy
	logger logger.Logger
}

type UserServiceOptions struct {
	Repo   *repository.Repository
	Policy *Policy
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Policy == nil {
		opts.Policy = DefaultPolicy()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDiscardLogger()
	}
	return &UserService{repo: opts.Repo, policy: opts.Policy, logger: opts.Logger}
}

func (s *UserService) List(ctx context.Context, actor Actor, q dto.UserListQuery) ([]models.User, *response.Pagination, error) {
	if err := s.policy.Authorize(actor, ActionUserView, nil); err != nil {
		return nil, nil, err
	}
	if err := validator.Struct(q); err != nil {
		return nil, nil, err
	}
	page := q.PageQuery.Normalize()
	users, total, err := s.repo.ListUsers(ctx, repository.UserFilter{
		RoleID: q.RoleID,
		Search: q.Search,
		Page:   repository.Page{Page: page.Page, PerPage: page.PerPage},
	})
	if err != nil {
		return nil, nil, err
	}
	return users, response.NewPagination(page.Page, page.PerPage, total), nil
}

func (s *UserService) Create(ctx context.Context, actor Actor, req dto.CreateUserRequest) (*models.User, error) {
	if err := s.policy.Authorize(actor, ActionUserManage, nil); err != nil {
		return nil, err
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	taken, err := s.repo.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.ErrCodeDuplicate, "The email has already been taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Failed to hash password", err)
	}
	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Gender:   req.Gender,
		RoleID:   req.RoleID,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, apperrors.Transaction("Failed to create user", err)
	}
	s.logger.Info("user %d created by %d with role %d", user.ID, actor.ID, user.RoleID)
	return user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, actor Actor, id uint, req dto.UpdateRoleRequest) (*models.User, error) {
	if err := s.policy.Authorize(actor, ActionUserManage, nil); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if id == actor.ID {
		return nil, apperrors.Conflict(apperrors.ErrCodeInvalidOperation, "You cannot change your own role")
	}
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateUserRole(ctx, id, req.RoleID); err != nil {
		return nil, apperrors.Transaction("Failed to update user role", err)
	}
	s.logger.Info("user %d role changed from %d to %d by %d", id, user.RoleID, req.RoleID, actor.ID)
	user.RoleID = req.RoleID
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor Actor, id uint) error {
	if err := s.policy.Authorize(actor, ActionUserManage, nil); err != nil {
		return err
	}
	if id == actor.ID {
		return apperrors.Conflict(apperrors.ErrCodeInvalidOperation, "You cannot delete your own account")
	}
	if _, err := s.repo.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return apperrors.Transaction("Failed to delete user", err)
	}
	s.logger.Info("user %d deleted by %d", id, actor.ID)
	return nil
}
