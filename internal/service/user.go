package service

import (
	"context"
	"errors"
	"fmt"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for tenant users
type UserService struct {
	repo      repository.UserRepositoryInterface
	recorder  audit.Recorder
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, recorder audit.Recorder, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		recorder:  recorder,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     *string `json:"role" example:"VIEWER" default:"VIEWER"` // Optional: defaults to VIEWER. Valid values: ADMIN, EDITOR, VIEWER
}

// UpdateUserRequest represents the data needed to update a user
type UpdateUserRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role *string `json:"role"`
}

// UpdateProfileRequest represents a self-service profile update
type UpdateProfileRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
}

// ChangePasswordRequest represents a self-service password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	TenantID  uuid.UUID       `json:"tenant_id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Data []UserResponse `json:"data"`
	Meta ListMeta       `json:"meta"`
}

// CreateUser creates a new user in the actor's tenant
func (s *UserService) CreateUser(ctx context.Context, actor *auth.Actor, req *CreateUserRequest, meta audit.RequestMeta) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.RoleViewer
	if req.Role != nil {
		role = models.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		TenantID:     actor.TenantID,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionUserCreate,
		ResourceType: "user",
		ResourceID:   user.ID.String(),
		Meta:         meta,
		NewValue:     user,
	})

	return userToResponse(user), nil
}

// GetUserByID retrieves a user by ID within a tenant
func (s *UserService) GetUserByID(tenantID, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return userToResponse(user), nil
}

// GetUsers retrieves users for a tenant with pagination
func (s *UserService) GetUsers(tenantID uuid.UUID, page, pageSize int) (*UserListResponse, error) {
	page, pageSize, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	users, total, err := s.repo.GetAll(tenantID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *userToResponse(&user)
	}

	return &UserListResponse{
		Data: responses,
		Meta: newListMeta(total, page, pageSize),
	}, nil
}

// UpdateUser updates a user's name and role. Name and role changes are
// recorded as separate audit entries.
func (s *UserService) UpdateUser(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateUserRequest, meta audit.RequestMeta) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	oldName := user.Name
	oldRole := user.Role
	nameChanged := req.Name != nil && *req.Name != user.Name
	roleChanged := false

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		newRole := models.UserRole(*req.Role)
		if !newRole.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
		roleChanged = newRole != oldRole
		user.Role = newRole
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if nameChanged {
		s.recorder.Record(ctx, audit.Entry{
			TenantID:     actor.TenantID,
			ActorID:      &actor.ID,
			ActorEmail:   actor.Email,
			ActorRole:    string(actor.Role),
			Action:       models.ActionUserUpdate,
			ResourceType: "user",
			ResourceID:   user.ID.String(),
			Meta:         meta,
			OldValue:     map[string]string{"name": oldName},
			NewValue:     map[string]string{"name": user.Name},
		})
	}
	if roleChanged {
		s.recorder.Record(ctx, audit.Entry{
			TenantID:     actor.TenantID,
			ActorID:      &actor.ID,
			ActorEmail:   actor.Email,
			ActorRole:    string(actor.Role),
			Action:       models.ActionUserRoleUpdate,
			ResourceType: "user",
			ResourceID:   user.ID.String(),
			Meta:         meta,
			OldValue:     map[string]string{"role": string(oldRole)},
			NewValue:     map[string]string{"role": string(user.Role)},
		})
	}

	return userToResponse(user), nil
}

// DeleteUser deletes a user. Actors cannot delete their own account.
func (s *UserService) DeleteUser(ctx context.Context, actor *auth.Actor, id uuid.UUID, meta audit.RequestMeta) error {
	if actor.ID == id {
		return apperrors.ErrSelfDelete
	}

	user, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if err := s.repo.Delete(actor.TenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionUserDelete,
		ResourceType: "user",
		ResourceID:   id.String(),
		Meta:         meta,
		OldValue:     user,
	})

	return nil
}

// GetProfile retrieves the actor's own user record
func (s *UserService) GetProfile(actor *auth.Actor) (*UserResponse, error) {
	return s.GetUserByID(actor.TenantID, actor.ID)
}

// UpdateProfile updates the actor's own display name
func (s *UserService) UpdateProfile(ctx context.Context, actor *auth.Actor, req *UpdateProfileRequest, meta audit.RequestMeta) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(actor.TenantID, actor.ID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	oldName := user.Name
	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionUserUpdate,
		ResourceType: "user",
		ResourceID:   user.ID.String(),
		Meta:         meta,
		OldValue:     map[string]string{"name": oldName},
		NewValue:     map[string]string{"name": user.Name},
	})

	return userToResponse(user), nil
}

// ChangePassword verifies the current password and replaces it
func (s *UserService) ChangePassword(ctx context.Context, actor *auth.Actor, req *ChangePasswordRequest, meta audit.RequestMeta) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(actor.TenantID, actor.ID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		TenantID:     actor.TenantID,
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		ActorRole:    string(actor.Role),
		Action:       models.ActionPasswordChange,
		ResourceType: "user",
		ResourceID:   user.ID.String(),
		Meta:         meta,
	})

	return nil
}

// userToResponse converts a User model to API response
func userToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		TenantID:  user.TenantID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// normalizePagination clamps paging inputs to sane values
func normalizePagination(page, pageSize int) (int, int, error) {
	if page < 0 || pageSize < 0 {
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize, nil
}
