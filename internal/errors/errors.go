package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// Cross-tenant lookups return the same error as a genuinely missing row.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in tenant"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ExternalError represents a failure of a remote collaborator (feed host,
// text-generation service) after any fallback strategy has been attempted
type ExternalError struct {
	Service string
	Message string
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// Is enables errors.Is() comparison for ExternalError
func (e *ExternalError) Is(target error) bool {
	t, ok := target.(*ExternalError)
	if !ok {
		return false
	}
	return e.Service == t.Service
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound   = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
	ErrSourceNotFound   = &NotFoundError{Entity: "news source"}
	ErrArticleNotFound  = &NotFoundError{Entity: "article"}
	ErrCategoryNotFound = &NotFoundError{Entity: "category"}
)

// Already Exists Errors
var (
	ErrTenantSlugExists   = &AlreadyExistsError{Entity: "tenant", Context: "with this slug"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrSourceExists       = &AlreadyExistsError{Entity: "news source", Context: "with this name in the tenant"}
	ErrArticleLinkExists  = &AlreadyExistsError{Entity: "article", Context: "with this link in the tenant"}
	ErrArticleSlugExists  = &AlreadyExistsError{Entity: "article", Context: "with this slug in the tenant"}
	ErrCategoryExists     = &AlreadyExistsError{Entity: "category", Context: "with this name in the tenant"}
	ErrCategorySlugExists = &AlreadyExistsError{Entity: "category", Context: "with this slug in the tenant"}
)

// Business Logic Errors
var (
	ErrSourceNotSyncable       = &ValidationError{Field: "type", Message: "only NEWS sources can be synced"}
	ErrPublishedRequiresFields = &ValidationError{Field: "title", Message: "title and link are required unless status is DRAFT"}
	ErrSelfDelete              = &ValidationError{Field: "id", Message: "you cannot delete your own account"}
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidRange            = errors.New("invalid range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrArticleLocked           = errors.New("article is locked for editing")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingCredential  = &AuthenticationError{Message: "authentication required"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrForbidden          = &AuthorizationError{Message: "insufficient role for this operation"}
)

// External Dependency Errors
var (
	ErrFeedFetchFailed = &ExternalError{Service: "feed", Message: "fetch failed"}
	ErrAIUnavailable   = &ExternalError{Service: "ai", Message: "text generation service unavailable"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsExternal checks if an error is an ExternalError
func IsExternal(err error) bool {
	var extErr *ExternalError
	return errors.As(err, &extErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewExternalError creates a new ExternalError
func NewExternalError(service, message string) error {
	return &ExternalError{Service: service, Message: message}
}
