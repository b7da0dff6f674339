package repository

import (
	"errors"
	"strings"

	apperrors "newsroom-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a duplicate-key failure from
// the store. Used as the race-safety net behind the proactive uniqueness
// checks in the service layer.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// uniqueConstraint returns the violated constraint's name, or "" when
// the store reported no constraint detail.
func uniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName
	}
	return ""
}

// translateUnique converts a duplicate-key failure into the conflict
// error whose constraint-name fragment matches, falling back to def.
// Two concurrent writers can both pass the service layer's proactive
// uniqueness check; the loser's constraint violation surfaces here as a
// conflict instead of a generic store error.
func translateUnique(err error, def error, byFragment map[string]error) error {
	if err == nil || !isUniqueViolation(err) {
		return err
	}
	name := uniqueConstraint(err)
	for fragment, conflict := range byFragment {
		if strings.Contains(name, fragment) {
			return conflict
		}
	}
	return def
}

func articleConflict(err error) error {
	return translateUnique(err, apperrors.ErrArticleLinkExists, map[string]error{
		"slug": apperrors.ErrArticleSlugExists,
	})
}

func sourceConflict(err error) error {
	return translateUnique(err, apperrors.ErrSourceExists, nil)
}

func categoryConflict(err error) error {
	return translateUnique(err, apperrors.ErrCategoryExists, map[string]error{
		"slug": apperrors.ErrCategorySlugExists,
	})
}

func tenantConflict(err error) error {
	return translateUnique(err, apperrors.ErrTenantSlugExists, map[string]error{
		"users": apperrors.ErrUserExists,
	})
}

func userConflict(err error) error {
	return translateUnique(err, apperrors.ErrUserExists, nil)
}
