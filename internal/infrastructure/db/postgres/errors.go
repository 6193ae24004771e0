package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
)

// translate maps gorm sentinels onto domain errors. Unique violations map to
// duplicate, which is the per-table duplicate error.
func translate(err error, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && duplicate != nil:
		return duplicate
	default:
		return err
	}
}

// affected turns a zero-row write into domain.ErrNotFound.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
