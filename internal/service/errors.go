package service

import (
	"errors"

	"billboard/internal/domain"
)

// storageErr makes sure a store failure carries domain.ErrStorage.
// Taxonomy errors pass through unchanged.
func storageErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrStorage),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUnauthorized),
		domain.IsValidationError(err):
		return err
	}
	return domain.StorageError(op, err)
}
