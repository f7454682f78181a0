package service

import (
	"github.com/google/uuid"

	"github.com/resepku/backend/internal/model"
)

// CanMutate reports whether callerID may update or delete the recipe.
// True only for a non-empty caller identity equal to the recipe's owner;
// there are no role tiers beyond single-owner write access.
func CanMutate(recipe *model.Recipe, callerID uuid.UUID) bool {
	if recipe == nil || callerID == uuid.Nil {
		return false
	}
	return recipe.OwnerID == callerID
}

// AuthorizeMutation runs the mutation state machine for a loaded recipe.
// The check order is a fixed contract: existence, then authentication, then
// ownership.
func AuthorizeMutation(recipe *model.Recipe, callerID uuid.UUID) error {
	if recipe == nil {
		return ErrNotFound
	}
	if callerID == uuid.Nil {
		return ErrUnauthenticated
	}
	if !CanMutate(recipe, callerID) {
		return ErrForbidden
	}
	return nil
}
