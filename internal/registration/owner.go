package registration

import (
	"context"
	"errors"

	"vtpartner/internal/apperr"
	"vtpartner/internal/logger"
	"vtpartner/internal/store"
)

// ResolveOwner returns the id of the owner registered under in.MobileNo, creating
// the owner when none exists. A concurrent create for the same phone loses on the
// unique index and reuses the winner's row.
func (s *Service) ResolveOwner(ctx context.Context, in OwnerInput) (uint, error) {
	log := logger.FromContext(ctx).WithField("owner_mobile_no", in.MobileNo)

	existing, err := s.store.FindOwnerByPhone(ctx, in.MobileNo)
	if err == nil {
		log.WithField("owner_id", existing.OwnerID).Debug("reusing existing owner")
		return existing.OwnerID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return 0, apperr.Internal("Failed to look up owner", err)
	}

	owner := in.model()
	err = s.store.CreateOwner(ctx, &owner)
	switch {
	case err == nil:
		log.WithField("owner_id", owner.OwnerID).Info("owner created")
		return owner.OwnerID, nil
	case errors.Is(err, store.ErrDuplicate):
		winner, lookupErr := s.store.FindOwnerByPhone(ctx, in.MobileNo)
		if lookupErr != nil {
			return 0, apperr.Internal("Failed to look up owner", lookupErr)
		}
		log.WithField("owner_id", winner.OwnerID).Info("owner created concurrently, reusing it")
		return winner.OwnerID, nil
	case errors.Is(err, store.ErrNoIdentifier):
		return 0, apperr.RegistrationIncomplete(err)
	default:
		return 0, apperr.Internal("Failed to create owner", err)
	}
}

// upsertOwner is the edit path: an owner already on file for the phone is
// updated in place, otherwise one is created.
func (s *Service) upsertOwner(ctx context.Context, in OwnerInput) (uint, error) {
	existing, err := s.store.FindOwnerByPhone(ctx, in.MobileNo)
	if errors.Is(err, store.ErrNotFound) {
		return s.ResolveOwner(ctx, in)
	}
	if err != nil {
		return 0, apperr.Internal("Failed to look up owner", err)
	}

	updated := in.model()
	updated.OwnerID = existing.OwnerID
	if err := s.store.UpdateOwner(ctx, &updated); err != nil {
		return 0, apperr.Internal("Failed to update owner", err)
	}
	return existing.OwnerID, nil
}
