// Package gates holds the authorization and existence predicates consulted
// before any mutation. Each gate issues one lookup and either passes or
// returns a tagged errs value; none of them writes.
package gates

import (
	"context"

	"github.com/vacay-dev/vacay/internal/errs"
	"github.com/vacay-dev/vacay/internal/store"
)

type Gate func() error

// Run executes gates in order and stops at the first failure.
func Run(checks ...Gate) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

func VacationExists(ctx context.Context, vacationID uint) Gate {
	return func() error {
		if _, err := store.VacationByID(ctx, vacationID); err != nil {
			if store.IsNotFound(err) {
				return errs.NotFound("Vacation with that ID doesn't exist")
			}
			return errs.Internal("failed to verify vacation", err)
		}

		return nil
	}
}

// Owner passes only for the user that created the vacation.
func Owner(ctx context.Context, actorID, vacationID uint) Gate {
	return func() error {
		vacation, err := store.VacationByID(ctx, vacationID)

		if err != nil {
			if store.IsNotFound(err) {
				return errs.NotFound("Vacation with that ID doesn't exist")
			}
			return errs.Internal("failed to verify vacation owner", err)
		}

		if vacation.OwnerID != actorID {
			return errs.Forbidden("Only the user that created the vacation can do that")
		}

		return nil
	}
}

// OwnerOrAuthor passes for the vacation owner or the comment's author.
func OwnerOrAuthor(ctx context.Context, actorID, vacationID, commentID uint) Gate {
	return func() error {
		vacation, err := store.VacationByID(ctx, vacationID)

		if err != nil {
			if store.IsNotFound(err) {
				return errs.NotFound("Vacation with that ID doesn't exist")
			}
			return errs.Internal("failed to verify vacation owner", err)
		}

		comment, err := store.CommentByID(ctx, commentID)

		if err != nil {
			if store.IsNotFound(err) {
				return errs.NotFound("Comment with that ID doesn't exist")
			}
			return errs.Internal("failed to verify comment author", err)
		}

		if vacation.OwnerID != actorID && comment.CreatedBy != actorID {
			return errs.Forbidden("Only the vacation owner or the comment's author can modify it")
		}

		return nil
	}
}

func ActivityExists(ctx context.Context, activityID uint) Gate {
	return func() error {
		if _, err := store.ActivityByID(ctx, activityID); err != nil {
			if store.IsNotFound(err) {
				return errs.NotFound("Activity with that ID doesn't exist")
			}
			return errs.Internal("failed to verify activity", err)
		}

		return nil
	}
}

func CommentExists(ctx context.Context, commentID uint) Gate {
	return func() error {
		if _, err := store.CommentByID(ctx, commentID); err != nil {
			if store.IsNotFound(err) {
				return errs.NotFound("Comment with that ID doesn't exist")
			}
			return errs.Internal("failed to verify comment", err)
		}

		return nil
	}
}

// DateRangeInVacation checks the date range exists and belongs to the
// vacation in the path, guarding against cross-vacation id confusion.
func DateRangeInVacation(ctx context.Context, dateRangeID, vacationID uint) Gate {
	return func() error {
		dates, err := store.DateRangeByID(ctx, dateRangeID)

		if err != nil {
			if store.IsNotFound(err) {
				return errs.NotFound("Dates with that ID don't exist")
			}
			return errs.Internal("failed to verify dates", err)
		}

		if dates.VacationID != vacationID {
			return errs.NotFound("Dates with that ID don't belong to this vacation")
		}

		return nil
	}
}

// DateSlotFree fails once a vacation already has its date range.
func DateSlotFree(ctx context.Context, vacationID uint) Gate {
	return func() error {
		_, err := store.DateRangeForVacation(ctx, vacationID)

		if err == nil {
			return errs.Conflict("Vacation already has dates assigned")
		}

		if !store.IsNotFound(err) {
			return errs.Internal("failed to check vacation dates", err)
		}

		return nil
	}
}

// NotAlreadyMember fails when the user is already part of the vacation.
func NotAlreadyMember(ctx context.Context, userID, vacationID uint) Gate {
	return func() error {
		_, err := store.MembershipFor(ctx, userID, vacationID)

		if err == nil {
			return errs.Conflict("User is already part of the vacation")
		}

		if !store.IsNotFound(err) {
			return errs.Internal("failed to check membership", err)
		}

		return nil
	}
}

// IsMember fails when the user is not part of the vacation.
func IsMember(ctx context.Context, userID, vacationID uint) Gate {
	return func() error {
		_, err := store.MembershipFor(ctx, userID, vacationID)

		if err != nil {
			if store.IsNotFound(err) {
				return errs.Conflict("That user isn't part of the vacation")
			}
			return errs.Internal("failed to check membership", err)
		}

		return nil
	}
}
