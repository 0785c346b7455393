package waitlist

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=waitlist

import (
	"context"
	"errors"

	"github.com/akeren/saascribe/internal/models"
	apperrors "github.com/akeren/saascribe/pkg/errors"
	"gorm.io/gorm"
)

const duplicateEmailMessage = "This email is already on the waitlist."

// WaitlistRepository is the record store seen by the waitlist: a single insert
// into the users collection. Implementations report duplicates as CONFLICT.
type WaitlistRepository interface {
	InsertEntry(ctx context.Context, entry *models.WaitlistEntry) error
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) InsertEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	if entry == nil {
		return apperrors.NewInvalidRequestError("entry cannot be nil", nil)
	}

	if err := wr.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return apperrors.NewConflictError(duplicateEmailMessage, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.NewRequestTimeoutError("waitlist store timed out", err)
		}
		return apperrors.NewDatabaseError("unable to add email to the waitlist", err)
	}

	return nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
