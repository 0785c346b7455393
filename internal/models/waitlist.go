package models

import (
	"time"

	"github.com/akeren/saascribe/pkg/constants"
)

// WaitlistEntry is one email collected ahead of launch. Entries are append-only:
// nothing in this service updates, deletes or reads them back.
type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
}

func (WaitlistEntry) TableName() string {
	return constants.WaitlistCollection
}
