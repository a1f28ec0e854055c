package entity

import (
	"errors"
	"time"
)

// CompareSlots is the maximum number of phones in a compare selection.
const CompareSlots = 3

// CompareList holds a user's side-by-side compare selection: an ordered,
// de-duplicated list of at most CompareSlots phone IDs.
type CompareList struct {
	UserID    string    `json:"user_id" firestore:"userId"`
	PhoneIDs  []string  `json:"phone_ids" firestore:"phoneIds"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Contains reports whether the phone is already selected.
func (l *CompareList) Contains(phoneID string) bool {
	for _, id := range l.PhoneIDs {
		if id == phoneID {
			return true
		}
	}
	return false
}

// Full reports whether every slot is taken.
func (l *CompareList) Full() bool {
	return len(l.PhoneIDs) >= CompareSlots
}

// ErrCompareListFull is returned when a 4th distinct phone is added; the
// list is left unchanged.
var ErrCompareListFull = errors.New("compare list is full")

// Add appends the phone. Re-adding a selected phone is a no-op; a full list
// rejects a new phone with ErrCompareListFull.
func (l *CompareList) Add(phoneID string) error {
	if l.Contains(phoneID) {
		return nil
	}
	if l.Full() {
		return ErrCompareListFull
	}
	l.PhoneIDs = append(l.PhoneIDs, phoneID)
	return nil
}

// Remove drops the phone from the selection, a no-op when absent.
func (l *CompareList) Remove(phoneID string) {
	kept := make([]string, 0, len(l.PhoneIDs))
	for _, id := range l.PhoneIDs {
		if id != phoneID {
			kept = append(kept, id)
		}
	}
	l.PhoneIDs = kept
}
