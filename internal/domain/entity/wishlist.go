package entity

import (
	"time"
)

type WishlistItem struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	PhoneID   string    `json:"phone_id" firestore:"phoneId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// WishlistItemWithPhone joins an entry with its phone document. Phone is nil
// and Available false when the phone has been deleted since the entry was
// created; dangling entries stay in the store.
type WishlistItemWithPhone struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PhoneID   string    `json:"phone_id"`
	Phone     *Phone    `json:"phone,omitempty"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}
