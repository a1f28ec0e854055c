package entity

import (
	"time"
)

// Admin is a delegated administrator on the allow-list, distinct from the
// single super-admin email carried in configuration.
type Admin struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
