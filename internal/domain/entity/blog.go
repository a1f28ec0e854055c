package entity

import (
	"time"
)

type Blog struct {
	ID        string    `json:"id" firestore:"id"`
	Title     string    `json:"title" firestore:"title"`
	Excerpt   string    `json:"excerpt" firestore:"excerpt"`
	Content   string    `json:"content" firestore:"content"`
	Category  string    `json:"category" firestore:"category"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	Author    string    `json:"author" firestore:"author"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
