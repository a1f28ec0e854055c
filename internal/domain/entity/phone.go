package entity

import (
	"math"
	"time"
)

type PhoneSpecs struct {
	Display   string `json:"display" firestore:"display"`
	Processor string `json:"processor" firestore:"processor"`
	RAM       string `json:"ram" firestore:"ram"`
	Storage   string `json:"storage" firestore:"storage"`
	Battery   string `json:"battery" firestore:"battery"`
	Camera    string `json:"camera" firestore:"camera"`
}

type Review struct {
	ID        string    `json:"id" firestore:"id"`
	User      string    `json:"user" firestore:"user"`
	Rating    int       `json:"rating" firestore:"rating"` // 1-5
	Comment   string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// StoreOffer is a retailer listing attached to a phone for price comparison.
type StoreOffer struct {
	Name  string  `json:"name" firestore:"name"`
	Price float64 `json:"price" firestore:"price"`
	URL   string  `json:"url" firestore:"url"`
}

type Phone struct {
	ID          string       `json:"id" firestore:"id"`
	Name        string       `json:"name" firestore:"name"`
	Description string       `json:"description" firestore:"description"`
	Category    string       `json:"category" firestore:"category"`
	Upcoming    bool         `json:"upcoming" firestore:"upcoming"`
	Latest      bool         `json:"latest" firestore:"latest"`
	Recommend   bool         `json:"recommend" firestore:"recommend"`
	CoverImage  string       `json:"cover_image,omitempty" firestore:"coverImage,omitempty"`
	Price       float64      `json:"price" firestore:"price"`
	Year        int          `json:"year" firestore:"year"`
	Specs       PhoneSpecs   `json:"specs" firestore:"specs"`
	Reviews     []Review     `json:"reviews" firestore:"reviews"`
	Stores      []StoreOffer `json:"stores" firestore:"stores"`

	// Rating and ReviewCount are derived from Reviews and recomputed
	// atomically on every review append.
	Rating      float64 `json:"rating" firestore:"rating"`
	ReviewCount int     `json:"review_count" firestore:"reviewCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// MeanRating is the arithmetic mean of all ratings rounded to one decimal
// place, 0 when there are no reviews.
func MeanRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
