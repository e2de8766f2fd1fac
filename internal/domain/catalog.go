package domain

import "time"

// Service is a reference-data row describing one offering. Features is a
// list in memory; the repository stores it as a comma-delimited string, so
// a single feature label must not contain a comma.
type Service struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"is_active"`
}

type GalleryItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Testimonial struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
