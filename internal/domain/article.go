package domain

import "time"

// Article represents an editorial piece, looked up by slug on its detail path.
type Article struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	CoverImage  string    `json:"cover_image"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags,omitempty"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	ReadingTime string    `json:"reading_time"`
}
