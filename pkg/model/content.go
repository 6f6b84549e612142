package model

import "time"

type BlogPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Body       string    `json:"body,omitempty"`
	CoverImage string    `json:"coverImage,omitempty"`
	Category   string    `json:"category"`
	Author     string    `json:"author"`
	Published  time.Time `json:"publishedAt"`
}

type BlogCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"postCount"`
}

type BlogComment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    string    `json:"author" validate:"required,min=2,max=60"`
	Body      string    `json:"body" validate:"required,min=1,max=2000"`
	CreatedAt time.Time `json:"createdAt"`
}
