package models

import (
	"time"

	"github.com/google/uuid"
)

// Panorama is a single 360° viewpoint in the tour. DisplayOrder drives the
// default navigation sequence between scenes.
type Panorama struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PointOfInterest ("tradisi") is a labeled marker placed inside its owning
// panorama at a 3-D offset.
type PointOfInterest struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	PanoramaID  uuid.UUID `json:"panorama_id"`
	PositionX   float64   `json:"position_x"`
	PositionY   float64   `json:"position_y"`
	PositionZ   float64   `json:"position_z"`
	CreatedAt   time.Time `json:"created_at"`
}

// Testimonial is a visitor-submitted rating and comment, optionally
// annotated once by an admin reply. Visitor fields are immutable after
// creation.
type Testimonial struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Comment    string    `json:"comment"`
	Rating     int       `json:"rating"`
	AdminReply *string   `json:"admin_reply"`
	CreatedAt  time.Time `json:"created_at"`
}

// Admin is the single back-office credential. Passwords are stored as
// bcrypt hashes only.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreatePanoramaParams carries the fields accepted on panorama create and
// update. Image is the stored filename, either given directly or derived
// from a multipart upload by the handler.
type CreatePanoramaParams struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	DisplayOrder int    `json:"display_order"`
}

type CreatePointOfInterestParams struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	PanoramaID  uuid.UUID `json:"panorama_id"`
	PositionX   float64   `json:"position_x"`
	PositionY   float64   `json:"position_y"`
	PositionZ   float64   `json:"position_z"`
}

type CreateTestimonialParams struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// RatingBucket is one bar of the dashboard rating histogram.
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// DashboardStats aggregates the admin landing page numbers.
type DashboardStats struct {
	PanoramaCount      int            `json:"panorama_count"`
	TradisiCount       int            `json:"tradisi_count"`
	TestimonialCount   int            `json:"testimonial_count"`
	RatingHistogram    []RatingBucket `json:"rating_histogram"`
	RecentTestimonials []Testimonial  `json:"recent_testimonials"`
}
