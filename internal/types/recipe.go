package types

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the wire representation of a stored recipe, enriched at read time
// with the owner's display name and the display-resolved image URL.
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Image       string    `json:"image,omitempty"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url,omitempty"`
	Nutrition   Nutrition `json:"nutrition_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Nutrition mirrors the stored nutrition document.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// User is the wire representation of an account
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
