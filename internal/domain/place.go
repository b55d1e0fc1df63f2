package domain

import "github.com/google/uuid"

// Place is a curated destination. Places are written only by the seeder.
type Place struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Importance  string    `db:"importance" json:"importance"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	Location    string    `db:"location" json:"location"`
	Category    string    `db:"category" json:"category"`
}

type PlaceListFilter struct {
	Categories []string
}
