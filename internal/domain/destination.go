package domain

// Destination is a named place with descriptive text and photos.
// Destinations are reference data and never change after the provider builds them.
type Destination struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Pictures    []Picture `json:"pictures"`
}

// Picture is one photo in a destination's photo strip.
type Picture struct {
	Src         string `json:"src"`
	Description string `json:"description"`
}

// Offer is an optional paid add-on (meal, luggage, ...) attachable to a trip event.
type Offer struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Price int    `json:"price"`
}
