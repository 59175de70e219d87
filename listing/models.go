package listing

type Document struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Address    string     `json:"address"`
	Location   string     `json:"location"`
	Category   string     `json:"category"`
	Status     string     `json:"status"`
	Price      float64    `json:"price"`
	Coords     [2]float64 `json:"coords"` // [lng, lat]
	Tags       []string   `json:"tags"`
	Amenities  []string   `json:"amenities"` // may be empty, never null
	ImageURL   string     `json:"imageUrl"`
	ListingURL string     `json:"listingUrl"`
}
