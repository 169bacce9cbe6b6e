package entities

// OutroSlide is static presentation content for the thanks carousel.
type OutroSlide struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PhotoLabel  string `json:"photo_label"`
	Path        string `json:"path"`
}
