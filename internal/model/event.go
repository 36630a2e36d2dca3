package model

// Event represents a club event shown on the public site.
// Images holds relative reference paths under /uploads/ produced by the
// upload pipeline; the original client-supplied filenames are never stored.
type Event struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Images      []string `json:"images"`
}
