package model

// TeamMember represents one entry on the team page.
// Photo is a relative reference path under /uploads/, or empty when the
// member was created without one.
type TeamMember struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Dept  string `json:"dept"`
	Photo string `json:"photo"`
}
