package domain

// BadgeCategory classifies a badge for display styling.
type BadgeCategory string

const (
	BadgeCategoryDefault BadgeCategory = "default"
	BadgeCategoryRef     BadgeCategory = "ref"
	BadgeCategoryProcess BadgeCategory = "process"
	BadgeCategoryStatus  BadgeCategory = "status"
	BadgeCategoryAmount  BadgeCategory = "amount"
	BadgeCategoryStage   BadgeCategory = "stage"
	BadgeCategoryLink    BadgeCategory = "link"
	BadgeCategoryViews   BadgeCategory = "views"
	BadgeCategoryLikes   BadgeCategory = "likes"
)

// Badge is a small annotation derived from an optional source-specific field.
// Badges only exist for fields the source actually supplied.
type Badge struct {
	Text     string        `json:"text"`
	Category BadgeCategory `json:"category"`
	IsLink   bool          `json:"is_link,omitempty"`
}

// DateInfo pairs a source-specific label ("Posted", "Deadline", "Closing",
// ...) with its display value.
type DateInfo struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CanonicalRow is the normalized projection of one raw Tender, ready for
// display and export. Source is always set and Title is never empty.
type CanonicalRow struct {
	Source        Source   `json:"source"`
	Title         string   `json:"title"`
	Organization  string   `json:"organization"`
	PrimaryDate   DateInfo `json:"primary_date"`
	ReferenceCode string   `json:"reference_code,omitempty"`
	Place         string   `json:"place,omitempty"`
	Status        string   `json:"status,omitempty"`
	Amount        string   `json:"amount,omitempty"`
	URL           string   `json:"url,omitempty"`
	Badges        []Badge  `json:"badges"`
}
