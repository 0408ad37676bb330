package dto

type CommunityPostInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags"`
	Link        *string  `json:"link,omitempty"`
}
