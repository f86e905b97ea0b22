// Package domain holds DTOs for posts http and service contracts
package domain

// Post is an event listing as persisted and served
type Post struct {
	ID          string `json:"id"`
	AuthorNetID string `json:"author_netid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
	EventDate   string `json:"event_date"`
	CreatedAt   string `json:"created_at"`
}

// CreateInput carries the structured date and clock fields the composer submits.
// The server combines and formats them once; only the display string is stored
type CreateInput struct {
	Title       string `json:"title"       validate:"required,min=1,max=120"        example:"Club Fair"`
	Description string `json:"description" validate:"omitempty,max=4000"            example:"Free pizza on the quad"`
	Location    string `json:"location"    validate:"omitempty,max=200"             example:"Ho Plaza"`
	Category    string `json:"category"    validate:"omitempty,printascii,max=40"   example:"social"`
	ImageURL    string `json:"image_url"   validate:"omitempty,url,max=2048"        example:"https://cdn.example.com/fair.jpg"`

	Date      string `json:"date"       validate:"required,datetime=2006-01-02" example:"2026-03-14"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"      example:"12:30"`
	EndTime   string `json:"end_time"   validate:"omitempty,datetime=15:04"     example:"16:20"`
}

// UpdateInput is a full replace of the editable fields
type UpdateInput = CreateInput

// ExploreInput filters and buckets the event listing
type ExploreInput struct {
	Query    string `json:"query,omitempty"    validate:"omitempty,max=200"                  example:"pizza"`
	Category string `json:"category,omitempty" validate:"omitempty,printascii,max=40"        example:"social"`
	Bucket   string `json:"bucket,omitempty"   validate:"omitempty,oneof=upcoming past all"  example:"upcoming"`
	Limit    int    `json:"limit,omitempty"    validate:"omitempty,min=1,max=200"            example:"50"`
}

// Window is the parsed form of a post's event string, for edit forms.
// Fields are RFC3339 or null when the segment did not survive the parse
type Window struct {
	Date  *string `json:"date"`
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// PostDetail is a post plus its parsed window
type PostDetail struct {
	Post   Post   `json:"post"`
	Window Window `json:"window"`
}
