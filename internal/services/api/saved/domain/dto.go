// Package domain holds DTOs for saved http and service contracts
package domain

import (
	"context"

	postsdom "redsquare/internal/services/api/posts/domain"
)

// SaveInput identifies the post to save or unsave
type SaveInput struct {
	PostID string `json:"post_id" validate:"required,uuid4" example:"6b4a78f2-6f0e-4f38-9a9f-2b1f4f6c9a01"`
}

// SavedPost is a bookmark joined with its post
type SavedPost struct {
	SavedAt string        `json:"saved_at"`
	Post    postsdom.Post `json:"post"`
}

// ServicePort defines the service contract for saved
type ServicePort interface {
	Save(ctx context.Context, netID, postID string) error
	Unsave(ctx context.Context, netID, postID string) error
	List(ctx context.Context, netID string) ([]SavedPost, error)
}
