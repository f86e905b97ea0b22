package domain

import "context"

// ServicePort defines the service contract for posts
type ServicePort interface {
	Create(ctx context.Context, authorNetID string, in CreateInput) (Post, error)
	Update(ctx context.Context, authorNetID, id string, in UpdateInput) (Post, error)
	Delete(ctx context.Context, authorNetID, id string) error
	Get(ctx context.Context, id string) (PostDetail, error)
	Explore(ctx context.Context, in ExploreInput) ([]Post, error)
	Bulletin(ctx context.Context, limit int) ([]Post, error)
}
