// Package domain holds DTOs for profiles http and service contracts
package domain

import "context"

// Profile is the editable campus profile attached to a NetID
type Profile struct {
	NetID       string `json:"netid"`
	DisplayName string `json:"display_name"`
	Major       string `json:"major,omitempty"`
	GradYear    int    `json:"grad_year,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	DigestOptIn bool   `json:"digest_opt_in"`
	UpdatedAt   string `json:"updated_at"`
}

// PublicProfile is the subset visible to other users
type PublicProfile struct {
	NetID       string `json:"netid"`
	DisplayName string `json:"display_name"`
	Major       string `json:"major,omitempty"`
	GradYear    int    `json:"grad_year,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// UpsertInput replaces the caller's profile
type UpsertInput struct {
	DisplayName string `json:"display_name"  validate:"required,min=1,max=80"        example:"Jamie Smith"`
	Major       string `json:"major"         validate:"omitempty,max=80"             example:"Information Science"`
	GradYear    int    `json:"grad_year"     validate:"omitempty,min=2000,max=2100"  example:"2027"`
	AvatarURL   string `json:"avatar_url"    validate:"omitempty,url,max=2048"       example:"https://cdn.example.com/me.png"`
	DigestOptIn bool   `json:"digest_opt_in" example:"true"`
}

// ServicePort defines the service contract for profiles
type ServicePort interface {
	Me(ctx context.Context, netID string) (Profile, error)
	Upsert(ctx context.Context, netID string, in UpsertInput) (Profile, error)
	Public(ctx context.Context, netID string) (PublicProfile, error)
}
