// Package domain defines the core types and contracts for the ident service
package domain

import (
	"context"
	"time"
)

// Account is a campus account keyed by NetID
type Account struct {
	NetID     string    `json:"netid"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is an issued bearer token with expiry
type Session struct {
	Token     string    `json:"token"`
	NetID     string    `json:"netid"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterInput is the signup payload
type RegisterInput struct {
	NetID    string `json:"netid"    validate:"required,alphanum,min=2,max=16"  example:"jsmith42"`
	Email    string `json:"email"    validate:"required,email"                  example:"jsmith42@cornell.edu"`
	Password string `json:"password" validate:"required,min=8,max=72"           example:"hunter2hunter2"`
}

// LoginInput is the signin payload
type LoginInput struct {
	NetID    string `json:"netid"    validate:"required,alphanum,min=2,max=16" example:"jsmith42"`
	Password string `json:"password" validate:"required,min=1,max=72"          example:"hunter2hunter2"`
}

// AuthResult is the token envelope returned by register and login
type AuthResult struct {
	Token     string `json:"token"      example:"6b4a78f2-6f0e-4f38-9a9f-2b1f4f6c9a01"`
	NetID     string `json:"netid"      example:"jsmith42"`
	ExpiresAt string `json:"expires_at" example:"2026-09-28T08:00:00Z"`
}

// ServicePort is the contract the http layer and middleware depend on
type ServicePort interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, in LoginInput) (AuthResult, error)
	Logout(ctx context.Context, token string) error

	// Resolve maps a live session token to its NetID
	Resolve(ctx context.Context, token string) (string, error)
}
