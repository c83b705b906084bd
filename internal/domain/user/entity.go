package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSeeker   = "seeker"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Location     string
	ProfileImage string
	Skills       []string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
