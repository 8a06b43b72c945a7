package models

import (
	"time"

	"github.com/uptrace/bun"
)

// CreatedAtLayout is the local-time format stored in created_at.
const CreatedAtLayout = "2006-01-02 15:04:05"

// MaxFullNameLength is counted in characters, not bytes.
const MaxFullNameLength = 200

type RsvpResponse struct {
	bun.BaseModel `bun:"table:rsvp_responses"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	CreatedAt string `bun:"created_at,notnull" json:"created_at"`
	FullName  string `bun:"full_name,notnull" json:"full_name"`
	// WithPartner is kept for schema compatibility with older deployments; always false.
	WithPartner bool `bun:"with_partner,notnull" json:"-"`
	Attending   bool `bun:"attending,notnull" json:"attending"`
}

func NewRsvpResponse(fullName string, attending bool, now time.Time) *RsvpResponse {
	return &RsvpResponse{
		CreatedAt: now.Local().Format(CreatedAtLayout),
		FullName:  fullName,
		Attending: attending,
	}
}
