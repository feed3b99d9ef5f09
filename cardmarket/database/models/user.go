package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	UserID       int64      `bun:"user_id,pk" json:"user_id"`
	Username     string     `bun:"username,notnull,default:''" json:"username"`
	Balance      int64      `bun:"balance,notnull,default:0" json:"balance"`
	Score        int64      `bun:"score,notnull,default:0" json:"score"`
	LastFreePack *time.Time `bun:"last_free_pack" json:"last_free_pack,omitempty"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
