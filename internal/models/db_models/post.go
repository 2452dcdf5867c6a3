package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Post struct {
	BaseModel
	OwnerID  uint   `gorm:"index;not null"`
	Title    string `gorm:"not null"`
	Content  string `gorm:"type:text"`
	Category string
	Tags     pq.StringArray              `gorm:"type:text[]"`
	Images   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
}

type Comment struct {
	BaseModel
	PostID   uint   `gorm:"index;not null"`
	AuthorID uint   `gorm:"index;not null"`
	Text     string `gorm:"type:text;not null"`
}

type ReactionType string

const (
	ReactionLike  ReactionType = "LIKE"
	ReactionLove  ReactionType = "LOVE"
	ReactionHaha  ReactionType = "HAHA"
	ReactionWow   ReactionType = "WOW"
	ReactionSad   ReactionType = "SAD"
	ReactionAngry ReactionType = "ANGRY"
)

var ReactionTypes = []ReactionType{
	ReactionLike, ReactionLove, ReactionHaha, ReactionWow, ReactionSad, ReactionAngry,
}

// Reaction is unique per (post, user).
type Reaction struct {
	BaseModel
	PostID uint         `gorm:"not null;uniqueIndex:idx_reactions_post_user"`
	UserID uint         `gorm:"not null;uniqueIndex:idx_reactions_post_user"`
	Type   ReactionType `gorm:"size:16;not null"`
}
