package db_models

// UserFollower is one edge of the follow graph: FollowerID follows UserID.
type UserFollower struct {
	UserID     uint  `gorm:"primaryKey;autoIncrement:false"`
	FollowerID uint  `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt  int64 `gorm:"autoCreateTime"`
}

func (UserFollower) TableName() string {
	return "user_followers"
}
