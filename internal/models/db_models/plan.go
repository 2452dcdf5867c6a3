package db_models

import "github.com/lib/pq"

type SubscriptionPlan struct {
	BaseModel
	Name     string         `gorm:"uniqueIndex;not null"`
	Features pq.StringArray `gorm:"type:text[]"`
	Price    float64        `gorm:"not null"`
}
