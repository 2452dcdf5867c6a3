package db_models

type LearningPlanStatus string

const (
	LearningPlanNotStarted LearningPlanStatus = "NOT_STARTED"
	LearningPlanInProgress LearningPlanStatus = "IN_PROGRESS"
	LearningPlanCompleted  LearningPlanStatus = "COMPLETED"
)

func (s LearningPlanStatus) Valid() bool {
	switch s {
	case LearningPlanNotStarted, LearningPlanInProgress, LearningPlanCompleted:
		return true
	}
	return false
}

type LearningPlan struct {
	BaseModel
	OwnerID      uint   `gorm:"index;not null"`
	Title        string `gorm:"not null"`
	Description  string `gorm:"type:text"`
	Duration     *int
	ThumbnailURL string             `gorm:"size:512"`
	Status       LearningPlanStatus `gorm:"size:16;index;not null;default:'NOT_STARTED'"`
}
