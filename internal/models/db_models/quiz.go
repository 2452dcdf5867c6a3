package db_models

import "gorm.io/datatypes"

// QuizQuestion is stored inline with its quiz; Answer indexes Options.
type QuizQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
}

type Quiz struct {
	BaseModel
	OwnerID   uint                              `gorm:"index;not null"`
	Title     string                            `gorm:"not null"`
	Questions datatypes.JSONSlice[QuizQuestion] `gorm:"type:jsonb"`
}
