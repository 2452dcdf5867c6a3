package db_models

type Note struct {
	BaseModel
	OwnerID uint `gorm:"index;not null"`
	Title   string
	Content string `gorm:"type:text"`
}
