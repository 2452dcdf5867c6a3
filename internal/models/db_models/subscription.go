package db_models

// Subscription references its plan by name. At most one row per user has
// Active set; the partial unique index created by the migration backs this up.
type Subscription struct {
	BaseModel
	UserID    uint   `gorm:"index;not null"`
	PlanName  string `gorm:"index;not null"`
	StartDate int64  `gorm:"not null"`
	EndDate   *int64
	Active    bool `gorm:"index;not null;default:false"`
}

// Deactivate clears the active flag and stamps EndDate when it was open.
func (s *Subscription) Deactivate(now int64) {
	s.Active = false
	if s.EndDate == nil {
		s.EndDate = &now
	}
}

// Activate sets the active flag and reopens EndDate.
func (s *Subscription) Activate() {
	s.Active = true
	s.EndDate = nil
}
