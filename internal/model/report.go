package model

// Report is one user's daily entry. The date is stored as a YYYY-MM-DD
// string, so ordering and comparison are lexical.
type Report struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   int64  `gorm:"index:idx_reports_user_date;not null"`
	Username string `gorm:"type:text"`
	Text     string `gorm:"type:text;not null"`
	Date     string `gorm:"index:idx_reports_user_date;not null"`
}

// Reminder holds a user's custom prompt time as an HH:MM string.
// One row per user, overwritten when the user picks a new time.
type Reminder struct {
	UserID     int64  `gorm:"primaryKey"`
	RemindTime string `gorm:"not null"`
}
