package store

import (
	"errors"
	"time"

	"github.com/trollfaceman/Telgrambot/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DateLayout is the wire format for report dates.
const DateLayout = "2006-01-02"

// ErrNoReport is returned when an operation targets a (user, date)
// pair with no stored row.
var ErrNoReport = errors.New("store: no report for this user and date")

// UserRef identifies a report author for the lookup picker.
type UserRef struct {
	UserID   int64
	Username string
}

// Store owns all persistence for reports and reminders.
type Store struct {
	db *gorm.DB
}

// New wraps a GORM connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetReport returns the stored text for (userID, date), or ErrNoReport.
func (s *Store) GetReport(userID int64, date string) (string, error) {
	var report model.Report
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNoReport
	}
	if err != nil {
		return "", err
	}
	return report.Text, nil
}

// SaveReport stores text for (userID, date), replacing any prior text.
// The table carries no uniqueness constraint; the update-then-insert
// keeps the row unique only as long as there is one writer per user.
func (s *Store) SaveReport(userID int64, username, date, text string) error {
	res := s.db.Model(&model.Report{}).
		Where("user_id = ? AND date = ?", userID, date).
		Updates(map[string]interface{}{"username": username, "text": text})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.db.Create(&model.Report{
			UserID:   userID,
			Username: username,
			Date:     date,
			Text:     text,
		}).Error
	}
	return nil
}

// AppendReport concatenates extra to the stored row, separated by a
// newline and a marker. Fails with ErrNoReport when there is nothing
// to append to; the read and the write are not atomic against a second
// concurrent append for the same user.
func (s *Store) AppendReport(userID int64, date, extra string) error {
	var report model.Report
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoReport
	}
	if err != nil {
		return err
	}
	return s.db.Model(&report).Update("text", report.Text+appendSeparator+extra).Error
}

const appendSeparator = "\n➕ "

// DeleteReport removes the row for (userID, date). Deleting a missing
// row is not an error.
func (s *Store) DeleteReport(userID int64, date string) error {
	return s.db.Where("user_id = ? AND date = ?", userID, date).Delete(&model.Report{}).Error
}

// ListUsers returns every distinct report author with the username
// from their most recent row.
func (s *Store) ListUsers() ([]UserRef, error) {
	var users []UserRef
	err := s.db.Model(&model.Report{}).
		Select("user_id, MAX(username) AS username").
		Group("user_id").
		Order("user_id").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// SetReminder stores the user's prompt time, overwriting any prior one.
func (s *Store) SetReminder(userID int64, remindTime string) error {
	reminder := model.Reminder{UserID: userID, RemindTime: remindTime}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"remind_time"}),
	}).Create(&reminder).Error
}

// DueReminders returns the users whose stored time matches the given
// HH:MM minute exactly.
func (s *Store) DueReminders(hhmm string) ([]int64, error) {
	var ids []int64
	err := s.db.Model(&model.Reminder{}).Where("remind_time = ?", hhmm).Order("user_id").Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UsersWithoutReminder returns report authors that never picked a
// custom time; they get the default daily prompt instead.
func (s *Store) UsersWithoutReminder() ([]int64, error) {
	var ids []int64
	err := s.db.Model(&model.Report{}).
		Distinct().
		Where("user_id NOT IN (?)", s.db.Model(&model.Reminder{}).Select("user_id")).
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// RecentDates generates the last n calendar dates ending at now,
// newest first. Dates are generated, not read from the table, so a
// listed date may have no report.
func RecentDates(now time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, now.AddDate(0, 0, -i).Format(DateLayout))
	}
	return dates
}
