package model

import "time"

// StatisticModel is the GORM-specific struct for the 'statistics' table.
// The alarm back-reference is nulled by the database when the alarm is deleted
// so historical rows outlive their alarm.
type StatisticModel struct {
	ID             int64       `gorm:"primaryKey;autoIncrement"`
	Kind           string      `gorm:"type:text;not null;index"`
	AlarmID        *int64      `gorm:"index"`
	Alarm          *AlarmModel `gorm:"constraint:OnDelete:SET NULL"`
	Timestamp      time.Time   `gorm:"not null;index"`
	Hour           int         `gorm:"not null"`
	Minute         int         `gorm:"not null"`
	Name           string      `gorm:"type:text;not null;default:''"`
	UsedNfc        *bool
	SnoozeDuration *int
}

// TableName explicitly sets the table name for GORM.
func (StatisticModel) TableName() string {
	return "statistics"
}
