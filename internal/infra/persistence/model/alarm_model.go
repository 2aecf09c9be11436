// Package model contains the GORM-specific structs for the persistence layer.
package model

import "time"

// AlarmModel is the GORM-specific struct for the 'alarms' table.
type AlarmModel struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	Enabled            bool   `gorm:"not null;default:true;index"`
	Hour               int    `gorm:"not null;check:hour >= 0 AND hour <= 23"`
	Minute             int    `gorm:"not null;check:minute >= 0 AND minute <= 59"`
	DayMask            uint8  `gorm:"not null;default:0"`
	Repeat             bool   `gorm:"not null;default:false"`
	UseNfc             bool   `gorm:"not null;default:false"`
	NfcTagID           string `gorm:"type:text;not null;default:''"`
	MediaPath          string `gorm:"type:text;not null;default:''"`
	Volume             int    `gorm:"not null;default:75;check:volume >= 0 AND volume <= 100"`
	Vibrate            bool   `gorm:"not null;default:true"`
	Name               string `gorm:"type:text;not null;default:''"`
	MaxSnoozeCount     int    `gorm:"not null;default:-1"`
	SnoozeDuration     int    `gorm:"not null;default:5"`
	AutoDismissTimeout int    `gorm:"not null;default:15"`
	DismissEarlyWindow int    `gorm:"not null;default:0"`
	IsActive           bool   `gorm:"not null;default:false;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlarmModel) TableName() string {
	return "alarms"
}
