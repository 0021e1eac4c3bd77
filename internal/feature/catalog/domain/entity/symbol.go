// Package entity defines the domain models for the catalog feature.
package entity

import "time"

// Symbol represents one mock trading symbol registered in the system,
// together with the generation settings used for its snapshots.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:32;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	BasePrice float64   `gorm:"not null;default:0"` // 0 means the engine default
	Scenario  string    `gorm:"size:16;not null;default:''"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName はモデルのテーブル名を返します。
func (Symbol) TableName() string {
	return "symbols"
}
