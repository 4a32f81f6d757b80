package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(254);not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(150)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(150)" json:"last_name"`
	IsStaff      bool      `gorm:"not null;default:false" json:"is_staff"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	DateJoined   time.Time `gorm:"autoCreateTime" json:"date_joined"`

	// Relations
	Projects    []Project       `gorm:"foreignKey:OwnerID" json:"-"`
	Memberships []ProjectMember `gorm:"foreignKey:UserID" json:"-"`
	Comments    []Comment       `gorm:"foreignKey:UserID" json:"-"`
}
