package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account holder. Authentication happens in the fronting auth
// proxy, the backend only keeps the profile the proxy reports.
type User struct {
	DefaultModel
	Subject         string `gorm:"uniqueIndex"` // Identity provider subject for the user
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Subject = strings.TrimSpace(u.Subject)
	u.Email = strings.TrimSpace(u.Email)

	return nil
}

// UserBySubject returns the user for an identity provider subject,
// creating it on first sight.
func UserBySubject(db *gorm.DB, subject string) (User, error) {
	var user User
	err := db.Where(User{Subject: subject}).FirstOrCreate(&user).Error
	return user, err
}
