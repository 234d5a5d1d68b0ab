package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// User represents a back office account. Only administrators may sign in.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:32;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	LastLogin    time.Time `json:"last_login"`
	CreatedAt    time.Time `json:"create_time"`
	UpdatedAt    time.Time `json:"update_time"`

	News []News `json:"-" gorm:"foreignKey:UserID"`
}

// TableName keeps the singular table name.
func (User) TableName() string { return "user" }

// SetPassword replaces the stored hash. The plain password is never kept.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UserView is the serialized form of a user.
type UserView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	LastLogin string `json:"last_login"`
}

// View serializes the user.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		LastLogin: u.LastLogin.Format(DateTimeLayout),
	}
}
