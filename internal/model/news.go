package model

import (
	"errors"
	"time"
)

// ErrOwnerMissing is returned when a news item is serialized without its owner.
var ErrOwnerMissing = errors.New("news owner not loaded")

// News is an article published by an administrator.
type News struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:256;not null"`
	Link      string    `json:"link" gorm:"size:256;not null"`
	Digest    string    `json:"digest" gorm:"size:512;not null"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	CreatedAt time.Time `json:"create_time" gorm:"index"`
	UpdatedAt time.Time `json:"update_time"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

func (News) TableName() string { return "news" }

// NewsView is the serialized form of a news item.
type NewsView struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	Digest     string `json:"digest"`
	UserName   string `json:"user_name"`
	CreateTime string `json:"create_time"`
}

// View serializes the news item. The owning user must be loaded.
func (n *News) View() (NewsView, error) {
	if n.User == nil {
		return NewsView{}, ErrOwnerMissing
	}
	return NewsView{
		ID:         n.ID,
		Title:      n.Title,
		Link:       n.Link,
		Digest:     n.Digest,
		UserName:   n.User.Name,
		CreateTime: n.CreatedAt.Format(DateLayout),
	}, nil
}
