package model

import "time"

// ReplyStatus tells whether a feedback message has been answered.
type ReplyStatus string

const (
	ReplyStatusPending ReplyStatus = "no"
	ReplyStatusReplied ReplyStatus = "yes"
)

// FeedBack is a message left through the public contact form.
type FeedBack struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"fb_user" gorm:"column:fb_user;size:20;not null"`
	Email       string      `json:"fb_email" gorm:"column:fb_email;size:30;not null"`
	Content     string      `json:"fb_content" gorm:"column:fb_content;type:text;not null"`
	ReplyStatus ReplyStatus `json:"fb_whether_reply" gorm:"column:fb_whether_reply;size:20;not null;default:'no'"`
	CreatedAt   time.Time   `json:"create_time" gorm:"index"`
	UpdatedAt   time.Time   `json:"update_time"`
}

// TableName keeps the singular table name.
func (FeedBack) TableName() string { return "feedback" }

// Replied reports whether the message has been answered.
func (f *FeedBack) Replied() bool {
	return f.ReplyStatus == ReplyStatusReplied
}

// FeedBackView is the serialized form of a feedback message.
type FeedBackView struct {
	ID          uint        `json:"id"`
	Name        string      `json:"fb_user"`
	Email       string      `json:"fb_email"`
	Content     string      `json:"fb_content"`
	ReplyStatus ReplyStatus `json:"fb_whether_reply"`
	CreateTime  string      `json:"create_time"`
}

// View serializes the feedback message.
func (f *FeedBack) View() FeedBackView {
	return FeedBackView{
		ID:          f.ID,
		Name:        f.Name,
		Email:       f.Email,
		Content:     f.Content,
		ReplyStatus: f.ReplyStatus,
		CreateTime:  f.CreatedAt.Format(DateTimeLayout),
	}
}
