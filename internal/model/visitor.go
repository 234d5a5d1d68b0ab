package model

import "time"

// Visitor is one hit on the public home page.
type Visitor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	IP        string    `json:"v_ip" gorm:"column:v_ip;size:45;not null"`
	Terminal  string    `json:"v_terminal" gorm:"column:v_terminal;size:256;not null"`
	CreatedAt time.Time `json:"create_time" gorm:"index"`
	UpdatedAt time.Time `json:"update_time" gorm:"index"`
}

func (Visitor) TableName() string { return "visitor" }

// VisitorView is the serialized form of a visit.
type VisitorView struct {
	ID         uint   `json:"id"`
	IP         string `json:"v_ip"`
	Terminal   string `json:"v_terminal"`
	CreateTime string `json:"create_time"`
}

// View serializes the visit.
func (v *Visitor) View() VisitorView {
	return VisitorView{
		ID:         v.ID,
		IP:         v.IP,
		Terminal:   v.Terminal,
		CreateTime: v.CreatedAt.Format(DateTimeLayout),
	}
}
