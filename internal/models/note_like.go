package models

import "time"

// NoteLike records a like on a public note (a published recipe). Note likes
// are explicit like/unlike, not a toggle, and carry no cached count.
type NoteLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:uq_note_likes_user_note"`
	NoteID    uint      `json:"noteId" gorm:"not null;uniqueIndex:uq_note_likes_user_note;index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (NoteLike) TableName() string {
	return "note_likes"
}
