package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"local.dev/lyntr-backend/internal/sanitize"
)

// MaxContentLength is the hard cap on lynt content, counted in runes.
const MaxContentLength = 280

var ErrContentTooLong = errors.New("content exceeds maximum length")

type User struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	Username string  `json:"username"`
	Handle   string  `json:"handle" gorm:"uniqueIndex"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Lynt is a single post. Immutable after creation except for Views,
// which only the read path touches.
type Lynt struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	Content   string    `json:"content"`
	HasLink   bool      `json:"hasLink"`
	HasImage  bool      `json:"hasImage"`
	Reposted  bool      `json:"reposted"`
	Parent    *string   `json:"parent,omitempty" gorm:"index"`
	Views     int64     `json:"views" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

// LyntLike is a like edge. The read path aggregates it into likeCount and
// likedByMe; writing likes happens outside this service.
type LyntLike struct {
	LyntID string `json:"lyntId" gorm:"primaryKey"`
	UserID string `json:"userId" gorm:"primaryKey"`
}

// LyntView is the per-viewer projection returned to clients. Never persisted.
type LyntView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	HasLink   bool      `json:"hasLink"`
	HasImage  bool      `json:"hasImage"`
	Reposted  bool      `json:"reposted"`
	Parent    *string   `json:"parent,omitempty"`
	Author    User      `json:"author"`
	LikeCount int64     `json:"likeCount"`
	LikedByMe bool      `json:"likedByMe"`
	Views     int64     `json:"views"`
}

// NewLynt builds a record from already-sanitized content. The length cap is
// re-checked here so an over-long record cannot be constructed at all.
func NewLynt(id, userID, content string) (Lynt, error) {
	if utf8.RuneCountInString(content) > MaxContentLength {
		return Lynt{}, ErrContentTooLong
	}
	return Lynt{
		ID:        id,
		UserID:    userID,
		Content:   content,
		HasLink:   sanitize.HasLink(content),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// AsRepostOf marks the lynt as a repost of parentID. Reposted and Parent are
// only ever set together, so a repost without a parent is unrepresentable.
func (l Lynt) AsRepostOf(parentID string) Lynt {
	l.Reposted = true
	l.Parent = &parentID
	return l
}

func (l Lynt) WithImage() Lynt {
	l.HasImage = true
	return l
}
