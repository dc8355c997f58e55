package entities

import (
	"time"

	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
)

// Status is the lifecycle state of an announcement
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Announcement is a short news post owned by an author and optionally an organization
type Announcement struct {
	ID             uint       `gorm:"primaryKey" db:"id" json:"id"`
	Headline       string     `gorm:"not null" db:"headline" json:"headline"`
	Syn            string     `gorm:"not null;default:''" db:"syn" json:"syn"`
	Body           string     `gorm:"type:text;not null;default:''" db:"body" json:"body"`
	Slug           string     `gorm:"not null;uniqueIndex" db:"slug" json:"slug"`
	ImageURL       *string    `gorm:"column:image_url" db:"image_url" json:"image_url,omitempty"`
	Status         Status     `gorm:"type:varchar(16);not null;index" db:"status" json:"status"`
	ViewCount      int64      `gorm:"not null" db:"view_count" json:"view_count"`
	ShareCount     int64      `gorm:"not null" db:"share_count" json:"share_count"`
	UpvoteCount    int64      `gorm:"not null" db:"upvote_count" json:"upvote_count"`
	PublishedDate  *time.Time `db:"published_date" json:"published_date,omitempty"`
	ModifiedDate   *time.Time `db:"modified_date" json:"modified_date,omitempty"`
	ArchivedDate   *time.Time `db:"archived_date" json:"archived_date,omitempty"`
	AuthorID       uint       `gorm:"not null;index" db:"author_id" json:"author_id"`
	OrganizationID *uint      `gorm:"index" db:"organization_id" json:"organization_id,omitempty"`

	// Relations, loaded on demand
	Author       *identity.User         `gorm:"foreignKey:AuthorID" json:"-"`
	Organization *identity.Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Comments     []Comment              `gorm:"foreignKey:AnnouncementID" json:"-"`
}

// TableName returns the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}

// IsAuthoredBy reports whether userID wrote the announcement
func (a *Announcement) IsAuthoredBy(userID uint) bool {
	return a.AuthorID == userID
}

// Comment is a reader reply attached to one announcement
type Comment struct {
	ID             uint      `gorm:"primaryKey" db:"id" json:"id"`
	Text           string    `gorm:"type:text;not null" db:"text" json:"text"`
	AuthorID       uint      `gorm:"not null;index" db:"author_id" json:"author_id"`
	AnnouncementID uint      `gorm:"not null;index" db:"announcement_id" json:"announcement_id"`
	PostedDate     time.Time `gorm:"not null" db:"posted_date" json:"posted_date"`

	Author *identity.User `gorm:"foreignKey:AuthorID" json:"-"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "announcement_comments"
}

// Upvote records that a user upvoted an announcement
type Upvote struct {
	AnnouncementID uint `gorm:"primaryKey;autoIncrement:false" db:"announcement_id" json:"announcement_id"`
	UserID         uint `gorm:"primaryKey;autoIncrement:false;index" db:"user_id" json:"user_id"`
}

// TableName returns the table name for Upvote
func (Upvote) TableName() string {
	return "announcement_upvotes"
}

// Favorite records that a user bookmarked an announcement
type Favorite struct {
	AnnouncementID uint `gorm:"primaryKey;autoIncrement:false" db:"announcement_id" json:"announcement_id"`
	UserID         uint `gorm:"primaryKey;autoIncrement:false;index" db:"user_id" json:"user_id"`
}

// TableName returns the table name for Favorite
func (Favorite) TableName() string {
	return "announcement_favorites"
}

// Models lists every table owned by this domain in migration order
func Models() []interface{} {
	return []interface{}{&Announcement{}, &Comment{}, &Upvote{}, &Favorite{}}
}
