package dto

import "time"

// AnnouncementRequest is the create/update payload
type AnnouncementRequest struct {
	ID             *uint      `json:"id,omitempty"`
	Headline       string     `json:"headline" validate:"required,max=255"`
	Syn            string     `json:"syn" validate:"max=1024"`
	Body           string     `json:"body"`
	Slug           string     `json:"slug" validate:"required,max=128,slug"`
	ImageURL       *string    `json:"image_url,omitempty"`
	AuthorID       uint       `json:"author_id" validate:"required"`
	OrganizationID *uint      `json:"organization_id,omitempty"`
	Status         string     `json:"status" validate:"required,oneof=draft published archived"`
	PublishedDate  *time.Time `json:"published_date,omitempty"`
	ModifiedDate   *time.Time `json:"modified_date,omitempty"`
	ArchivedDate   *time.Time `json:"archived_date,omitempty"`
}

// CommentRequest is the create-comment payload. ID and PostedDate are ignored.
type CommentRequest struct {
	ID         *uint      `json:"id,omitempty"`
	Text       string     `json:"text" validate:"required,max=5000"`
	AuthorID   uint       `json:"author_id"`
	PostedDate *time.Time `json:"posted_date,omitempty"`
}

// AnnouncementResponse is the public projection of an announcement
type AnnouncementResponse struct {
	ID               uint       `json:"id"`
	Headline         string     `json:"headline"`
	Syn              string     `json:"syn"`
	Body             string     `json:"body"`
	Slug             string     `json:"slug"`
	ImageURL         *string    `json:"image_url"`
	AuthorID         uint       `json:"author_id"`
	OrganizationID   *uint      `json:"organization_id"`
	OrganizationSlug string     `json:"organization_slug,omitempty"`
	Status           string     `json:"status"`
	ViewCount        int64      `json:"view_count"`
	ShareCount       int64      `json:"share_count"`
	UpvoteCount      int64      `json:"upvote_count"`
	PublishedDate    *time.Time `json:"published_date"`
	ModifiedDate     *time.Time `json:"modified_date"`
	ArchivedDate     *time.Time `json:"archived_date"`
}

// AnnouncementDetailsResponse nests author, organization and comments
type AnnouncementDetailsResponse struct {
	AnnouncementResponse
	Author       *PublicUser           `json:"author"`
	Organization *OrganizationResponse `json:"organization"`
	Comments     []CommentResponse     `json:"comments"`
}

// PublicUser is the user profile safe to show to any reader
type PublicUser struct {
	ID           uint    `json:"id"`
	Onyen        string  `json:"onyen"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Pronouns     string  `json:"pronouns"`
	Email        string  `json:"email"`
	GitHub       string  `json:"github"`
	GitHubAvatar *string `json:"github_avatar"`
}

// OrganizationResponse is the organization summary embedded in details
type OrganizationResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Logo             string `json:"logo"`
	ShortDescription string `json:"short_description"`
	Website          string `json:"website"`
}

// CommentResponse is the projection of a comment with its public author
type CommentResponse struct {
	ID             uint        `json:"id"`
	Text           string      `json:"text"`
	AnnouncementID uint        `json:"announcement_id"`
	Author         *PublicUser `json:"author"`
	PostedDate     time.Time   `json:"posted_date"`
}

// UpvoteResponse reports membership after a toggle or check; favorites reuse it
type UpvoteResponse struct {
	Upvoted bool `json:"upvoted"`
}

// Event types written to Kafka
const (
	EventAnnouncementCreated   = "announcement.created"
	EventAnnouncementUpdated   = "announcement.updated"
	EventAnnouncementPublished = "announcement.published"
	EventAnnouncementArchived  = "announcement.archived"
	EventAnnouncementDeleted   = "announcement.deleted"
	EventCommentCreated        = "announcement.comment_created"
	EventCommentDeleted        = "announcement.comment_deleted"
)

// AnnouncementEvent is the message published after a committed change
type AnnouncementEvent struct {
	Type           string    `json:"type"`
	AnnouncementID uint      `json:"announcement_id"`
	Slug           string    `json:"slug"`
	Status         string    `json:"status,omitempty"`
	AuthorID       uint      `json:"author_id,omitempty"`
	OrganizationID *uint     `json:"organization_id,omitempty"`
	CommentID      *uint     `json:"comment_id,omitempty"`
	ActorID        uint      `json:"actor_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// SearchDocument is what the full-text index stores per announcement
type SearchDocument struct {
	ID       uint
	Headline string
	Syn      string
	Body     string
	Slug     string
}
