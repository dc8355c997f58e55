package entities

import "strconv"

// User is a registered member of the community. Users are provisioned elsewhere and only read here.
type User struct {
	ID           uint    `gorm:"primaryKey" db:"id" json:"id"`
	PID          int     `gorm:"column:pid;not null;uniqueIndex" db:"pid" json:"pid"`
	Onyen        string  `gorm:"not null;uniqueIndex" db:"onyen" json:"onyen"`
	Email        string  `gorm:"not null;default:''" db:"email" json:"email"`
	FirstName    string  `gorm:"not null;default:''" db:"first_name" json:"first_name"`
	LastName     string  `gorm:"not null;default:''" db:"last_name" json:"last_name"`
	Pronouns     string  `gorm:"not null;default:''" db:"pronouns" json:"pronouns"`
	GitHub       string  `gorm:"column:github;not null;default:''" db:"github" json:"github"`
	GitHubID     *int64  `gorm:"column:github_id" db:"github_id" json:"github_id,omitempty"`
	GitHubAvatar *string `gorm:"column:github_avatar" db:"github_avatar" json:"github_avatar,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// SubjectID is the key the permission engine and rate limiter know the user by
func (u *User) SubjectID() string {
	return strconv.FormatUint(uint64(u.ID), 10)
}

// Organization groups announcements; read only
type Organization struct {
	ID               uint   `gorm:"primaryKey" db:"id" json:"id"`
	Name             string `gorm:"not null" db:"name" json:"name"`
	Slug             string `gorm:"not null;uniqueIndex" db:"slug" json:"slug"`
	Logo             string `gorm:"not null;default:''" db:"logo" json:"logo"`
	ShortDescription string `gorm:"not null;default:''" db:"short_description" json:"short_description"`
	Website          string `gorm:"not null;default:''" db:"website" json:"website"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// Permission grants a user every action matching Action on every resource matching Resource.
// Both fields are glob patterns, e.g. "announcement.*" or "*".
type Permission struct {
	ID       uint   `gorm:"primaryKey" db:"id" json:"id"`
	UserID   uint   `gorm:"not null;index" db:"user_id" json:"user_id"`
	Action   string `gorm:"not null" db:"action" json:"action"`
	Resource string `gorm:"not null" db:"resource" json:"resource"`
}

// TableName returns the table name for Permission
func (Permission) TableName() string {
	return "permissions"
}
