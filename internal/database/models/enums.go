package models

// UserRole defines the access level of a user within a tenant
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleEditor UserRole = "EDITOR"
	RoleViewer UserRole = "VIEWER"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// SourceType defines the kinds of news sources a tenant can register
type SourceType string

const (
	SourceTypeNews   SourceType = "NEWS"
	SourceTypeBlog   SourceType = "BLOG"
	SourceTypeSocial SourceType = "SOCIAL"
)

// IsValid checks if the SourceType is valid
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeNews, SourceTypeBlog, SourceTypeSocial:
		return true
	}
	return false
}

// UpdateFrequency defines how often a source is synced by the scheduler
type UpdateFrequency string

const (
	FrequencyHourly UpdateFrequency = "HOURLY"
	FrequencyDaily  UpdateFrequency = "DAILY"
	FrequencyWeekly UpdateFrequency = "WEEKLY"
	FrequencyManual UpdateFrequency = "MANUAL"
)

// IsValid checks if the UpdateFrequency is valid
func (f UpdateFrequency) IsValid() bool {
	switch f {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyManual:
		return true
	}
	return false
}

// ArticleStatus defines the publication state of an article
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPublished ArticleStatus = "PUBLISHED"
	StatusArchived  ArticleStatus = "ARCHIVED"
)

// IsValid checks if the ArticleStatus is valid
func (s ArticleStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
