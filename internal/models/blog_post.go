package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// BlogPost is an article. Content is markdown source; posts are authored
// out-of-band and read-only to the site.
type BlogPost struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Slug      string         `json:"slug" gorm:"uniqueIndex;not null" validate:"required"`
	Title     string         `json:"title" gorm:"not null" validate:"required,max=200"`
	Excerpt   string         `json:"excerpt,omitempty"`
	Content   string         `json:"content" gorm:"type:text;not null" validate:"required"`
	ImageURL  string         `json:"image_url,omitempty"`
	Author    string         `json:"author,omitempty"`
	AuthorBio string         `json:"author_bio,omitempty"`
	Tags      datatypes.JSON `json:"tags,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TagList decodes the tags column; malformed JSON yields no tags.
func (p *BlogPost) TagList() []string {
	if len(p.Tags) == 0 {
		return nil
	}
	var tags []string
	_ = json.Unmarshal(p.Tags, &tags)
	return tags
}

// SetTags encodes tags into the tags column.
func (p *BlogPost) SetTags(tags []string) {
	p.Tags = StringList(tags)
}
