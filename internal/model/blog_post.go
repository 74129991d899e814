package model

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type BlogPost struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" gorm:"type:text;not null"`
	ImageURL string `json:"image_url,omitempty"`
}

// BeforeCreate derives the slug from the title and fills a missing
// excerpt from the first hundred runes of the content.
func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		s := slug.Make(p.Title)

		var count int64
		tx.Model(&BlogPost{}).Where("slug = ?", s).Count(&count)
		if count > 0 {
			s = s + "-" + p.CreatedAt.Format("20060102150405")
		}
		p.Slug = s
	}
	if p.Excerpt == "" {
		p.Excerpt = MakeExcerpt(p.Content)
	}
	return nil
}

// MakeExcerpt truncates post content to a hundred runes for list views.
func MakeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= 100 {
		return content
	}
	return string(runes[:100]) + "..."
}
