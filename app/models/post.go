package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up server-managed fields before creation.
// The slug is derived from the title only when absent; it is never
// taken from client input.
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	p.Tags = dedupeTags(p.Tags)
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// BeforeUpdate refreshes server-managed fields on mutation.
func (p *Post) BeforeUpdate() {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	p.Tags = dedupeTags(p.Tags)
	p.UpdatedAt = time.Now().UTC()
}

// HasTag reports whether any tag label contains the given fragment,
// case-insensitively.
func (p *Post) HasTag(fragment string) bool {
	for _, label := range p.Tags {
		if containsFold(label, fragment) {
			return true
		}
	}
	return false
}

// dedupeTags removes duplicate labels while preserving order. Labels
// are matched case-sensitively as supplied.
func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, label := range tags {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
