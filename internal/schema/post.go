package schema

import (
	"errors"
	"time"

	"demo-api/internal/model"
)

type PostCreate struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsPublished *bool  `json:"is_published"`
	TagIDs      []uint `json:"tag_ids"`
}

func (c *PostCreate) Validate() error {
	switch {
	case c.Title == "":
		return errors.New("title is required")
	case c.Content == "":
		return errors.New("content is required")
	}
	return nil
}

// Published resolves the flag's default: posts are published unless the
// input says otherwise.
func (c *PostCreate) Published() bool {
	if c.IsPublished == nil {
		return true
	}
	return *c.IsPublished
}

type PostUpdate struct {
	Title       Optional[string] `json:"title"`
	Content     Optional[string] `json:"content"`
	IsPublished Optional[bool]   `json:"is_published"`

	// TagIDs present-with-value fully replaces the association set.
	// Absent or explicitly null leaves it untouched.
	TagIDs Optional[[]uint] `json:"tag_ids"`
}

// Fields returns the column values to apply, excluding tag_ids which is
// association state, not a column.
func (u *PostUpdate) Fields() map[string]any {
	f := map[string]any{}
	if u.Title.Set {
		f["title"] = u.Title.Ptr()
	}
	if u.Content.Set {
		f["content"] = u.Content.Ptr()
	}
	if u.IsPublished.Set {
		f["is_published"] = u.IsPublished.Ptr()
	}
	return f
}

// ReplaceTags reports whether the update carries a tag list to apply.
func (u *PostUpdate) ReplaceTags() ([]uint, bool) {
	if u.TagIDs.Set && u.TagIDs.Valid {
		return u.TagIDs.Value, true
	}
	return nil, false
}

type PostSearch struct {
	Title   string `json:"title"`
	Content string `json:"content"`

	IncludeAuthor bool `json:"include_author"`
	IncludeTags   bool `json:"include_tags"`
	Skip          int  `json:"skip"`
	Limit         int  `json:"limit"`
}

func (s *PostSearch) Normalize() {
	if s.Skip < 0 {
		s.Skip = 0
	}
	if s.Limit <= 0 {
		s.Limit = 100
	}
}

// PostResponse is the read-time projection of a post. Author and tags
// are present only when the read requested them.
type PostResponse struct {
	ID          uint         `json:"id"`
	AuthorID    uint         `json:"author_id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	IsPublished bool         `json:"is_published"`
	Rating      int          `json:"rating"`
	Views       int          `json:"views"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Author      *UserMinimal `json:"author,omitempty"`
	Tags        []TagMinimal `json:"tags,omitempty"`
}

// PostMinimal omits nested relationships, used when embedding a user's
// or tag's posts.
type PostMinimal struct {
	ID          uint      `json:"id"`
	AuthorID    uint      `json:"author_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPostResponse(p *model.Post, withAuthor, withTags bool) *PostResponse {
	resp := &PostResponse{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Content:     p.Content,
		IsPublished: p.IsPublished,
		Rating:      p.Rating,
		Views:       p.Views,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if withAuthor && p.Author != nil {
		a := NewUserMinimal(p.Author)
		resp.Author = &a
	}
	if withTags {
		resp.Tags = make([]TagMinimal, 0, len(p.Tags))
		for i := range p.Tags {
			resp.Tags = append(resp.Tags, NewTagMinimal(&p.Tags[i]))
		}
	}
	return resp
}

func NewPostMinimal(p *model.Post) PostMinimal {
	return PostMinimal{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Content:     p.Content,
		IsPublished: p.IsPublished,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
