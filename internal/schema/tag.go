package schema

import (
	"errors"
	"time"

	"demo-api/internal/model"
)

type TagCreate struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
}

func (c *TagCreate) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

func (c *TagCreate) Model() *model.Tag {
	return &model.Tag{
		Title:       c.Title,
		Description: c.Description,
	}
}

type TagUpdate struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
}

func (u *TagUpdate) Fields() map[string]any {
	f := map[string]any{}
	if u.Title.Set {
		f["title"] = u.Title.Ptr()
	}
	if u.Description.Set {
		f["description"] = u.Description.Ptr()
	}
	return f
}

// TagResponse is the read-time projection of a tag. Posts are present
// only when the read requested them.
type TagResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	Posts       []PostMinimal `json:"posts,omitempty"`
}

// TagMinimal omits nested relationships, used when embedding a post's
// tags.
type TagMinimal struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func NewTagResponse(t *model.Tag, withPosts bool) *TagResponse {
	resp := &TagResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
	if withPosts {
		resp.Posts = make([]PostMinimal, 0, len(t.Posts))
		for i := range t.Posts {
			resp.Posts = append(resp.Posts, NewPostMinimal(&t.Posts[i]))
		}
	}
	return resp
}

func NewTagMinimal(t *model.Tag) TagMinimal {
	return TagMinimal{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
	}
}
