package store

import (
	"errors"

	"demo-api/internal/model"
	"demo-api/internal/schema"

	"gorm.io/gorm"
)

// findTags resolves a detached tag-identifier list. The second return
// value holds the ids that resolved to nothing.
func findTags(tx *gorm.DB, ids []uint) ([]model.Tag, []uint, error) {
	var tags []model.Tag
	if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, nil, err
	}
	return tags, missingTagIDs(ids, tags), nil
}

// CreatePost inserts a post for the given author. A nil result means the
// author does not exist. Unknown tag ids fail the whole creation with a
// TagsNotFoundError and nothing is persisted.
func (s *Store) CreatePost(authorID uint, data *schema.PostCreate) (*schema.PostResponse, error) {
	var resp *schema.PostResponse
	err := s.tx(func(tx *gorm.DB) error {
		author, err := getByID[model.User](tx, authorID)
		if err != nil || author == nil {
			return err
		}

		p := &model.Post{
			AuthorID:    authorID,
			Title:       data.Title,
			Content:     data.Content,
			IsPublished: data.Published(),
		}
		if len(data.TagIDs) > 0 {
			tags, missing, err := findTags(tx, data.TagIDs)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return &TagsNotFoundError{Missing: missing}
			}
			p.Tags = tags
		}

		// Omit("Tags.*") writes the association rows without touching
		// the tag rows themselves.
		if err := tx.Omit("Tags.*").Create(p).Error; err != nil {
			return err
		}
		p.Author = author
		resp = schema.NewPostResponse(p, true, true)
		return nil
	})
	return resp, err
}

func (s *Store) GetPost(id uint, includeAuthor, includeTags bool) (*schema.PostResponse, error) {
	var resp *schema.PostResponse
	err := s.tx(func(tx *gorm.DB) error {
		q := tx
		if includeAuthor {
			q = q.Preload("Author")
		}
		if includeTags {
			q = q.Preload("Tags")
		}
		var p model.Post
		if err := q.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		resp = schema.NewPostResponse(&p, includeAuthor, includeTags)
		return nil
	})
	return resp, err
}

// UpdatePost applies only the provided fields. A provided tag list fully
// replaces the association set; any unknown id aborts the whole update.
func (s *Store) UpdatePost(id uint, data *schema.PostUpdate) (*schema.PostResponse, error) {
	var resp *schema.PostResponse
	err := s.tx(func(tx *gorm.DB) error {
		p, err := getByID[model.Post](tx, id)
		if err != nil || p == nil {
			return err
		}

		if ids, ok := data.ReplaceTags(); ok {
			tags, missing, err := findTags(tx, ids)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return &TagsNotFoundError{Missing: missing}
			}
			if err := tx.Model(p).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}

		if fields := data.Fields(); len(fields) > 0 {
			if err := tx.Model(p).Updates(fields).Error; err != nil {
				return err
			}
		}

		var updated model.Post
		if err := tx.Preload("Author").Preload("Tags").First(&updated, id).Error; err != nil {
			return err
		}
		resp = schema.NewPostResponse(&updated, true, true)
		return nil
	})
	return resp, err
}

func (s *Store) DeletePost(id uint) (bool, error) {
	var found bool
	err := s.tx(func(tx *gorm.DB) error {
		var err error
		found, err = deleteByID[model.Post](tx, id)
		return err
	})
	return found, err
}

func (s *Store) SearchPosts(params *schema.PostSearch) ([]schema.PostResponse, error) {
	params.Normalize()

	var out []schema.PostResponse
	err := s.tx(func(tx *gorm.DB) error {
		cond := tx.Session(&gorm.Session{NewDB: true})
		filtered := false
		if params.Title != "" {
			cond = cond.Or("title ILIKE ?", ilike(params.Title))
			filtered = true
		}
		if params.Content != "" {
			cond = cond.Or("content ILIKE ?", ilike(params.Content))
			filtered = true
		}

		q := tx.Model(&model.Post{}).Order("id")
		if params.IncludeAuthor {
			q = q.Preload("Author")
		}
		if params.IncludeTags {
			q = q.Preload("Tags")
		}
		if filtered {
			q = q.Where(cond)
		}

		var posts []model.Post
		if err := q.Offset(params.Skip).Limit(params.Limit).Find(&posts).Error; err != nil {
			return err
		}
		out = make([]schema.PostResponse, 0, len(posts))
		for i := range posts {
			out = append(out, *schema.NewPostResponse(&posts[i], params.IncludeAuthor, params.IncludeTags))
		}
		return nil
	})
	return out, err
}
