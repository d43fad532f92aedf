package store

import (
	"errors"

	"demo-api/internal/model"
	"demo-api/internal/schema"

	"gorm.io/gorm"
)

func (s *Store) CreateTag(data *schema.TagCreate) (*schema.TagResponse, error) {
	t := data.Model()
	if err := s.tx(func(tx *gorm.DB) error {
		return tx.Create(t).Error
	}); err != nil {
		return nil, err
	}
	return schema.NewTagResponse(t, false), nil
}

func (s *Store) GetTag(id uint, includePosts bool) (*schema.TagResponse, error) {
	var resp *schema.TagResponse
	err := s.tx(func(tx *gorm.DB) error {
		q := tx
		if includePosts {
			q = q.Preload("Posts")
		}
		var t model.Tag
		if err := q.First(&t, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		resp = schema.NewTagResponse(&t, includePosts)
		return nil
	})
	return resp, err
}

func (s *Store) UpdateTag(id uint, data *schema.TagUpdate) (*schema.TagResponse, error) {
	var resp *schema.TagResponse
	err := s.tx(func(tx *gorm.DB) error {
		t, err := getByID[model.Tag](tx, id)
		if err != nil || t == nil {
			return err
		}
		if fields := data.Fields(); len(fields) > 0 {
			if err := tx.Model(t).Updates(fields).Error; err != nil {
				return err
			}
		}
		var updated model.Tag
		if err := tx.Preload("Posts").First(&updated, id).Error; err != nil {
			return err
		}
		resp = schema.NewTagResponse(&updated, true)
		return nil
	})
	return resp, err
}

// DeleteTag removes the tag and its association rows. Posts that carried
// the tag are untouched.
func (s *Store) DeleteTag(id uint) (bool, error) {
	var found bool
	err := s.tx(func(tx *gorm.DB) error {
		var err error
		found, err = deleteByID[model.Tag](tx, id)
		return err
	})
	return found, err
}

func (s *Store) GetAllTags(includePosts bool) ([]schema.TagResponse, error) {
	var out []schema.TagResponse
	err := s.tx(func(tx *gorm.DB) error {
		q := tx.Model(&model.Tag{}).Order("id")
		if includePosts {
			q = q.Preload("Posts")
		}
		var tags []model.Tag
		if err := q.Find(&tags).Error; err != nil {
			return err
		}
		out = make([]schema.TagResponse, 0, len(tags))
		for i := range tags {
			out = append(out, *schema.NewTagResponse(&tags[i], includePosts))
		}
		return nil
	})
	return out, err
}
