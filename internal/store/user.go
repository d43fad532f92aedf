package store

import (
	"errors"

	"demo-api/internal/model"
	"demo-api/internal/schema"

	"gorm.io/gorm"
)

func (s *Store) CreateUser(data *schema.UserCreate) (*schema.UserResponse, error) {
	u := data.Model()
	if err := s.tx(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	}); err != nil {
		return nil, err
	}
	return schema.NewUserResponse(u, false), nil
}

func (s *Store) GetUser(id uint, includePosts bool) (*schema.UserResponse, error) {
	var resp *schema.UserResponse
	err := s.tx(func(tx *gorm.DB) error {
		q := tx
		if includePosts {
			q = q.Preload("Posts")
		}
		var u model.User
		if err := q.First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		resp = schema.NewUserResponse(&u, includePosts)
		return nil
	})
	return resp, err
}

func (s *Store) UpdateUser(id uint, data *schema.UserUpdate) (*schema.UserResponse, error) {
	var resp *schema.UserResponse
	err := s.tx(func(tx *gorm.DB) error {
		u, err := getByID[model.User](tx, id)
		if err != nil || u == nil {
			return err
		}
		if fields := data.Fields(); len(fields) > 0 {
			if err := tx.Model(u).Updates(fields).Error; err != nil {
				return err
			}
		}
		var updated model.User
		if err := tx.Preload("Posts").First(&updated, id).Error; err != nil {
			return err
		}
		resp = schema.NewUserResponse(&updated, true)
		return nil
	})
	return resp, err
}

func (s *Store) DeleteUser(id uint) (bool, error) {
	// The user's posts and their association rows go with it via the
	// cascading foreign keys.
	var found bool
	err := s.tx(func(tx *gorm.DB) error {
		var err error
		found, err = deleteByID[model.User](tx, id)
		return err
	})
	return found, err
}

func (s *Store) SearchUsers(params *schema.UserSearch) ([]schema.UserResponse, error) {
	params.Normalize()

	var out []schema.UserResponse
	err := s.tx(func(tx *gorm.DB) error {
		cond := tx.Session(&gorm.Session{NewDB: true})
		filtered := false
		if params.Nickname != "" {
			cond = cond.Or("nickname ILIKE ?", ilike(params.Nickname))
			filtered = true
		}
		if params.Email != "" {
			cond = cond.Or("email ILIKE ?", ilike(params.Email))
			filtered = true
		}
		if params.Location != "" {
			cond = cond.Or("location ILIKE ?", ilike(params.Location))
			filtered = true
		}
		if params.JobTitle != "" {
			cond = cond.Or("job_title ILIKE ?", ilike(params.JobTitle))
			filtered = true
		}

		q := tx.Model(&model.User{}).Order("id")
		if params.IncludePosts {
			q = q.Preload("Posts")
		}
		if filtered {
			q = q.Where(cond)
		}

		var users []model.User
		if err := q.Offset(params.Skip).Limit(params.Limit).Find(&users).Error; err != nil {
			return err
		}
		out = make([]schema.UserResponse, 0, len(users))
		for i := range users {
			out = append(out, *schema.NewUserResponse(&users[i], params.IncludePosts))
		}
		return nil
	})
	return out, err
}
