// Package store is the single point of truth for persisted state. Every
// public method is its own unit of work: it runs in a scoped transaction
// that commits on success and rolls back on any failure, so no operation
// is ever left half-applied. Absence is reported as a nil (or false)
// result, never as an error; constraint violations from the backing
// store propagate unwrapped.
package store

import (
	"errors"

	"demo-api/internal/schema"

	"gorm.io/gorm"
)

// API is the surface the protocol adapters call. Reads take eager-load
// flags, writes take identifier plus field-set.
type API interface {
	CreateUser(data *schema.UserCreate) (*schema.UserResponse, error)
	GetUser(id uint, includePosts bool) (*schema.UserResponse, error)
	UpdateUser(id uint, data *schema.UserUpdate) (*schema.UserResponse, error)
	DeleteUser(id uint) (bool, error)
	SearchUsers(params *schema.UserSearch) ([]schema.UserResponse, error)

	CreatePost(authorID uint, data *schema.PostCreate) (*schema.PostResponse, error)
	GetPost(id uint, includeAuthor, includeTags bool) (*schema.PostResponse, error)
	UpdatePost(id uint, data *schema.PostUpdate) (*schema.PostResponse, error)
	DeletePost(id uint) (bool, error)
	SearchPosts(params *schema.PostSearch) ([]schema.PostResponse, error)

	CreateTag(data *schema.TagCreate) (*schema.TagResponse, error)
	GetTag(id uint, includePosts bool) (*schema.TagResponse, error)
	UpdateTag(id uint, data *schema.TagUpdate) (*schema.TagResponse, error)
	DeleteTag(id uint) (bool, error)
	GetAllTags(includePosts bool) ([]schema.TagResponse, error)

	Reset() error
}

type Store struct {
	db     *gorm.DB
	sqlDir string
}

var _ API = (*Store)(nil)

// New wraps an open connection. sqlDir is where Reset finds the seed
// script.
func New(db *gorm.DB, sqlDir string) *Store {
	return &Store{db: db, sqlDir: sqlDir}
}

func (s *Store) tx(fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(fn)
}

// getByID fetches a record by primary key, nil on absence.
func getByID[T any](tx *gorm.DB, id uint) (*T, error) {
	var out T
	if err := tx.First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// deleteByID removes a record by primary key, reporting whether a row
// existed.
func deleteByID[T any](tx *gorm.DB, id uint) (bool, error) {
	var zero T
	res := tx.Delete(&zero, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func ilike(pattern string) string { return "%" + pattern + "%" }
