// Package storetest provides a function-field fake of the store surface
// for adapter tests.
package storetest

import (
	"demo-api/internal/schema"
	"demo-api/internal/store"
)

// Fake implements store.API by delegating to its function fields. Unset
// fields report absence, so tests only stub what they exercise.
type Fake struct {
	CreateUserFn  func(data *schema.UserCreate) (*schema.UserResponse, error)
	GetUserFn     func(id uint, includePosts bool) (*schema.UserResponse, error)
	UpdateUserFn  func(id uint, data *schema.UserUpdate) (*schema.UserResponse, error)
	DeleteUserFn  func(id uint) (bool, error)
	SearchUsersFn func(params *schema.UserSearch) ([]schema.UserResponse, error)

	CreatePostFn  func(authorID uint, data *schema.PostCreate) (*schema.PostResponse, error)
	GetPostFn     func(id uint, includeAuthor, includeTags bool) (*schema.PostResponse, error)
	UpdatePostFn  func(id uint, data *schema.PostUpdate) (*schema.PostResponse, error)
	DeletePostFn  func(id uint) (bool, error)
	SearchPostsFn func(params *schema.PostSearch) ([]schema.PostResponse, error)

	CreateTagFn  func(data *schema.TagCreate) (*schema.TagResponse, error)
	GetTagFn     func(id uint, includePosts bool) (*schema.TagResponse, error)
	UpdateTagFn  func(id uint, data *schema.TagUpdate) (*schema.TagResponse, error)
	DeleteTagFn  func(id uint) (bool, error)
	GetAllTagsFn func(includePosts bool) ([]schema.TagResponse, error)

	ResetFn func() error
}

var _ store.API = (*Fake)(nil)

func (f *Fake) CreateUser(data *schema.UserCreate) (*schema.UserResponse, error) {
	if f.CreateUserFn != nil {
		return f.CreateUserFn(data)
	}
	return nil, nil
}

func (f *Fake) GetUser(id uint, includePosts bool) (*schema.UserResponse, error) {
	if f.GetUserFn != nil {
		return f.GetUserFn(id, includePosts)
	}
	return nil, nil
}

func (f *Fake) UpdateUser(id uint, data *schema.UserUpdate) (*schema.UserResponse, error) {
	if f.UpdateUserFn != nil {
		return f.UpdateUserFn(id, data)
	}
	return nil, nil
}

func (f *Fake) DeleteUser(id uint) (bool, error) {
	if f.DeleteUserFn != nil {
		return f.DeleteUserFn(id)
	}
	return false, nil
}

func (f *Fake) SearchUsers(params *schema.UserSearch) ([]schema.UserResponse, error) {
	if f.SearchUsersFn != nil {
		return f.SearchUsersFn(params)
	}
	return nil, nil
}

func (f *Fake) CreatePost(authorID uint, data *schema.PostCreate) (*schema.PostResponse, error) {
	if f.CreatePostFn != nil {
		return f.CreatePostFn(authorID, data)
	}
	return nil, nil
}

func (f *Fake) GetPost(id uint, includeAuthor, includeTags bool) (*schema.PostResponse, error) {
	if f.GetPostFn != nil {
		return f.GetPostFn(id, includeAuthor, includeTags)
	}
	return nil, nil
}

func (f *Fake) UpdatePost(id uint, data *schema.PostUpdate) (*schema.PostResponse, error) {
	if f.UpdatePostFn != nil {
		return f.UpdatePostFn(id, data)
	}
	return nil, nil
}

func (f *Fake) DeletePost(id uint) (bool, error) {
	if f.DeletePostFn != nil {
		return f.DeletePostFn(id)
	}
	return false, nil
}

func (f *Fake) SearchPosts(params *schema.PostSearch) ([]schema.PostResponse, error) {
	if f.SearchPostsFn != nil {
		return f.SearchPostsFn(params)
	}
	return nil, nil
}

func (f *Fake) CreateTag(data *schema.TagCreate) (*schema.TagResponse, error) {
	if f.CreateTagFn != nil {
		return f.CreateTagFn(data)
	}
	return nil, nil
}

func (f *Fake) GetTag(id uint, includePosts bool) (*schema.TagResponse, error) {
	if f.GetTagFn != nil {
		return f.GetTagFn(id, includePosts)
	}
	return nil, nil
}

func (f *Fake) UpdateTag(id uint, data *schema.TagUpdate) (*schema.TagResponse, error) {
	if f.UpdateTagFn != nil {
		return f.UpdateTagFn(id, data)
	}
	return nil, nil
}

func (f *Fake) DeleteTag(id uint) (bool, error) {
	if f.DeleteTagFn != nil {
		return f.DeleteTagFn(id)
	}
	return false, nil
}

func (f *Fake) GetAllTags(includePosts bool) ([]schema.TagResponse, error) {
	if f.GetAllTagsFn != nil {
		return f.GetAllTagsFn(includePosts)
	}
	return nil, nil
}

func (f *Fake) Reset() error {
	if f.ResetFn != nil {
		return f.ResetFn()
	}
	return nil
}
