// Package schema defines the accepted input shapes and output
// projections for each entity. Pure data: adapters decode into these,
// the store returns them.
package schema

import (
	"errors"
	"time"

	"demo-api/internal/model"
)

type UserCreate struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Nickname  string  `json:"nickname" validate:"required"`
	Password  string  `json:"password" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Birthdate Date    `json:"birthdate" validate:"required"`
	Location  *string `json:"location"`
	Gender    *string `json:"gender"`
	JobTitle  *string `json:"job_title"`
	Phone     *string `json:"phone"`
}

func (c *UserCreate) Validate() error {
	switch {
	case c.FirstName == "":
		return errors.New("first_name is required")
	case c.LastName == "":
		return errors.New("last_name is required")
	case c.Nickname == "":
		return errors.New("nickname is required")
	case c.Password == "":
		return errors.New("password is required")
	case c.Email == "":
		return errors.New("email is required")
	case c.Birthdate.IsZero():
		return errors.New("birthdate is required")
	}
	return nil
}

// Model builds the entity to insert. The password is stored as given.
func (c *UserCreate) Model() *model.User {
	return &model.User{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Nickname:  c.Nickname,
		Password:  c.Password,
		Email:     c.Email,
		Birthdate: c.Birthdate.Time,
		Location:  c.Location,
		Gender:    c.Gender,
		JobTitle:  c.JobTitle,
		Phone:     c.Phone,
	}
}

type UserUpdate struct {
	FirstName Optional[string] `json:"first_name"`
	LastName  Optional[string] `json:"last_name"`
	Nickname  Optional[string] `json:"nickname"`
	Password  Optional[string] `json:"password"`
	Email     Optional[string] `json:"email"`
	Birthdate Optional[Date]   `json:"birthdate"`
	Location  Optional[string] `json:"location"`
	Gender    Optional[string] `json:"gender"`
	JobTitle  Optional[string] `json:"job_title"`
	Phone     Optional[string] `json:"phone"`
}

// Fields returns the column values to apply, keyed by column name. Only
// fields present in the input appear; explicit nulls are applied as
// nulls and left to the store's constraints to accept or reject.
func (u *UserUpdate) Fields() map[string]any {
	f := map[string]any{}
	if u.FirstName.Set {
		f["first_name"] = u.FirstName.Ptr()
	}
	if u.LastName.Set {
		f["last_name"] = u.LastName.Ptr()
	}
	if u.Nickname.Set {
		f["nickname"] = u.Nickname.Ptr()
	}
	if u.Password.Set {
		f["password"] = u.Password.Ptr()
	}
	if u.Email.Set {
		f["email"] = u.Email.Ptr()
	}
	if u.Birthdate.Set {
		if u.Birthdate.Valid {
			f["birthdate"] = u.Birthdate.Value.Time
		} else {
			f["birthdate"] = nil
		}
	}
	if u.Location.Set {
		f["location"] = u.Location.Ptr()
	}
	if u.Gender.Set {
		f["gender"] = u.Gender.Ptr()
	}
	if u.JobTitle.Set {
		f["job_title"] = u.JobTitle.Ptr()
	}
	if u.Phone.Set {
		f["phone"] = u.Phone.Ptr()
	}
	return f
}

type UserSearch struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Location string `json:"location"`
	JobTitle string `json:"job_title"`

	IncludePosts bool `json:"include_posts"`
	Skip         int  `json:"skip"`
	Limit        int  `json:"limit"`
}

// Normalize applies the pagination defaults: skip 0, limit 100.
func (s *UserSearch) Normalize() {
	if s.Skip < 0 {
		s.Skip = 0
	}
	if s.Limit <= 0 {
		s.Limit = 100
	}
}

// UserResponse is the read-time projection of a user. Posts are present
// only when the read requested them.
type UserResponse struct {
	ID        uint          `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Nickname  string        `json:"nickname"`
	Email     string        `json:"email"`
	Birthdate Date          `json:"birthdate"`
	Location  *string       `json:"location"`
	Gender    *string       `json:"gender"`
	JobTitle  *string       `json:"job_title"`
	Phone     *string       `json:"phone"`
	CreatedAt time.Time     `json:"created_at"`
	Posts     []PostMinimal `json:"posts,omitempty"`
}

// UserMinimal omits nested relationships, used when embedding a post's
// author to avoid unbounded recursive expansion.
type UserMinimal struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname"`
}

func NewUserResponse(u *model.User, withPosts bool) *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Nickname:  u.Nickname,
		Email:     u.Email,
		Birthdate: Date{u.Birthdate},
		Location:  u.Location,
		Gender:    u.Gender,
		JobTitle:  u.JobTitle,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
	if withPosts {
		resp.Posts = make([]PostMinimal, 0, len(u.Posts))
		for i := range u.Posts {
			resp.Posts = append(resp.Posts, NewPostMinimal(&u.Posts[i]))
		}
	}
	return resp
}

func NewUserMinimal(u *model.User) UserMinimal {
	return UserMinimal{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Nickname:  u.Nickname,
	}
}
