package gql

import (
	"encoding/json"
	"testing"

	"demo-api/internal/schema"
	"demo-api/internal/store/storetest"

	"github.com/graphql-go/graphql"
)

func execute(t *testing.T, fake *storetest.Fake, query string, vars map[string]any) *graphql.Result {
	t.Helper()
	s, err := NewSchema(fake)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	return graphql.Do(graphql.Params{
		Schema:         s,
		RequestString:  query,
		VariableValues: vars,
	})
}

func TestQueryUser(t *testing.T) {
	fake := &storetest.Fake{
		GetUserFn: func(id uint, includePosts bool) (*schema.UserResponse, error) {
			if id != 7 {
				t.Errorf("id = %d, want 7", id)
			}
			if !includePosts {
				t.Error("includePosts must default to true")
			}
			return &schema.UserResponse{ID: 7, Nickname: "greta633"}, nil
		},
	}
	result := execute(t, fake, `{ user(userId: 7) { id nickname } }`, nil)
	if len(result.Errors) > 0 {
		t.Fatalf("errors: %v", result.Errors)
	}
	b, _ := json.Marshal(result.Data)
	want := `{"user":{"id":7,"nickname":"greta633"}}`
	if string(b) != want {
		t.Errorf("data = %s, want %s", b, want)
	}
}

func TestQueryUser_AbsentIsNull(t *testing.T) {
	result := execute(t, &storetest.Fake{}, `{ user(userId: 404) { id } }`, nil)
	if len(result.Errors) > 0 {
		t.Fatalf("errors: %v", result.Errors)
	}
	data := result.Data.(map[string]any)
	if data["user"] != nil {
		t.Errorf("user = %v, want null for an absent id", data["user"])
	}
}

func TestQueryUsers_SearchParams(t *testing.T) {
	var gotParams *schema.UserSearch
	fake := &storetest.Fake{
		SearchUsersFn: func(params *schema.UserSearch) ([]schema.UserResponse, error) {
			gotParams = params
			return []schema.UserResponse{{ID: 1, Nickname: "gopher"}}, nil
		},
	}
	query := `{ users(searchParams: {nickname: "go", skip: 5, limit: 2}) { id nickname } }`
	result := execute(t, fake, query, nil)
	if len(result.Errors) > 0 {
		t.Fatalf("errors: %v", result.Errors)
	}
	if gotParams.Nickname != "go" || gotParams.Skip != 5 || gotParams.Limit != 2 {
		t.Errorf("params = %+v, want the search input carried over", gotParams)
	}
	if gotParams.IncludePosts {
		t.Error("includePosts must default to false on user lists")
	}
}

func TestMutationCreateUser_Validates(t *testing.T) {
	called := false
	fake := &storetest.Fake{
		CreateUserFn: func(data *schema.UserCreate) (*schema.UserResponse, error) {
			called = true
			return &schema.UserResponse{ID: 1}, nil
		},
	}
	// Birthdate uses the Date scalar and must reject a non-date string.
	query := `mutation {
		createUser(userData: {
			firstName: "A", lastName: "B", nickname: "ab",
			password: "pw", email: "a@b.c", birthdate: "not-a-date"
		}) { id }
	}`
	result := execute(t, fake, query, nil)
	if len(result.Errors) == 0 {
		t.Error("expected a validation error for a malformed birthdate")
	}
	if called {
		t.Error("the store must not be reached on invalid input")
	}
}

func TestMutationCreateUser(t *testing.T) {
	var gotCreate *schema.UserCreate
	fake := &storetest.Fake{
		CreateUserFn: func(data *schema.UserCreate) (*schema.UserResponse, error) {
			gotCreate = data
			return &schema.UserResponse{ID: 9, Nickname: data.Nickname}, nil
		},
	}
	query := `mutation {
		createUser(userData: {
			firstName: "Alice", lastName: "Johnson", nickname: "alice042",
			password: "secret", email: "alice@example.com", birthdate: "1988-04-12",
			location: "Berlin"
		}) { id nickname }
	}`
	result := execute(t, fake, query, nil)
	if len(result.Errors) > 0 {
		t.Fatalf("errors: %v", result.Errors)
	}
	if gotCreate.Nickname != "alice042" || gotCreate.Email != "alice@example.com" {
		t.Errorf("create = %+v, want input carried over", gotCreate)
	}
	if gotCreate.Location == nil || *gotCreate.Location != "Berlin" {
		t.Errorf("Location = %v, want Berlin", gotCreate.Location)
	}
	if gotCreate.Birthdate.String() != "1988-04-12" {
		t.Errorf("Birthdate = %s, want 1988-04-12", gotCreate.Birthdate)
	}
}

func TestMutationUpdateUser_PartialFieldSet(t *testing.T) {
	var gotUpdate *schema.UserUpdate
	fake := &storetest.Fake{
		UpdateUserFn: func(id uint, data *schema.UserUpdate) (*schema.UserResponse, error) {
			gotUpdate = data
			return &schema.UserResponse{ID: id}, nil
		},
	}
	query := `mutation {
		updateUser(userId: 3, userData: {firstName: "New"}) { id }
	}`
	result := execute(t, fake, query, nil)
	if len(result.Errors) > 0 {
		t.Fatalf("errors: %v", result.Errors)
	}
	if !gotUpdate.FirstName.Set || !gotUpdate.FirstName.Valid || gotUpdate.FirstName.Value != "New" {
		t.Errorf("firstName = %+v, want a set value", gotUpdate.FirstName)
	}
	if gotUpdate.Email.Set {
		t.Error("email was absent and must not be marked set")
	}
	if gotUpdate.Location.Set {
		t.Error("location was absent and must not be marked set")
	}
}

func TestMutationDeleteUser_ReturnsBool(t *testing.T) {
	fake := &storetest.Fake{
		DeleteUserFn: func(id uint) (bool, error) { return id == 5, nil },
	}
	result := execute(t, fake, `mutation { deleteUser(userId: 5) }`, nil)
	if len(result.Errors) > 0 {
		t.Fatalf("errors: %v", result.Errors)
	}
	data := result.Data.(map[string]any)
	if data["deleteUser"] != true {
		t.Errorf("deleteUser = %v, want true", data["deleteUser"])
	}

	result = execute(t, fake, `mutation { deleteUser(userId: 6) }`, nil)
	data = result.Data.(map[string]any)
	if data["deleteUser"] != false {
		t.Errorf("deleteUser = %v, want false for an absent id", data["deleteUser"])
	}
}

func TestMutationCreatePost_AbsentAuthorIsError(t *testing.T) {
	query := `mutation {
		createPost(authorId: 42, postData: {title: "t", content: "c"}) { id }
	}`
	result := execute(t, &storetest.Fake{}, query, nil)
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for an unknown author")
	}
	if result.Errors[0].Message != "author with id 42 not found" {
		t.Errorf("message = %q", result.Errors[0].Message)
	}
}

func TestMutationUpdatePost_TagReplace(t *testing.T) {
	var gotUpdate *schema.PostUpdate
	fake := &storetest.Fake{
		UpdatePostFn: func(id uint, data *schema.PostUpdate) (*schema.PostResponse, error) {
			gotUpdate = data
			return &schema.PostResponse{ID: id}, nil
		},
	}
	query := `mutation { updatePost(postId: 2, postData: {tagIds: [3, 1]}) { id } }`
	result := execute(t, fake, query, nil)
	if len(result.Errors) > 0 {
		t.Fatalf("errors: %v", result.Errors)
	}
	ids, replace := gotUpdate.ReplaceTags()
	if !replace || len(ids) != 2 || ids[0] != 3 || ids[1] != 1 {
		t.Errorf("ReplaceTags = (%v, %t), want ([3 1], true)", ids, replace)
	}
}

func TestQueryTags_DefaultExcludesPosts(t *testing.T) {
	var gotInclude bool
	fake := &storetest.Fake{
		GetAllTagsFn: func(includePosts bool) ([]schema.TagResponse, error) {
			gotInclude = includePosts
			return []schema.TagResponse{{ID: 1, Title: "golang"}}, nil
		},
	}
	result := execute(t, fake, `{ tags { id title } }`, nil)
	if len(result.Errors) > 0 {
		t.Fatalf("errors: %v", result.Errors)
	}
	if gotInclude {
		t.Error("includePosts must default to false on the tag list")
	}
}

func TestMutationResetDatabase(t *testing.T) {
	called := false
	fake := &storetest.Fake{
		ResetFn: func() error { called = true; return nil },
	}
	result := execute(t, fake, `mutation { resetDatabase }`, nil)
	if len(result.Errors) > 0 {
		t.Fatalf("errors: %v", result.Errors)
	}
	if !called {
		t.Error("reset must reach the store")
	}
}
