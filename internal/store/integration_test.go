package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"demo-api/internal/migrate"
	"demo-api/internal/schema"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens the database named by TEST_DB_DSN, recreates the
// schema and returns a store backed by a throwaway seed directory.
// Tests are skipped when the variable is not set.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping database integration test")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := migrate.DropAll(db); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if err := migrate.AutoMigrateAll(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	dir := t.TempDir()
	seed := "INSERT INTO users (id, first_name, last_name, nickname, password, email, birthdate, created_at) " +
		"VALUES (1, 'Seed', 'User', 'seed1', 'pw', 'seed1@example.com', '1990-01-01', NOW());\n" +
		"INSERT INTO tags (id, title, created_at) VALUES (1, 'seeded', NOW());\n" +
		"SELECT setval('users_id_seq', (SELECT MAX(id) FROM users));\n" +
		"SELECT setval('tags_id_seq', (SELECT MAX(id) FROM tags));\n"
	if err := os.WriteFile(filepath.Join(dir, "dummy_data.sql"), []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return New(db, dir)
}

func mustCreateUser(t *testing.T, s *Store, nickname string) *schema.UserResponse {
	t.Helper()
	u, err := s.CreateUser(&schema.UserCreate{
		FirstName: "Test",
		LastName:  "User",
		Nickname:  nickname,
		Password:  "pw",
		Email:     nickname + "@example.com",
		Birthdate: schema.NewDate(1990, time.June, 15),
	})
	if err != nil {
		t.Fatalf("create user %s: %v", nickname, err)
	}
	return u
}

func mustCreateTag(t *testing.T, s *Store, title string) *schema.TagResponse {
	t.Helper()
	tag, err := s.CreateTag(&schema.TagCreate{Title: title})
	if err != nil {
		t.Fatalf("create tag %s: %v", title, err)
	}
	return tag
}

func mustCreatePost(t *testing.T, s *Store, authorID uint, title string, tagIDs []uint) *schema.PostResponse {
	t.Helper()
	p, err := s.CreatePost(authorID, &schema.PostCreate{
		Title:   title,
		Content: title + " content",
		TagIDs:  tagIDs,
	})
	if err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	if p == nil {
		t.Fatalf("create post %s: author %d not found", title, authorID)
	}
	return p
}

func TestUserLifecycle(t *testing.T) {
	s := newTestStore(t)

	loc := "Berlin"
	created, err := s.CreateUser(&schema.UserCreate{
		FirstName: "Alice",
		LastName:  "Johnson",
		Nickname:  "alice042",
		Password:  "secret",
		Email:     "alice@example.com",
		Birthdate: schema.NewDate(1988, time.April, 12),
		Location:  &loc,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created user must have an id")
	}

	got, err := s.GetUser(created.ID, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Nickname != "alice042" || got.Email != "alice@example.com" {
		t.Errorf("get = %+v, want the created user back", got)
	}
	if got.Location == nil || *got.Location != "Berlin" {
		t.Errorf("Location = %v, want Berlin", got.Location)
	}
	if got.Birthdate.String() != "1988-04-12" {
		t.Errorf("Birthdate = %s, want 1988-04-12", got.Birthdate)
	}

	found, err := s.DeleteUser(created.ID)
	if err != nil || !found {
		t.Fatalf("delete = (%t, %v), want (true, nil)", found, err)
	}
	gone, err := s.GetUser(created.ID, false)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if gone != nil {
		t.Errorf("get after delete = %+v, want nil", gone)
	}
}

func TestGetUser_AbsentIsNilNotError(t *testing.T) {
	s := newTestStore(t)
	got, err := s.GetUser(9999, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("get = %+v, want nil for an absent id", got)
	}
}

func TestUpdateUser_PartialAndEmpty(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "bob")

	first := schema.Some("Robert")
	updated, err := s.UpdateUser(u.ID, &schema.UserUpdate{FirstName: first})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FirstName != "Robert" {
		t.Errorf("FirstName = %q, want Robert", updated.FirstName)
	}
	if updated.Nickname != "bob" {
		t.Errorf("Nickname = %q, untouched fields must survive", updated.Nickname)
	}

	// An empty field set is a no-op that still returns the entity.
	same, err := s.UpdateUser(u.ID, &schema.UserUpdate{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if same == nil || same.FirstName != "Robert" {
		t.Errorf("empty update = %+v, want unchanged entity", same)
	}
}

func TestUpdateUser_NullClearsOptionalColumn(t *testing.T) {
	s := newTestStore(t)
	loc := "Lisbon"
	created, err := s.CreateUser(&schema.UserCreate{
		FirstName: "Carla", LastName: "Mendes", Nickname: "carla287",
		Password: "pw", Email: "carla@example.com",
		Birthdate: schema.NewDate(1992, time.June, 25),
		Location:  &loc,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := s.UpdateUser(created.ID, &schema.UserUpdate{Location: schema.Null[string]()})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Location != nil {
		t.Errorf("Location = %v, want cleared to null", updated.Location)
	}
}

func TestUpdateUser_ResponseEmbedsPosts(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "prolific")
	p := mustCreatePost(t, s, u.ID, "kept around", nil)

	updated, err := s.UpdateUser(u.ID, &schema.UserUpdate{FirstName: schema.Some("Still")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Posts) != 1 || updated.Posts[0].ID != p.ID {
		t.Errorf("Posts = %+v, want the user's posts embedded in the update response", updated.Posts)
	}
}

func TestUpdateTag_ResponseEmbedsPosts(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "writer")
	tag := mustCreateTag(t, s, "attached")
	p := mustCreatePost(t, s, u.ID, "tagged", []uint{tag.ID})

	updated, err := s.UpdateTag(tag.ID, &schema.TagUpdate{Description: schema.Some("now described")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Posts) != 1 || updated.Posts[0].ID != p.ID {
		t.Errorf("Posts = %+v, want the tag's posts embedded in the update response", updated.Posts)
	}
}

func TestUpdateUser_NullOnRequiredColumnIsRejected(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "strict")

	// Required columns are NOT NULL; an explicit null must surface the
	// constraint violation instead of blanking the field.
	_, err := s.UpdateUser(u.ID, &schema.UserUpdate{Nickname: schema.Null[string]()})
	if err == nil {
		t.Fatal("null nickname must be rejected by the not-null constraint")
	}

	got, err := s.GetUser(u.ID, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Nickname != "strict" {
		t.Errorf("Nickname = %q, the failed update must roll back", got.Nickname)
	}
}

func TestUpdatePost_NullOnRequiredColumnIsRejected(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "writer")
	p := mustCreatePost(t, s, u.ID, "immutable title", nil)

	if _, err := s.UpdatePost(p.ID, &schema.PostUpdate{Title: schema.Null[string]()}); err == nil {
		t.Fatal("null title must be rejected by the not-null constraint")
	}

	got, err := s.GetPost(p.ID, false, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "immutable title" {
		t.Errorf("Title = %q, the failed update must roll back", got.Title)
	}
}

func TestUpdateUser_AbsentID(t *testing.T) {
	s := newTestStore(t)
	got, err := s.UpdateUser(9999, &schema.UserUpdate{FirstName: schema.Some("X")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got != nil {
		t.Errorf("update = %+v, want nil for an absent id", got)
	}
}

func TestDeleteUser_AbsentID(t *testing.T) {
	s := newTestStore(t)
	found, err := s.DeleteUser(9999)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if found {
		t.Error("delete of an absent id must report not found")
	}
}

func TestDeleteUser_CascadesToPosts(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "author")
	p := mustCreatePost(t, s, u.ID, "doomed", nil)

	if _, err := s.DeleteUser(u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	got, err := s.GetPost(p.ID, false, false)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got != nil {
		t.Errorf("post = %+v, want gone with its author", got)
	}
}

func TestSearchUsers_SubstringAnyField(t *testing.T) {
	s := newTestStore(t)
	mustCreateUser(t, s, "gopher_jane")
	mustCreateUser(t, s, "rustacean_joe")

	// Substring matching is case-insensitive and ORs across fields.
	got, err := s.SearchUsers(&schema.UserSearch{Nickname: "GOPHER", Limit: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Nickname != "gopher_jane" {
		t.Errorf("search = %+v, want only gopher_jane", got)
	}

	// A filter value matching a different field still hits via OR.
	byEmail, err := s.SearchUsers(&schema.UserSearch{Email: "rustacean_joe@", Limit: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].Nickname != "rustacean_joe" {
		t.Errorf("search = %+v, want only rustacean_joe", byEmail)
	}
}

func TestSearchUsers_NoFiltersReturnsAll(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 3; i++ {
		mustCreateUser(t, s, fmt.Sprintf("user%d", i))
	}
	got, err := s.SearchUsers(&schema.UserSearch{Limit: 100})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("search returned %d users, want 3", len(got))
	}
}

func TestSearchUsers_Pagination(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 5; i++ {
		mustCreateUser(t, s, fmt.Sprintf("page%d", i))
	}

	page, err := s.SearchUsers(&schema.UserSearch{Skip: 2, Limit: 2})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page has %d users, want 2", len(page))
	}
	// Ordering is by id, so pages are stable across calls.
	if page[0].Nickname != "page2" || page[1].Nickname != "page3" {
		t.Errorf("page = [%s %s], want [page2 page3]", page[0].Nickname, page[1].Nickname)
	}
}

func TestCreatePost_WithTagsAndAuthor(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "writer")
	t1 := mustCreateTag(t, s, "golang")
	t2 := mustCreateTag(t, s, "testing")

	p := mustCreatePost(t, s, u.ID, "hello", []uint{t1.ID, t2.ID})
	if p.Author == nil || p.Author.Nickname != "writer" {
		t.Errorf("Author = %+v, want the author embedded", p.Author)
	}
	if len(p.Tags) != 2 {
		t.Errorf("Tags = %+v, want both tags attached", p.Tags)
	}
	if !p.IsPublished {
		t.Error("omitted is_published must default to true")
	}
}

func TestCreatePost_AbsentAuthor(t *testing.T) {
	s := newTestStore(t)
	p, err := s.CreatePost(9999, &schema.PostCreate{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p != nil {
		t.Errorf("create = %+v, want nil for an absent author", p)
	}
}

func TestCreatePost_UnknownTagsPersistNothing(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "writer")
	known := mustCreateTag(t, s, "known")

	_, err := s.CreatePost(u.ID, &schema.PostCreate{
		Title:   "bad tags",
		Content: "c",
		TagIDs:  []uint{known.ID, 98, 99, 98},
	})
	var tagErr *TagsNotFoundError
	if !errors.As(err, &tagErr) {
		t.Fatalf("err = %v, want *TagsNotFoundError", err)
	}
	if len(tagErr.Missing) != 2 || tagErr.Missing[0] != 98 || tagErr.Missing[1] != 99 {
		t.Errorf("Missing = %v, want [98 99]", tagErr.Missing)
	}

	// The failed create must not have left a post behind.
	posts, err := s.SearchPosts(&schema.PostSearch{Title: "bad tags", Limit: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("posts = %+v, want none after the rolled-back create", posts)
	}
}

func TestUpdatePost_ReplacesTagSet(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "writer")
	t1 := mustCreateTag(t, s, "old")
	t2 := mustCreateTag(t, s, "new")
	p := mustCreatePost(t, s, u.ID, "retag", []uint{t1.ID})

	updated, err := s.UpdatePost(p.ID, &schema.PostUpdate{
		TagIDs: schema.Some([]uint{t2.ID}),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].Title != "new" {
		t.Errorf("Tags = %+v, want only the replacement tag", updated.Tags)
	}

	// Clearing with an empty list detaches everything.
	cleared, err := s.UpdatePost(p.ID, &schema.PostUpdate{
		TagIDs: schema.Some([]uint{}),
	})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(cleared.Tags) != 0 {
		t.Errorf("Tags = %+v, want none after clearing", cleared.Tags)
	}
}

func TestUpdatePost_UnknownTagKeepsOldState(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "writer")
	t1 := mustCreateTag(t, s, "keep")
	p := mustCreatePost(t, s, u.ID, "stable", []uint{t1.ID})

	_, err := s.UpdatePost(p.ID, &schema.PostUpdate{
		Title:  schema.Some("should not apply"),
		TagIDs: schema.Some([]uint{t1.ID, 404}),
	})
	var tagErr *TagsNotFoundError
	if !errors.As(err, &tagErr) {
		t.Fatalf("err = %v, want *TagsNotFoundError", err)
	}

	got, err := s.GetPost(p.ID, false, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "stable" {
		t.Errorf("Title = %q, the failed update must not apply fields", got.Title)
	}
	if len(got.Tags) != 1 || got.Tags[0].Title != "keep" {
		t.Errorf("Tags = %+v, the failed update must not touch tags", got.Tags)
	}
}

func TestSearchPosts_TitleOrContent(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "writer")
	mustCreatePost(t, s, u.ID, "Concurrency patterns", nil)
	p2, err := s.CreatePost(u.ID, &schema.PostCreate{
		Title:   "Weekly notes",
		Content: "mostly about concurrency again",
	})
	if err != nil || p2 == nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.SearchPosts(&schema.PostSearch{Title: "CONCURRENCY", Limit: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Concurrency patterns" {
		t.Errorf("search = %+v, want the title match only", got)
	}

	both, err := s.SearchPosts(&schema.PostSearch{
		Title:   "concurrency",
		Content: "concurrency",
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(both) != 2 {
		t.Errorf("search = %d posts, want 2 via the OR across fields", len(both))
	}
}

func TestDeleteTag_PostsSurvive(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "writer")
	tag := mustCreateTag(t, s, "ephemeral")
	p := mustCreatePost(t, s, u.ID, "outlives its tag", []uint{tag.ID})

	found, err := s.DeleteTag(tag.ID)
	if err != nil || !found {
		t.Fatalf("delete tag = (%t, %v), want (true, nil)", found, err)
	}

	got, err := s.GetPost(p.ID, false, true)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got == nil {
		t.Fatal("post must survive its tag's deletion")
	}
	if len(got.Tags) != 0 {
		t.Errorf("Tags = %+v, want the association dropped", got.Tags)
	}
}

func TestUpdateTag(t *testing.T) {
	s := newTestStore(t)
	tag := mustCreateTag(t, s, "draft-title")

	desc := schema.Some("now with a description")
	updated, err := s.UpdateTag(tag.ID, &schema.TagUpdate{Description: desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description == nil || *updated.Description != "now with a description" {
		t.Errorf("Description = %v, want the new value", updated.Description)
	}
	if updated.Title != "draft-title" {
		t.Errorf("Title = %q, untouched fields must survive", updated.Title)
	}
}

func TestGetAllTags(t *testing.T) {
	s := newTestStore(t)
	mustCreateTag(t, s, "one")
	mustCreateTag(t, s, "two")

	got, err := s.GetAllTags(false)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d tags, want 2", len(got))
	}
}

func TestReset_ReplaysSeedScript(t *testing.T) {
	s := newTestStore(t)
	mustCreateUser(t, s, "preexisting")

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	seeded, err := s.GetUser(1, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if seeded == nil || seeded.Nickname != "seed1" {
		t.Errorf("user 1 = %+v, want the seeded user", seeded)
	}

	all, err := s.SearchUsers(&schema.UserSearch{Limit: 100})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("reset left %d users, want only the seed", len(all))
	}

	// Sequences were advanced past the seeded ids.
	fresh := mustCreateUser(t, s, "after-reset")
	if fresh.ID <= 1 {
		t.Errorf("fresh id = %d, must not collide with seeded ids", fresh.ID)
	}
}
