// Command seedgen regenerates SQL/dummy_data.sql with random demo data.
// The script is replayed statement by statement on every database reset,
// so each generated statement must be self-contained and free of inner
// semicolons.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	userCount = 10
	tagCount  = 8
	postCount = 20
)

var genders = []string{"male", "female", "other"}

// lit quotes a string for a SQL literal. Semicolons are stripped
// because the reset loader splits the script on them.
func lit(s string) string {
	s = strings.ReplaceAll(s, ";", ",")
	s = strings.ReplaceAll(s, "'", "''")
	return "'" + s + "'"
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	var b strings.Builder
	b.WriteString("-- Generated demo data. Regenerate with: go run ./cmd/seedgen\n\n")

	writeUsers(&b)
	writeTags(&b)
	writePosts(&b)

	// Creates after a reset must not collide with the seeded ids.
	b.WriteString("SELECT setval('users_id_seq', (SELECT MAX(id) FROM users));\n")
	b.WriteString("SELECT setval('tags_id_seq', (SELECT MAX(id) FROM tags));\n")
	b.WriteString("SELECT setval('posts_id_seq', (SELECT MAX(id) FROM posts));\n")

	out := filepath.Join("SQL", "dummy_data.sql")
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}
	log.Printf("wrote %s (%d users, %d tags, %d posts)", out, userCount, tagCount, postCount)
}

func writeUsers(b *strings.Builder) {
	for id := 1; id <= userCount; id++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		birth := gofakeit.DateRange(
			time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
		).Format("2006-01-02")
		fmt.Fprintf(b,
			"INSERT INTO users (id, first_name, last_name, nickname, password, email, birthdate, location, gender, job_title, phone, created_at) VALUES (%d, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, NOW());\n",
			id,
			lit(first),
			lit(last),
			lit(strings.ToLower(first)+fmt.Sprint(gofakeit.Number(10, 999))),
			lit("password"+fmt.Sprint(id)),
			lit(fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), id)),
			lit(birth),
			lit(gofakeit.City()),
			lit(gofakeit.RandomString(genders)),
			lit(gofakeit.JobTitle()),
			lit(gofakeit.Phone()),
		)
	}
	b.WriteString("\n")
}

func writeTags(b *strings.Builder) {
	seen := map[string]bool{}
	id := 1
	for id <= tagCount {
		title := strings.ToLower(gofakeit.BuzzWord())
		if seen[title] {
			continue
		}
		seen[title] = true
		fmt.Fprintf(b,
			"INSERT INTO tags (id, title, description, created_at) VALUES (%d, %s, %s, NOW());\n",
			id, lit(title), lit(gofakeit.Sentence(6)))
		id++
	}
	b.WriteString("\n")
}

func writePosts(b *strings.Builder) {
	for id := 1; id <= postCount; id++ {
		fmt.Fprintf(b,
			"INSERT INTO posts (id, title, content, author_id, rating, views, is_published, created_at, updated_at) VALUES (%d, %s, %s, %d, %d, %d, %t, NOW(), NOW());\n",
			id,
			lit(gofakeit.Sentence(4)),
			lit(gofakeit.Paragraph(1, 3, 8, " ")),
			gofakeit.Number(1, userCount),
			gofakeit.Number(0, 100),
			gofakeit.Number(0, 5000),
			gofakeit.Bool(),
		)
	}
	b.WriteString("\n")
	for id := 1; id <= postCount; id++ {
		for _, tagID := range pickTags() {
			fmt.Fprintf(b,
				"INSERT INTO posts_tags (post_id, tag_id, created_at) VALUES (%d, %d, NOW());\n",
				id, tagID)
		}
	}
	b.WriteString("\n")
}

// pickTags returns up to three distinct tag ids, possibly none.
func pickTags() []uint {
	n := gofakeit.Number(0, 3)
	picked := map[uint]bool{}
	for len(picked) < n {
		picked[uint(gofakeit.Number(1, tagCount))] = true
	}
	out := make([]uint, 0, len(picked))
	for id := range picked {
		out = append(out, id)
	}
	return out
}
