// Package gql is the GraphQL adapter: one query/mutation per store
// operation, mirroring the REST surface. Types embed minimal variants
// of their relations to stop recursive expansion.
package gql

import (
	"time"

	"demo-api/internal/schema"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

const dateLayout = "2006-01-02"

// dateType carries calendar dates as YYYY-MM-DD strings.
var dateType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "Calendar date in YYYY-MM-DD form.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case schema.Date:
			return v.String()
		case *schema.Date:
			return v.String()
		case time.Time:
			return v.Format(dateLayout)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil
		}
		return schema.Date{Time: t}
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		sv, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		t, err := time.Parse(dateLayout, sv.Value)
		if err != nil {
			return nil
		}
		return schema.Date{Time: t}
	},
})

var userMinimalType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "UserMinimal",
	Description: "Minimal user data for post author reference.",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"nickname":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var postMinimalType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "PostMinimal",
	Description: "Minimal post data for user's and tag's post references.",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"authorId":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"content":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"isPublished": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var tagMinimalType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "TagMinimal",
	Description: "Minimal tag data for post's tag references.",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"nickname":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"birthdate": &graphql.Field{Type: graphql.NewNonNull(dateType)},
		"location":  &graphql.Field{Type: graphql.String},
		"gender":    &graphql.Field{Type: graphql.String},
		"jobTitle":  &graphql.Field{Type: graphql.String},
		"phone":     &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"posts":     &graphql.Field{Type: graphql.NewList(postMinimalType)},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Post",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"authorId":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"content":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"isPublished": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"rating":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"views":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"author":      &graphql.Field{Type: userMinimalType},
		"tags":        &graphql.Field{Type: graphql.NewList(tagMinimalType)},
	},
})

var tagType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Tag",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"posts":       &graphql.Field{Type: graphql.NewList(postMinimalType)},
	},
})

var userCreateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserCreateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"nickname":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"birthdate": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(dateType)},
		"location":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"gender":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"jobTitle":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var userUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"nickname":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"password":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"birthdate": &graphql.InputObjectFieldConfig{Type: dateType},
		"location":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"gender":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"jobTitle":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var userSearchInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserSearchInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nickname":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"location":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"jobTitle":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"includePosts": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"skip":         &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"limit":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var postCreateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostCreateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"content":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"isPublished": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"tagIds":      &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.Int)},
	},
})

var postUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"isPublished": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"tagIds":      &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.Int)},
	},
})

var postSearchInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostSearchInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"includeAuthor": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"includeTags":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"skip":          &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"limit":         &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})
