package gql

import (
	"fmt"

	"demo-api/internal/store"

	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema over the given store.
func NewSchema(svc store.API) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"includePosts": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := svc.GetUser(uint(p.Args["userId"].(int)), p.Args["includePosts"].(bool))
					if err != nil {
						return nil, err
					}
					if user == nil {
						return nil, nil
					}
					return user, nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(userType)),
				Args: graphql.FieldConfigArgument{
					"searchParams": &graphql.ArgumentConfig{Type: userSearchInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m, _ := p.Args["searchParams"].(map[string]any)
					if m == nil {
						m = map[string]any{}
					}
					return svc.SearchUsers(userSearchFromArgs(m))
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"postId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"includeAuthor": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
					"includeTags":   &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := svc.GetPost(
						uint(p.Args["postId"].(int)),
						p.Args["includeAuthor"].(bool),
						p.Args["includeTags"].(bool),
					)
					if err != nil {
						return nil, err
					}
					if post == nil {
						return nil, nil
					}
					return post, nil
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(postType)),
				Args: graphql.FieldConfigArgument{
					"searchParams": &graphql.ArgumentConfig{Type: postSearchInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m, _ := p.Args["searchParams"].(map[string]any)
					if m == nil {
						m = map[string]any{}
					}
					return svc.SearchPosts(postSearchFromArgs(m))
				},
			},
			"tag": &graphql.Field{
				Type: tagType,
				Args: graphql.FieldConfigArgument{
					"tagId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"includePosts": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tag, err := svc.GetTag(uint(p.Args["tagId"].(int)), p.Args["includePosts"].(bool))
					if err != nil {
						return nil, err
					}
					if tag == nil {
						return nil, nil
					}
					return tag, nil
				},
			},
			"tags": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(tagType)),
				Args: graphql.FieldConfigArgument{
					"includePosts": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.GetAllTags(p.Args["includePosts"].(bool))
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"userData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userCreateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					data := userCreateFromArgs(p.Args["userData"].(map[string]any))
					if err := data.Validate(); err != nil {
						return nil, err
					}
					return svc.CreateUser(data)
				},
			},
			"updateUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"userData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userUpdateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					data := userUpdateFromArgs(p.Args["userData"].(map[string]any))
					user, err := svc.UpdateUser(uint(p.Args["userId"].(int)), data)
					if err != nil {
						return nil, err
					}
					if user == nil {
						return nil, nil
					}
					return user, nil
				},
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.DeleteUser(uint(p.Args["userId"].(int)))
				},
			},
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"postData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(postCreateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					authorID := p.Args["authorId"].(int)
					data := postCreateFromArgs(p.Args["postData"].(map[string]any))
					if err := data.Validate(); err != nil {
						return nil, err
					}
					post, err := svc.CreatePost(uint(authorID), data)
					if err != nil {
						return nil, err
					}
					if post == nil {
						return nil, fmt.Errorf("author with id %d not found", authorID)
					}
					return post, nil
				},
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"postId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"postData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(postUpdateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					data := postUpdateFromArgs(p.Args["postData"].(map[string]any))
					post, err := svc.UpdatePost(uint(p.Args["postId"].(int)), data)
					if err != nil {
						return nil, err
					}
					if post == nil {
						return nil, nil
					}
					return post, nil
				},
			},
			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.DeletePost(uint(p.Args["postId"].(int)))
				},
			},
			"resetDatabase": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := svc.Reset(); err != nil {
						return false, err
					}
					return true, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
