package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"demo-api/internal/schema"
	"demo-api/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const userDataSchema = `{
  "type": "object",
  "properties": {
    "user_data": {
      "type": "object",
      "properties": {
        "first_name": {"type": "string"},
        "last_name": {"type": "string"},
        "nickname": {"type": "string"},
        "password": {"type": "string"},
        "email": {"type": "string"},
        "birthdate": {"type": "string", "description": "YYYY-MM-DD"},
        "location": {"type": ["string", "null"]},
        "gender": {"type": ["string", "null"]},
        "job_title": {"type": ["string", "null"]},
        "phone": {"type": ["string", "null"]}
      }
    }
  },
  "required": ["user_data"]
}`

const userUpdateSchema = `{
  "type": "object",
  "properties": {
    "user_id": {"type": "integer"},
    "user_data": {
      "type": "object",
      "properties": {
        "first_name": {"type": "string"},
        "last_name": {"type": "string"},
        "nickname": {"type": "string"},
        "password": {"type": "string"},
        "email": {"type": "string"},
        "birthdate": {"type": "string", "description": "YYYY-MM-DD"},
        "location": {"type": ["string", "null"]},
        "gender": {"type": ["string", "null"]},
        "job_title": {"type": ["string", "null"]},
        "phone": {"type": ["string", "null"]}
      }
    }
  },
  "required": ["user_id", "user_data"]
}`

const userSearchSchema = `{
  "type": "object",
  "properties": {
    "search_params": {
      "type": "object",
      "properties": {
        "nickname": {"type": "string"},
        "email": {"type": "string"},
        "location": {"type": "string"},
        "job_title": {"type": "string"},
        "include_posts": {"type": "boolean", "default": false},
        "skip": {"type": "integer", "default": 0},
        "limit": {"type": "integer", "default": 100}
      }
    }
  }
}`

const postDataSchema = `{
  "type": "object",
  "properties": {
    "author_id": {"type": "integer"},
    "post_data": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "content": {"type": "string"},
        "is_published": {"type": "boolean", "default": true},
        "tag_ids": {"type": "array", "items": {"type": "integer"}}
      }
    }
  },
  "required": ["author_id", "post_data"]
}`

const postUpdateSchema = `{
  "type": "object",
  "properties": {
    "post_id": {"type": "integer"},
    "post_data": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "content": {"type": "string"},
        "is_published": {"type": "boolean"},
        "tag_ids": {
          "type": "array",
          "items": {"type": "integer"},
          "description": "Fully replaces the post's tag set when present"
        }
      }
    }
  },
  "required": ["post_id", "post_data"]
}`

const postSearchSchema = `{
  "type": "object",
  "properties": {
    "search_params": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "content": {"type": "string"},
        "include_author": {"type": "boolean", "default": true},
        "include_tags": {"type": "boolean", "default": false},
        "skip": {"type": "integer", "default": 0},
        "limit": {"type": "integer", "default": 100}
      }
    }
  }
}`

func idSchema(key, desc string, extra string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
  "type": "object",
  "properties": {"%s": {"type": "integer", "description": "%s"}%s},
  "required": ["%s"]
}`, key, desc, extra, key))
}

func registerTools(s *server.MCPServer, svc store.API) {
	s.AddTool(
		mcp.NewToolWithRawSchema("reset_database",
			"Reset the database to its initial state with dummy data.",
			json.RawMessage(`{"type": "object", "properties": {}}`)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if err := svc.Reset(); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText("Database reset successfully"), nil
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("create_user",
			"Create a new user with the provided data.",
			json.RawMessage(userDataSchema)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			data, err := decodeArg[schema.UserCreate](req.GetArguments(), "user_data")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := data.Validate(); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			user, err := svc.CreateUser(data)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to create user: %v", err)), nil
			}
			return jsonResult(user)
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("get_user",
			"Get user by ID with optional posts data.",
			idSchema("user_id", "ID of the user to retrieve",
				`, "include_posts": {"type": "boolean", "default": true}`)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()
			id, err := argID(args, "user_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			user, err := svc.GetUser(id, argBool(args, "include_posts", true))
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if user == nil {
				return mcp.NewToolResultError(fmt.Sprintf("user with id %d not found", id)), nil
			}
			return jsonResult(user)
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("update_user",
			"Update existing user with provided data.",
			json.RawMessage(userUpdateSchema)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()
			id, err := argID(args, "user_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			data, err := decodeArg[schema.UserUpdate](args, "user_data")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			user, err := svc.UpdateUser(id, data)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to update user: %v", err)), nil
			}
			if user == nil {
				return mcp.NewToolResultError(fmt.Sprintf("user with id %d not found", id)), nil
			}
			return jsonResult(user)
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("delete_user",
			"Delete user by ID.",
			idSchema("user_id", "ID of the user to delete", "")),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			id, err := argID(req.GetArguments(), "user_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			found, err := svc.DeleteUser(id)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if !found {
				return mcp.NewToolResultError(fmt.Sprintf("user with id %d not found", id)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("User %d deleted successfully", id)), nil
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("search_users",
			"Search users with optional filters and pagination.",
			json.RawMessage(userSearchSchema)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			params := &schema.UserSearch{}
			if raw, ok := req.GetArguments()["search_params"]; ok && raw != nil {
				decoded, err := decodeArg[schema.UserSearch](req.GetArguments(), "search_params")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				params = decoded
			}
			users, err := svc.SearchUsers(params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return jsonResult(users)
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("create_post",
			"Create a new post for the specified author.",
			json.RawMessage(postDataSchema)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()
			authorID, err := argID(args, "author_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			data, err := decodeArg[schema.PostCreate](args, "post_data")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := data.Validate(); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			post, err := svc.CreatePost(authorID, data)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if post == nil {
				return mcp.NewToolResultError(fmt.Sprintf("author with id %d not found", authorID)), nil
			}
			return jsonResult(post)
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("get_post",
			"Get post by ID with optional author and tag data.",
			idSchema("post_id", "ID of the post to retrieve",
				`, "include_author": {"type": "boolean", "default": true}, "include_tags": {"type": "boolean", "default": true}`)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()
			id, err := argID(args, "post_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			post, err := svc.GetPost(id,
				argBool(args, "include_author", true),
				argBool(args, "include_tags", true),
			)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if post == nil {
				return mcp.NewToolResultError(fmt.Sprintf("post with id %d not found", id)), nil
			}
			return jsonResult(post)
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("update_post",
			"Update existing post with provided data.",
			json.RawMessage(postUpdateSchema)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()
			id, err := argID(args, "post_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			data, err := decodeArg[schema.PostUpdate](args, "post_data")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			post, err := svc.UpdatePost(id, data)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if post == nil {
				return mcp.NewToolResultError(fmt.Sprintf("post with id %d not found", id)), nil
			}
			return jsonResult(post)
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("delete_post",
			"Delete post by ID.",
			idSchema("post_id", "ID of the post to delete", "")),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			id, err := argID(req.GetArguments(), "post_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			found, err := svc.DeletePost(id)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if !found {
				return mcp.NewToolResultError(fmt.Sprintf("post with id %d not found", id)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Post %d deleted successfully", id)), nil
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("search_posts",
			"Search posts with optional filters and pagination.",
			json.RawMessage(postSearchSchema)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			params := &schema.PostSearch{IncludeAuthor: true}
			if raw, ok := req.GetArguments()["search_params"].(map[string]any); ok {
				decoded, err := decodeArg[schema.PostSearch](req.GetArguments(), "search_params")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				params = decoded
				if _, present := raw["include_author"]; !present {
					params.IncludeAuthor = true
				}
			}
			posts, err := svc.SearchPosts(params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return jsonResult(posts)
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("get_tag",
			"Get tag by ID with optional posts data.",
			idSchema("tag_id", "ID of the tag to retrieve",
				`, "include_posts": {"type": "boolean", "default": true}`)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()
			id, err := argID(args, "tag_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			tag, err := svc.GetTag(id, argBool(args, "include_posts", true))
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if tag == nil {
				return mcp.NewToolResultError(fmt.Sprintf("tag with id %d not found", id)), nil
			}
			return jsonResult(tag)
		})

	s.AddTool(
		mcp.NewToolWithRawSchema("get_all_tags",
			"Get all tags from the database.",
			json.RawMessage(`{
  "type": "object",
  "properties": {"include_posts": {"type": "boolean", "default": false}}
}`)),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			tags, err := svc.GetAllTags(argBool(req.GetArguments(), "include_posts", false))
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return jsonResult(tags)
		})
}
