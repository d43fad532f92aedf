package gql

import "demo-api/internal/schema"

// Argument maps distinguish absent keys from explicit nulls, which is
// exactly what the Optional update fields need.

func getStr(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getInt(m map[string]any, key string, def int) int {
	if v, ok := m[key].(int); ok {
		return v
	}
	return def
}

func getBool(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func getDate(m map[string]any, key string) schema.Date {
	if v, ok := m[key].(schema.Date); ok {
		return v
	}
	return schema.Date{}
}

func ptrStr(m map[string]any, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func optStr(m map[string]any, key string) schema.Optional[string] {
	v, ok := m[key]
	if !ok {
		return schema.Optional[string]{}
	}
	if v == nil {
		return schema.Null[string]()
	}
	s, _ := v.(string)
	return schema.Some(s)
}

func optBool(m map[string]any, key string) schema.Optional[bool] {
	v, ok := m[key]
	if !ok {
		return schema.Optional[bool]{}
	}
	if v == nil {
		return schema.Null[bool]()
	}
	b, _ := v.(bool)
	return schema.Some(b)
}

func optDate(m map[string]any, key string) schema.Optional[schema.Date] {
	v, ok := m[key]
	if !ok {
		return schema.Optional[schema.Date]{}
	}
	if v == nil {
		return schema.Null[schema.Date]()
	}
	d, _ := v.(schema.Date)
	return schema.Some(d)
}

func idList(v any) []uint {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if n, ok := item.(int); ok && n >= 0 {
			ids = append(ids, uint(n))
		}
	}
	return ids
}

func optIDList(m map[string]any, key string) schema.Optional[[]uint] {
	v, ok := m[key]
	if !ok {
		return schema.Optional[[]uint]{}
	}
	if v == nil {
		return schema.Null[[]uint]()
	}
	return schema.Some(idList(v))
}

func userCreateFromArgs(m map[string]any) *schema.UserCreate {
	return &schema.UserCreate{
		FirstName: getStr(m, "firstName"),
		LastName:  getStr(m, "lastName"),
		Nickname:  getStr(m, "nickname"),
		Password:  getStr(m, "password"),
		Email:     getStr(m, "email"),
		Birthdate: getDate(m, "birthdate"),
		Location:  ptrStr(m, "location"),
		Gender:    ptrStr(m, "gender"),
		JobTitle:  ptrStr(m, "jobTitle"),
		Phone:     ptrStr(m, "phone"),
	}
}

func userUpdateFromArgs(m map[string]any) *schema.UserUpdate {
	return &schema.UserUpdate{
		FirstName: optStr(m, "firstName"),
		LastName:  optStr(m, "lastName"),
		Nickname:  optStr(m, "nickname"),
		Password:  optStr(m, "password"),
		Email:     optStr(m, "email"),
		Birthdate: optDate(m, "birthdate"),
		Location:  optStr(m, "location"),
		Gender:    optStr(m, "gender"),
		JobTitle:  optStr(m, "jobTitle"),
		Phone:     optStr(m, "phone"),
	}
}

func userSearchFromArgs(m map[string]any) *schema.UserSearch {
	return &schema.UserSearch{
		Nickname:     getStr(m, "nickname"),
		Email:        getStr(m, "email"),
		Location:     getStr(m, "location"),
		JobTitle:     getStr(m, "jobTitle"),
		IncludePosts: getBool(m, "includePosts", false),
		Skip:         getInt(m, "skip", 0),
		Limit:        getInt(m, "limit", 100),
	}
}

func postCreateFromArgs(m map[string]any) *schema.PostCreate {
	c := &schema.PostCreate{
		Title:   getStr(m, "title"),
		Content: getStr(m, "content"),
	}
	if v, ok := m["isPublished"].(bool); ok {
		c.IsPublished = &v
	}
	if v, ok := m["tagIds"]; ok && v != nil {
		c.TagIDs = idList(v)
	}
	return c
}

func postUpdateFromArgs(m map[string]any) *schema.PostUpdate {
	return &schema.PostUpdate{
		Title:       optStr(m, "title"),
		Content:     optStr(m, "content"),
		IsPublished: optBool(m, "isPublished"),
		TagIDs:      optIDList(m, "tagIds"),
	}
}

func postSearchFromArgs(m map[string]any) *schema.PostSearch {
	return &schema.PostSearch{
		Title:         getStr(m, "title"),
		Content:       getStr(m, "content"),
		IncludeAuthor: getBool(m, "includeAuthor", true),
		IncludeTags:   getBool(m, "includeTags", false),
		Skip:          getInt(m, "skip", 0),
		Limit:         getInt(m, "limit", 100),
	}
}
