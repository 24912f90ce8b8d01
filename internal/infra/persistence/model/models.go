package model

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&PostModel{},
		&CommentModel{},
	}
}
