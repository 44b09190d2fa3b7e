package schema

// UserFavoriteTable represents the 'users.favorite' table
//
// Legacy remote-document favorites variant: one row per identity email with
// the favorite set stored as a JSONB document, upserted with merge semantics
// (the favorites column is overwritten, nothing else on the row is touched).
type UserFavoriteTable struct {
	Table     string
	Email     string
	Favorites string
	UpdatedAt string
}

// UserFavorite is the schema definition for users.favorite
var UserFavorite = UserFavoriteTable{
	Table:     "users.favorite",
	Email:     "email",
	Favorites: "favorites",
	UpdatedAt: "updatedat",
}
