package model

// Favorite joins a user to a game. A user may favorite a game at most
// once; the store's unique index on (user, game) is the final authority.
type Favorite struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	GameID string `json:"game_id"`
}

// FavoriteGame is the listing view of a favorited game
type FavoriteGame struct {
	GameID    string `json:"game_id"`
	Thumbnail string `json:"thumbnail,omitempty"`
	GameName  string `json:"game_name"`
	NameKor   string `json:"game_name_kor,omitempty"`
}

// FavoritePage is the paginated favorites payload
type FavoritePage struct {
	TotalPage int             `json:"totalPage"`
	NowPage   int             `json:"nowPage"`
	List      []*FavoriteGame `json:"list"`
}

// AddFavoriteRequest marks a game as a favorite
type AddFavoriteRequest struct {
	GameID string `json:"game_id"`
}
