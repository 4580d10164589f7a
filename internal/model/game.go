package model

// Game is read-mostly reference data describing a board game.
type Game struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameKor       string `json:"name_kor,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	YearPublished int    `json:"year_published,omitempty"`
	MinPlayers    int    `json:"min_players,omitempty"`
	MaxPlayers    int    `json:"max_players,omitempty"`
}

// GamePage is the paginated game listing payload
type GamePage struct {
	TotalPage   int     `json:"totalPage"`
	NowPage     int     `json:"nowPage"`
	NowPageSize int     `json:"nowPageSize"`
	Games       []*Game `json:"games"`
}
