package balldontlie

// Wire shapes for the balldontlie API. Field names are part of the upstream
// contract and must stay snake_case exactly as the API emits them.

type metaResponse struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	NextPage    int `json:"next_page"`
	PerPage     int `json:"per_page"`
	TotalCount  int `json:"total_count"`
}

type teamsResponse struct {
	Data []teamResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type teamResponse struct {
	ID           int64  `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type playersResponse struct {
	Data []playerResponse `json:"data"`
	Meta metaResponse     `json:"meta"`
}

type playerResponse struct {
	ID           int64        `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Position     string       `json:"position"`
	HeightFeet   *int         `json:"height_feet"`
	HeightInches *int         `json:"height_inches"`
	WeightPounds *int         `json:"weight_pounds"`
	Team         teamResponse `json:"team"`
}

type gamesResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type gameResponse struct {
	ID               int64        `json:"id"`
	Date             string       `json:"date"`
	Status           string       `json:"status"`
	Time             string       `json:"time"`
	Period           int          `json:"period"`
	Postseason       bool         `json:"postseason"`
	Season           int          `json:"season"`
	HomeTeam         teamResponse `json:"home_team"`
	VisitorTeam      teamResponse `json:"visitor_team"`
	HomeTeamScore    int          `json:"home_team_score"`
	VisitorTeamScore int          `json:"visitor_team_score"`
}

type statsResponse struct {
	Data []statResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type statResponse struct {
	ID       int64          `json:"id"`
	Min      string         `json:"min"`
	Pts      float64        `json:"pts"`
	Reb      float64        `json:"reb"`
	Ast      float64        `json:"ast"`
	Stl      float64        `json:"stl"`
	Blk      float64        `json:"blk"`
	Player   playerResponse `json:"player"`
	Game     gameResponse   `json:"game"`
}

type seasonAveragesResponse struct {
	Data []seasonAverageResponse `json:"data"`
}

type seasonAverageResponse struct {
	PlayerID    int64   `json:"player_id"`
	Season      int     `json:"season"`
	GamesPlayed int64   `json:"games_played"`
	Min         string  `json:"min"`
	Fgm         float64 `json:"fgm"`
	Fga         float64 `json:"fga"`
	Fg3m        float64 `json:"fg3m"`
	Fg3a        float64 `json:"fg3a"`
	Ftm         float64 `json:"ftm"`
	Fta         float64 `json:"fta"`
	Oreb        float64 `json:"oreb"`
	Dreb        float64 `json:"dreb"`
	Reb         float64 `json:"reb"`
	Ast         float64 `json:"ast"`
	Stl         float64 `json:"stl"`
	Blk         float64 `json:"blk"`
	Turnover    float64 `json:"turnover"`
	Pf          float64 `json:"pf"`
	Pts         float64 `json:"pts"`
	FgPct       float64 `json:"fg_pct"`
	Fg3Pct      float64 `json:"fg3_pct"`
	FtPct       float64 `json:"ft_pct"`
}
