package sheets

// Wire DTOs for the backend's response vocabulary, which deliberately
// differs from the domain model (wins/losses vs won/lost, matchDate vs
// date). Scalar fields use the cell types because the sheet is loose about
// them: an id column can come back numeric.

type sheetPool struct {
	PoolID   cell `json:"poolId"`
	PoolName cell `json:"poolName"`
}

type poolsResp struct {
	Success bool        `json:"success"`
	Pools   []sheetPool `json:"pools"`
}

type sheetTeam struct {
	TeamID       cell `json:"teamId"`
	TeamName     cell `json:"teamName"`
	TournamentID cell `json:"tournamentId"`
	Sport        cell `json:"sport"`
	CategoryID   cell `json:"categoryId"`
	CategoryName cell `json:"categoryName"`
	PoolID       cell `json:"poolId"`
}

type teamsResp struct {
	Success bool        `json:"success"`
	Teams   []sheetTeam `json:"teams"`
}

type sheetTournament struct {
	TournamentID   cell `json:"tournamentId"`
	TournamentName cell `json:"tournamentName"`
	Sport          cell `json:"sport"`
	CategoryID     cell `json:"categoryId"`
	CategoryName   cell `json:"categoryName"`
}

type tournamentsResp struct {
	Success     bool              `json:"success"`
	Tournaments []sheetTournament `json:"tournaments"`
}

type sheetMatchSide struct {
	ID    cell `json:"id"`
	Name  cell `json:"name"`
	Score cell `json:"score"`
}

type sheetMatch struct {
	MatchID        cell           `json:"matchId"`
	TournamentID   cell           `json:"tournamentId"`
	TournamentName cell           `json:"tournamentName"`
	Sport          cell           `json:"sport"`
	CategoryID     cell           `json:"categoryId"`
	CategoryName   cell           `json:"categoryName"`
	PoolID         cell           `json:"poolId"`
	TeamA          sheetMatchSide `json:"teamA"`
	TeamB          sheetMatchSide `json:"teamB"`
	MatchDate      cell           `json:"matchDate"`
	MatchTime      cell           `json:"matchTime"`
	Venue          cell           `json:"venue"`
	Status         cell           `json:"status"`
	MatchNumber    cell           `json:"matchNumber"`
}

type matchesResp struct {
	Success bool         `json:"success"`
	Matches []sheetMatch `json:"matches"`
}

type sheetPlayer struct {
	PlayerID   cell `json:"playerId"`
	PlayerName cell `json:"playerName"`
	TeamID     cell `json:"teamId"`
	FatherName cell `json:"fatherName"`
	JerseyNo   cell `json:"jerseyNo"`
	PhotoURL   cell `json:"photoUrl"`
}

type playersResp struct {
	Success bool          `json:"success"`
	Players []sheetPlayer `json:"players"`
}

type sheetStanding struct {
	TeamID         cell `json:"teamId"`
	TeamName       cell `json:"teamName"`
	Played         cell `json:"played"`
	Wins           cell `json:"wins"`
	Draws          cell `json:"draws"`
	Losses         cell `json:"losses"`
	GoalsFor       cell `json:"goalsFor"`
	GoalsAgainst   cell `json:"goalsAgainst"`
	GoalDifference cell `json:"goalDifference"`
	Points         cell `json:"points"`
	CategoryName   cell `json:"categoryName"`
	PoolID         cell `json:"poolId"`
	LastUpdated    cell `json:"lastUpdated"`
}

type standingsResp struct {
	Success   bool            `json:"success"`
	Standings []sheetStanding `json:"standings"`
}

type sheetBlog struct {
	PostID        cell `json:"postId"`
	Title         cell `json:"title"`
	Content       cell `json:"content"`
	CoverImageURL cell `json:"coverImageUrl"`
	CreatedBy     cell `json:"createdBy"`
	CreatedAt     cell `json:"createdAt"`
}

type blogsResp struct {
	Success bool        `json:"success"`
	Blogs   []sheetBlog `json:"blogs"`
}

type sheetComment struct {
	CommentID cell `json:"commentId"`
	Name      cell `json:"name"`
	Comment   cell `json:"comment"`
	CreatedAt cell `json:"createdAt"`
}

type commentsResp struct {
	Success  bool           `json:"success"`
	Comments []sheetComment `json:"comments"`
}

type rulesResp struct {
	Success    bool     `json:"success"`
	General    []string `json:"general"`
	Football   []string `json:"football"`
	Volleyball []string `json:"volleyball"`
}

type sheetAdmin struct {
	AdminID            cell `json:"adminId"`
	Name               cell `json:"name"`
	Email              cell `json:"email"`
	MustChangePassword bool `json:"mustChangePassword"`
	CreatedAt          cell `json:"createdAt"`
}

type adminsResp struct {
	Success bool         `json:"success"`
	Admins  []sheetAdmin `json:"admins"`
}

type authResp struct {
	Success            bool   `json:"success"`
	Name               string `json:"name"`
	MustChangePassword bool   `json:"mustChangePassword"`
	Message            string `json:"message"`
}
