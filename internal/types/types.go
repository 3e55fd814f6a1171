package types

import "time"

// Match status values as the backend stores them.
const (
	StatusUpcoming  = "Upcoming"
	StatusLive      = "Live"
	StatusCompleted = "Completed"
	StatusScheduled = "Scheduled"
	StatusPostponed = "Postponed"
)

type Tournament struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Sport        string `json:"sport"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type Pool struct {
	ID             string `json:"id"`
	TournamentID   string `json:"tournamentId"`
	TournamentName string `json:"tournamentName,omitempty"`
	Name           string `json:"name"`
}

type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	TournamentID string `json:"tournamentId"`
	Sport        string `json:"sport"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	PoolID       string `json:"poolId,omitempty"` // empty means "general", no pool
}

type MatchTeam struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score string `json:"score,omitempty"`
}

type Match struct {
	ID             string    `json:"id"`
	TournamentID   string    `json:"tournamentId"`
	TournamentName string    `json:"tournamentName"`
	Sport          string    `json:"sport"`
	CategoryID     string    `json:"categoryId"`
	CategoryName   string    `json:"categoryName"`
	PoolID         string    `json:"poolId,omitempty"`
	TeamA          MatchTeam `json:"teamA"`
	TeamB          MatchTeam `json:"teamB"`
	Date           string    `json:"date"` // ISO date string
	Time           string    `json:"time"` // HH:MM
	Venue          string    `json:"venue"`
	Status         string    `json:"status"`
	MatchNumber    string    `json:"matchNumber,omitempty"` // free-form, e.g. "QF1"
}

type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TeamID       string `json:"teamId"`
	FatherName   string `json:"fatherName"`
	JerseyNumber int    `json:"jerseyNumber"`
	Image        string `json:"image,omitempty"` // inline data: payload or URL
}

// Standing rows are recomputed server-side from completed matches and are
// never written directly by the client.
type Standing struct {
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Category       string `json:"category"`
	PoolID         string `json:"poolId,omitempty"`
	LastUpdated    string `json:"lastUpdated,omitempty"`
}

type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

type Comment struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type Admin struct {
	AdminID            string `json:"adminId"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	MustChangePassword bool   `json:"mustChangePassword"`
	CreatedAt          string `json:"createdAt"`
}

type Rules struct {
	General    []string `json:"general"`
	Football   []string `json:"football"`
	Volleyball []string `json:"volleyball"`
}

// Snapshot is the full set of backend collections. The console replaces it
// wholesale after every reload; nothing ever patches it in place.
type Snapshot struct {
	Tournaments []Tournament `json:"tournaments"`
	Pools       []Pool       `json:"pools"`
	Teams       []Team       `json:"teams"`
	Matches     []Match      `json:"matches"`
	Players     []Player     `json:"players"`
	Standings   []Standing   `json:"standings"`
	Blogs       []BlogPost   `json:"blogs"`
	Admins      []Admin      `json:"admins"`
	Rules       Rules        `json:"rules"`
	LoadedAt    time.Time    `json:"loadedAt"`
}
