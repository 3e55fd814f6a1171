// Package seed holds the bundled fallback datasets. When the backend is
// unreachable or returns a malformed collection, the console serves these so
// the UI is never entirely blank.
package seed

import "github.com/opencourt/tourney-admin/internal/types"

var teams = []types.Team{
	{ID: "tm_01", Name: "Red Hawks", Category: "Football A", TournamentID: "tr_01", Sport: "Football", CategoryID: "cat_1", CategoryName: "Football A", PoolID: "po_01"},
	{ID: "tm_02", Name: "Blue Strikers", Category: "Football A", TournamentID: "tr_01", Sport: "Football", CategoryID: "cat_1", CategoryName: "Football A", PoolID: "po_01"},
	{ID: "tm_03", Name: "Green Rovers", Category: "Football B", TournamentID: "tr_01", Sport: "Football", CategoryID: "cat_2", CategoryName: "Football B", PoolID: "po_02"},
	{ID: "tm_04", Name: "Golden Eagles", Category: "Football B", TournamentID: "tr_01", Sport: "Football", CategoryID: "cat_2", CategoryName: "Football B", PoolID: "po_02"},
	{ID: "tm_05", Name: "Net Masters", Category: "Volleyball Men", TournamentID: "tr_02", Sport: "Volleyball", CategoryID: "cat_3", CategoryName: "Volleyball Men"},
	{ID: "tm_06", Name: "Spike Queens", Category: "Volleyball Women", TournamentID: "tr_02", Sport: "Volleyball", CategoryID: "cat_4", CategoryName: "Volleyball Women"},
}

var matches = []types.Match{
	{
		ID: "match_01", TournamentID: "tr_01", TournamentName: "Premier Cup", Sport: "Football",
		CategoryID: "cat_1", CategoryName: "Football A", PoolID: "po_01",
		TeamA: types.MatchTeam{ID: "tm_01", Name: "Red Hawks", Score: "2"},
		TeamB: types.MatchTeam{ID: "tm_02", Name: "Blue Strikers", Score: "1"},
		Date:  "2025-01-18", Time: "16:00", Venue: "Main Ground", Status: types.StatusCompleted, MatchNumber: "1",
	},
	{
		ID: "match_02", TournamentID: "tr_01", TournamentName: "Premier Cup", Sport: "Football",
		CategoryID: "cat_2", CategoryName: "Football B", PoolID: "po_02",
		TeamA: types.MatchTeam{ID: "tm_03", Name: "Green Rovers"},
		TeamB: types.MatchTeam{ID: "tm_04", Name: "Golden Eagles"},
		Date:  "2025-01-25", Time: "10:30", Venue: "Main Ground", Status: types.StatusUpcoming, MatchNumber: "2",
	},
	{
		ID: "match_03", TournamentID: "tr_02", TournamentName: "Spring Smash", Sport: "Volleyball",
		CategoryID: "cat_3", CategoryName: "Volleyball Men",
		TeamA: types.MatchTeam{ID: "tm_05", Name: "Net Masters"},
		TeamB: types.MatchTeam{ID: "tm_06", Name: "Spike Queens"},
		Date:  "2025-02-01", Time: "18:00", Venue: "Indoor Court 1", Status: types.StatusScheduled, MatchNumber: "QF1",
	},
}

var players = []types.Player{
	{ID: "pl_01", Name: "Arun Kumar", TeamID: "tm_01", FatherName: "Suresh Kumar", JerseyNumber: 7},
	{ID: "pl_02", Name: "Vikram Singh", TeamID: "tm_01", FatherName: "Ranjit Singh", JerseyNumber: 10},
	{ID: "pl_03", Name: "Daniel Mathew", TeamID: "tm_02", FatherName: "George Mathew", JerseyNumber: 9},
	{ID: "pl_04", Name: "Imran Sheikh", TeamID: "tm_03", FatherName: "Akbar Sheikh", JerseyNumber: 4},
}

var standings = []types.Standing{
	{TeamID: "tm_01", TeamName: "Red Hawks", Played: 1, Won: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1, Points: 3, Category: "Football A", PoolID: "po_01"},
	{TeamID: "tm_02", TeamName: "Blue Strikers", Played: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1, Category: "Football A", PoolID: "po_01"},
	{TeamID: "tm_03", TeamName: "Green Rovers", Category: "Football B", PoolID: "po_02"},
	{TeamID: "tm_04", TeamName: "Golden Eagles", Category: "Football B", PoolID: "po_02"},
}

var blogs = []types.BlogPost{
	{
		ID:      "blog_01",
		Title:   "Season Opener This Weekend",
		Content: "The Premier Cup kicks off Saturday with Red Hawks against Blue Strikers at the Main Ground. Gates open an hour before the first whistle.",
		Author:  "Admin",
		Date:    "2025-01-12T09:00:00Z",
	},
}

var generalRules = []string{
	"All teams must report 30 minutes before their scheduled match time.",
	"A team failing to appear within 10 minutes of kickoff forfeits the match.",
	"The referee's decision on the field is final.",
	"Player identity cards must be carried for every fixture.",
}

var footballRules = []string{
	"Matches are played in two halves of 25 minutes each.",
	"Rolling substitutions are allowed from a squad of up to 14 players.",
	"A win earns 3 points, a draw 1 point.",
	"Pool standings are decided by points, then goal difference, then goals scored.",
}

var volleyballRules = []string{
	"Matches are best of three sets, each set to 25 points (rally scoring).",
	"A deciding third set is played to 15 points.",
	"Teams switch sides after every set.",
	"Six players on court; up to six substitutions per set.",
}

// The accessors return fresh copies so callers can slice and filter without
// corrupting the bundled data.

func Teams() []types.Team {
	out := make([]types.Team, len(teams))
	copy(out, teams)
	return out
}

func Matches() []types.Match {
	out := make([]types.Match, len(matches))
	copy(out, matches)
	return out
}

func Players() []types.Player {
	out := make([]types.Player, len(players))
	copy(out, players)
	return out
}

func Standings() []types.Standing {
	out := make([]types.Standing, len(standings))
	copy(out, standings)
	return out
}

func Blogs() []types.BlogPost {
	out := make([]types.BlogPost, len(blogs))
	copy(out, blogs)
	return out
}

func GeneralRules() []string {
	out := make([]string, len(generalRules))
	copy(out, generalRules)
	return out
}

func FootballRules() []string {
	out := make([]string, len(footballRules))
	copy(out, footballRules)
	return out
}

func VolleyballRules() []string {
	out := make([]string, len(volleyballRules))
	copy(out, volleyballRules)
	return out
}

func Rules() types.Rules {
	return types.Rules{
		General:    GeneralRules(),
		Football:   FootballRules(),
		Volleyball: VolleyballRules(),
	}
}
