package sheets

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/opencourt/tourney-admin/internal/types"
)

// cell is a spreadsheet scalar. The backend echoes whatever the sheet
// holds, so an id column can decode as a string, a number, or null; cell
// folds them all to a string.
type cell string

func (c *cell) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = cell(s)
		return nil
	}
	// number or bool: keep the literal text
	*c = cell(b)
	return nil
}

func (c cell) str() string { return string(c) }

// num parses a cell as an integer, tolerating floats and blanks.
func (c cell) num() int {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// headerEcho reports whether an identifying cell is exactly its own column
// name, which happens when the backend serves the sheet's header row as
// data. Equality, not substring: real values may contain a column name
// (an address like club.email@example.org must survive the filter).
func headerEcho(c cell, column string) bool {
	return string(c) == column
}

// --- wire -> domain translators ---

func toTeam(t sheetTeam) types.Team {
	name := t.CategoryName.str()
	return types.Team{
		ID:           t.TeamID.str(),
		Name:         t.TeamName.str(),
		Category:     name,
		TournamentID: t.TournamentID.str(),
		Sport:        t.Sport.str(),
		CategoryID:   t.CategoryID.str(),
		CategoryName: name,
		PoolID:       t.PoolID.str(),
	}
}

func toTournament(t sheetTournament) types.Tournament {
	return types.Tournament{
		ID:           t.TournamentID.str(),
		Name:         t.TournamentName.str(),
		Sport:        t.Sport.str(),
		CategoryID:   t.CategoryID.str(),
		CategoryName: t.CategoryName.str(),
	}
}

func toMatch(m sheetMatch) types.Match {
	return types.Match{
		ID:             m.MatchID.str(),
		TournamentID:   m.TournamentID.str(),
		TournamentName: m.TournamentName.str(),
		Sport:          m.Sport.str(),
		CategoryID:     m.CategoryID.str(),
		CategoryName:   m.CategoryName.str(),
		PoolID:         m.PoolID.str(),
		TeamA:          types.MatchTeam{ID: m.TeamA.ID.str(), Name: m.TeamA.Name.str(), Score: m.TeamA.Score.str()},
		TeamB:          types.MatchTeam{ID: m.TeamB.ID.str(), Name: m.TeamB.Name.str(), Score: m.TeamB.Score.str()},
		Date:           m.MatchDate.str(),
		Time:           m.MatchTime.str(),
		Venue:          m.Venue.str(),
		Status:         m.Status.str(),
		MatchNumber:    m.MatchNumber.str(),
	}
}

func toPlayer(p sheetPlayer) types.Player {
	return types.Player{
		ID:           p.PlayerID.str(),
		Name:         p.PlayerName.str(),
		TeamID:       p.TeamID.str(),
		FatherName:   p.FatherName.str(),
		JerseyNumber: p.JerseyNo.num(),
		Image:        p.PhotoURL.str(),
	}
}

func toStanding(s sheetStanding) types.Standing {
	return types.Standing{
		TeamID:         s.TeamID.str(),
		TeamName:       s.TeamName.str(),
		Played:         s.Played.num(),
		Won:            s.Wins.num(),
		Drawn:          s.Draws.num(),
		Lost:           s.Losses.num(),
		GoalsFor:       s.GoalsFor.num(),
		GoalsAgainst:   s.GoalsAgainst.num(),
		GoalDifference: s.GoalDifference.num(),
		Points:         s.Points.num(),
		Category:       s.CategoryName.str(),
		PoolID:         s.PoolID.str(),
		LastUpdated:    s.LastUpdated.str(),
	}
}

func toBlog(b sheetBlog) types.BlogPost {
	return types.BlogPost{
		ID:      b.PostID.str(),
		Title:   b.Title.str(),
		Content: b.Content.str(),
		Image:   b.CoverImageURL.str(),
		Author:  b.CreatedBy.str(),
		Date:    b.CreatedAt.str(),
	}
}

func toComment(c sheetComment) types.Comment {
	return types.Comment{
		ID:        c.CommentID.str(),
		User:      c.Name.str(),
		Text:      c.Comment.str(),
		Timestamp: c.CreatedAt.str(),
	}
}

func toAdmin(a sheetAdmin) types.Admin {
	return types.Admin{
		AdminID:            a.AdminID.str(),
		Name:               a.Name.str(),
		Email:              a.Email.str(),
		MustChangePassword: a.MustChangePassword,
		CreatedAt:          a.CreatedAt.str(),
	}
}
