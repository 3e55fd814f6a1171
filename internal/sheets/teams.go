package sheets

import (
	"context"
	"encoding/json"

	"github.com/opencourt/tourney-admin/internal/seed"
	"github.com/opencourt/tourney-admin/internal/types"
)

// TeamUpsert carries the fields of createTeam/updateTeam. ID is empty on
// create.
type TeamUpsert struct {
	ID             string
	Name           string
	TournamentID   string
	TournamentName string
	Sport          string
	CategoryID     string
	CategoryName   string
	PoolID         string
}

// GetTeams fetches every team. On any failure, or when the collection is
// missing or not a list, it returns the bundled seed instead.
func (c *Client) GetTeams(ctx context.Context) []types.Team {
	var resp teamsResp
	if err := json.Unmarshal(c.send(ctx, "getTeams", nil), &resp); err != nil || !resp.Success || resp.Teams == nil {
		return seed.Teams()
	}
	out := make([]types.Team, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		if headerEcho(t.TeamID, "teamId") || headerEcho(t.TeamName, "teamName") {
			continue
		}
		out = append(out, toTeam(t))
	}
	return out
}

func (c *Client) CreateTeam(ctx context.Context, t TeamUpsert) Status {
	return status(c.send(ctx, "createTeam", teamFields(t)))
}

func (c *Client) UpdateTeam(ctx context.Context, t TeamUpsert) Status {
	fields := teamFields(t)
	fields["teamId"] = t.ID
	return status(c.send(ctx, "updateTeam", fields))
}

func (c *Client) DeleteTeam(ctx context.Context, teamID string) Status {
	return status(c.send(ctx, "deleteTeam", payload{"teamId": teamID}))
}

func teamFields(t TeamUpsert) payload {
	return payload{
		"teamName":       t.Name,
		"tournamentId":   t.TournamentID,
		"tournamentName": t.TournamentName,
		"sport":          t.Sport,
		"categoryId":     t.CategoryID,
		"categoryName":   t.CategoryName,
		"poolId":         t.PoolID,
	}
}
