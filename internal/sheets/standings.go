package sheets

import (
	"context"
	"encoding/json"

	"github.com/opencourt/tourney-admin/internal/seed"
	"github.com/opencourt/tourney-admin/internal/types"
)

// GetStandings fetches the derived table, falling back to the bundled seed.
func (c *Client) GetStandings(ctx context.Context) []types.Standing {
	var resp standingsResp
	if err := json.Unmarshal(c.send(ctx, "getStandings", nil), &resp); err != nil || !resp.Success || resp.Standings == nil {
		return seed.Standings()
	}
	out := make([]types.Standing, 0, len(resp.Standings))
	for _, s := range resp.Standings {
		if headerEcho(s.TeamID, "teamId") || headerEcho(s.TeamName, "teamName") {
			continue
		}
		out = append(out, toStanding(s))
	}
	return out
}

// RecalculateStandings asks the backend to rebuild every standing row from
// the current completed matches. Standings are never written directly.
func (c *Client) RecalculateStandings(ctx context.Context) Status {
	return status(c.send(ctx, "recalculateStandings", nil))
}
