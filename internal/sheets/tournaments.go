package sheets

import (
	"context"
	"encoding/json"

	"github.com/opencourt/tourney-admin/internal/types"
)

// GetTournaments fetches every tournament. The documented fallback for this
// collection is empty: there is no bundled tournament seed.
func (c *Client) GetTournaments(ctx context.Context) []types.Tournament {
	var resp tournamentsResp
	if err := json.Unmarshal(c.send(ctx, "getTournaments", nil), &resp); err != nil || !resp.Success || resp.Tournaments == nil {
		return nil
	}
	out := make([]types.Tournament, 0, len(resp.Tournaments))
	for _, t := range resp.Tournaments {
		if headerEcho(t.TournamentID, "tournamentId") || headerEcho(t.TournamentName, "tournamentName") {
			continue
		}
		out = append(out, toTournament(t))
	}
	return out
}

func (c *Client) CreateTournament(ctx context.Context, name, sport, categoryID, categoryName string) Status {
	return status(c.send(ctx, "createTournament", payload{
		"tournamentName": name,
		"sport":          sport,
		"categoryId":     categoryID,
		"categoryName":   categoryName,
	}))
}

func (c *Client) DeleteTournament(ctx context.Context, tournamentID string) Status {
	return status(c.send(ctx, "deleteTournament", payload{"tournamentId": tournamentID}))
}

// GetPoolsByTournament lists one tournament's pools; the backend row only
// carries id and name, so the tournament id is stamped in from the argument.
// Fallback is empty.
func (c *Client) GetPoolsByTournament(ctx context.Context, tournamentID string) []types.Pool {
	var resp poolsResp
	raw := c.send(ctx, "getPoolsByTournament", payload{"tournamentId": tournamentID})
	if err := json.Unmarshal(raw, &resp); err != nil || !resp.Success || resp.Pools == nil {
		return nil
	}
	out := make([]types.Pool, 0, len(resp.Pools))
	for _, p := range resp.Pools {
		if headerEcho(p.PoolID, "poolId") || headerEcho(p.PoolName, "poolName") {
			continue
		}
		out = append(out, types.Pool{
			ID:           p.PoolID.str(),
			TournamentID: tournamentID,
			Name:         p.PoolName.str(),
		})
	}
	return out
}

func (c *Client) CreatePool(ctx context.Context, tournamentID, poolName string) Status {
	return status(c.send(ctx, "createPool", payload{"tournamentId": tournamentID, "poolName": poolName}))
}

func (c *Client) DeletePool(ctx context.Context, poolID string) Status {
	return status(c.send(ctx, "deletePool", payload{"poolId": poolID}))
}
