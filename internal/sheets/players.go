package sheets

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/opencourt/tourney-admin/internal/seed"
	"github.com/opencourt/tourney-admin/internal/types"
)

// GetPlayers fetches every player, falling back to the bundled seed.
func (c *Client) GetPlayers(ctx context.Context) []types.Player {
	var resp playersResp
	if err := json.Unmarshal(c.send(ctx, "getPlayers", nil), &resp); err != nil || !resp.Success || resp.Players == nil {
		return seed.Players()
	}
	out := make([]types.Player, 0, len(resp.Players))
	for _, p := range resp.Players {
		if headerEcho(p.PlayerID, "playerId") || headerEcho(p.PlayerName, "playerName") {
			continue
		}
		out = append(out, toPlayer(p))
	}
	return out
}

// CreatePlayer registers a player under a team; the team supplies the
// denormalized tournament columns the sheet keeps per row.
func (c *Client) CreatePlayer(ctx context.Context, p types.Player, team types.Team) Status {
	fields := payload{
		"playerName":   p.Name,
		"fatherName":   p.FatherName,
		"jerseyNo":     p.JerseyNumber,
		"teamId":       p.TeamID,
		"teamName":     team.Name,
		"tournamentId": team.TournamentID,
		"sport":        team.Sport,
		"categoryId":   team.CategoryID,
		"categoryName": team.CategoryName,
	}
	addInlineImage(fields, p.Image)
	return status(c.send(ctx, "createPlayer", fields))
}

func (c *Client) UpdatePlayer(ctx context.Context, p types.Player) Status {
	fields := payload{
		"playerId":   p.ID,
		"playerName": p.Name,
		"fatherName": p.FatherName,
		"jerseyNo":   p.JerseyNumber,
	}
	addInlineImage(fields, p.Image)
	return status(c.send(ctx, "updatePlayer", fields))
}

func (c *Client) DeletePlayer(ctx context.Context, playerID string) Status {
	return status(c.send(ctx, "deletePlayer", payload{"playerId": playerID}))
}

// addInlineImage forwards the image only when it is an inline data: payload.
// A URL means the photo is already stored; re-sending it would make the
// backend re-upload its own link.
func addInlineImage(fields payload, image string) {
	if strings.HasPrefix(image, "data:") {
		fields["imageBase64"] = image
	}
}
