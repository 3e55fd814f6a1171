package sheets

import (
	"context"
	"encoding/json"

	"github.com/opencourt/tourney-admin/internal/seed"
	"github.com/opencourt/tourney-admin/internal/types"
)

// GetRules fetches the three rule lists. Each list falls back to its seed
// independently, so a sheet with only football rules still shows sensible
// general and volleyball sections.
func (c *Client) GetRules(ctx context.Context) types.Rules {
	var resp rulesResp
	if err := json.Unmarshal(c.send(ctx, "getRules", nil), &resp); err != nil || !resp.Success {
		return seed.Rules()
	}
	out := types.Rules{
		General:    resp.General,
		Football:   resp.Football,
		Volleyball: resp.Volleyball,
	}
	if len(out.General) == 0 {
		out.General = seed.GeneralRules()
	}
	if len(out.Football) == 0 {
		out.Football = seed.FootballRules()
	}
	if len(out.Volleyball) == 0 {
		out.Volleyball = seed.VolleyballRules()
	}
	return out
}

func (c *Client) SaveRules(ctx context.Context, r types.Rules) Status {
	return status(c.send(ctx, "saveRules", payload{
		"general":    r.General,
		"football":   r.Football,
		"volleyball": r.Volleyball,
	}))
}
