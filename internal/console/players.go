package console

import (
	"context"
	"fmt"

	"github.com/opencourt/tourney-admin/internal/types"
)

// SavePlayer creates or updates a roster entry. The selected team supplies
// the denormalized team, sport, and category columns.
func (c *Console) SavePlayer(ctx context.Context, p types.Player) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if p.TeamID == "" {
		return Result{Status: "Please select a team"}
	}
	team, ok := c.findTeam(p.TeamID)
	if !ok {
		return Result{Status: "Error: Selected team details not found."}
	}

	if types.PlayerProvenance(p.ID) == types.ProvenanceNew {
		if s := c.api.CreatePlayer(ctx, p, team); !s.Success {
			return reject(s, "Failed: ")
		}
	} else {
		if s := c.api.UpdatePlayer(ctx, p); !s.Success {
			return reject(s, "Failed: ")
		}
	}

	c.Reload(ctx)
	return Result{OK: true, Status: "Player saved successfully"}
}

// ImportReport summarizes a bulk roster import. Errors hold one message
// per failed row.
type ImportReport struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

// ImportPlayers creates each parsed roster row against the backend and
// reloads once at the end. Rows fail independently.
func (c *Console) ImportPlayers(ctx context.Context, teamID string, players []types.Player) (ImportReport, Result) {
	if err := c.begin(); err != nil {
		return ImportReport{}, busy()
	}
	defer c.end()

	team, ok := c.findTeam(teamID)
	if !ok {
		return ImportReport{}, Result{Status: "Error: Selected team details not found."}
	}

	var report ImportReport
	for i, p := range players {
		p.TeamID = teamID
		if s := c.api.CreatePlayer(ctx, p, team); !s.Success {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %s", i+2, s.Message))
			continue
		}
		report.Imported++
	}
	report.Failed = len(report.Errors)

	c.Reload(ctx)
	status := fmt.Sprintf("Imported %d players", report.Imported)
	if report.Failed > 0 {
		status = fmt.Sprintf("Imported %d players, %d failed", report.Imported, report.Failed)
	}
	return report, Result{OK: report.Failed == 0, Status: status}
}

func (c *Console) DeletePlayer(ctx context.Context, id string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.DeletePlayer(ctx, id); !s.Success {
		return reject(s, "Failed to delete: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Player deleted"}
}
