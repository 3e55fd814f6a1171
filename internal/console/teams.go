package console

import (
	"context"

	"github.com/opencourt/tourney-admin/internal/sheets"
	"github.com/opencourt/tourney-admin/internal/types"
)

// SaveTeam creates or updates a team. Sport and category default from the
// selected tournament when the form leaves them blank. A saved team can
// change pool assignments, so standings are recalculated before the reload.
func (c *Console) SaveTeam(ctx context.Context, t types.Team) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	up := sheets.TeamUpsert{
		ID:           t.ID,
		Name:         t.Name,
		Sport:        t.Sport,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		TournamentID: t.TournamentID,
		PoolID:       t.PoolID,
	}
	if tournament, ok := c.findTournament(t.TournamentID); ok {
		up.TournamentName = tournament.Name
		if up.Sport == "" {
			up.Sport = tournament.Sport
		}
		if up.CategoryID == "" {
			up.CategoryID = tournament.CategoryID
		}
		if up.CategoryName == "" {
			up.CategoryName = tournament.CategoryName
		}
	}
	if up.Sport == "" {
		up.Sport = "Football"
	}
	if up.CategoryID == "" {
		up.CategoryID = "cat_1"
	}
	if up.CategoryName == "" {
		up.CategoryName = "General"
	}

	var s sheets.Status
	status := "Team created"
	if t.ID == "" {
		s = c.api.CreateTeam(ctx, up)
	} else {
		s = c.api.UpdateTeam(ctx, up)
		status = "Team updated"
	}
	if !s.Success {
		// The write may have partially applied; refresh anyway.
		c.Reload(ctx)
		return reject(s, "Failed to save: ")
	}

	c.api.RecalculateStandings(ctx)
	c.Reload(ctx)
	return Result{OK: true, Status: status}
}

func (c *Console) DeleteTeam(ctx context.Context, id string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.DeleteTeam(ctx, id); !s.Success {
		return reject(s, "Failed to delete: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Team deleted"}
}

func (c *Console) CreateTournament(ctx context.Context, name, sport, categoryID, categoryName string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.CreateTournament(ctx, name, sport, categoryID, categoryName); !s.Success {
		return reject(s, "Failed to save: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Tournament created"}
}

func (c *Console) DeleteTournament(ctx context.Context, id string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.DeleteTournament(ctx, id); !s.Success {
		return reject(s, "Failed to delete: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Tournament deleted"}
}

func (c *Console) CreatePool(ctx context.Context, tournamentID, name string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if _, ok := c.findTournament(tournamentID); !ok {
		return Result{Status: "Error: Please select a Tournament"}
	}
	if s := c.api.CreatePool(ctx, tournamentID, name); !s.Success {
		return reject(s, "Failed to save: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Pool created"}
}

func (c *Console) DeletePool(ctx context.Context, id string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.DeletePool(ctx, id); !s.Success {
		return reject(s, "Failed to delete: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Pool deleted"}
}
