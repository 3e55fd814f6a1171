package console

import (
	"context"
	"log"

	"github.com/opencourt/tourney-admin/internal/types"
)

func (c *Console) findTournament(id string) (types.Tournament, bool) {
	snap := c.Snapshot()
	for _, t := range snap.Tournaments {
		if t.ID == id {
			return t, true
		}
	}
	return types.Tournament{}, false
}

func (c *Console) findTeam(id string) (types.Team, bool) {
	snap := c.Snapshot()
	for _, t := range snap.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return types.Team{}, false
}

// SaveMatch validates a fixture against the current snapshot, then creates
// or updates it depending on whether its id is server-issued. Validation
// failures return before anything is sent.
func (c *Console) SaveMatch(ctx context.Context, m types.Match) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if m.Date == "" {
		return Result{Status: "Error: Match Date is required"}
	}

	if types.MatchProvenance(m.ID) == types.ProvenanceNew {
		tournament, ok := c.findTournament(m.TournamentID)
		if !ok {
			return Result{Status: "Error: Please select a Tournament"}
		}
		teamA, okA := c.findTeam(m.TeamA.ID)
		teamB, okB := c.findTeam(m.TeamB.ID)
		if !okA || !okB {
			return Result{Status: "Error: Please select both Home and Away teams"}
		}
		if teamA.ID == teamB.ID {
			return Result{Status: "Error: Teams cannot play against themselves"}
		}
		// Pool checks only apply when a pool was chosen and both teams
		// carry one; unpooled teams play wherever the staff put them.
		if m.PoolID != "" && teamA.PoolID != "" && teamB.PoolID != "" {
			if teamA.PoolID != teamB.PoolID {
				return Result{Status: "Error: Teams are in different pools. Please select teams from the same pool."}
			}
			if m.PoolID != teamA.PoolID {
				log.Printf("console: match pool %q does not match team pool %q, using team pool", m.PoolID, teamA.PoolID)
			}
		}
		if teamA.PoolID != "" {
			m.PoolID = teamA.PoolID
		}
		m.TournamentName = tournament.Name
		m.Sport = tournament.Sport
		m.CategoryID = tournament.CategoryID
		m.CategoryName = tournament.CategoryName
		m.TeamA.Name = teamA.Name
		m.TeamB.Name = teamB.Name

		if s := c.api.CreateMatch(ctx, m); !s.Success {
			return reject(s, "Failed to save: ")
		}
	} else {
		// Known teams may have been renamed or moved pools since the
		// fixture was created; refresh the denormalized fields.
		if teamA, ok := c.findTeam(m.TeamA.ID); ok {
			m.TeamA.Name = teamA.Name
			if m.PoolID == "" {
				m.PoolID = teamA.PoolID
			}
		}
		if teamB, ok := c.findTeam(m.TeamB.ID); ok {
			m.TeamB.Name = teamB.Name
			if m.PoolID == "" {
				m.PoolID = teamB.PoolID
			}
		}
		if s := c.api.UpdateMatch(ctx, m); !s.Success {
			return reject(s, "Failed to save: ")
		}
	}

	c.Reload(ctx)
	return Result{OK: true, Status: "Match saved successfully"}
}

func (c *Console) DeleteMatch(ctx context.Context, id string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.DeleteMatch(ctx, id); !s.Success {
		return reject(s, "Failed to delete: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Match deleted"}
}

// Recalculate asks the backend to rebuild standings from completed matches.
func (c *Console) Recalculate(ctx context.Context) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.RecalculateStandings(ctx); !s.Success {
		return reject(s, "Failed: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Standings updated from completed matches"}
}
