// Package console implements the admin console's behavior on top of the
// sheets client: the full-snapshot consistency policy, save validation,
// create-vs-update dispatch, and the auth handshake. The backend is the
// only source of truth; after any mutation the console reloads everything
// rather than patching local state.
package console

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/opencourt/tourney-admin/internal/sheets"
	"github.com/opencourt/tourney-admin/internal/types"
)

// Cache persists the last good snapshot between runs. It is optional.
type Cache interface {
	SaveSnapshot(types.Snapshot) error
	LoadSnapshot() (types.Snapshot, bool)
}

// Result is what the UI shows for an operation. Status is surfaced
// verbatim. Reauthorize marks the backend permission failure that silently
// repeats on retry, so the UI can raise a blocking alert.
type Result struct {
	OK          bool   `json:"ok"`
	Status      string `json:"status"`
	Reauthorize bool   `json:"reauthorize,omitempty"`
}

// ErrBusy rejects a save while another one is in flight.
var ErrBusy = errors.New("another save is already in flight")

type Console struct {
	api   *sheets.Client
	cache Cache

	mu   sync.RWMutex
	snap types.Snapshot

	saveMu sync.Mutex
	saving bool
}

// New builds a console. If the cache holds a snapshot from a previous run
// it becomes the initial state, so a restart during an outage still shows
// the last known data.
func New(api *sheets.Client, cache Cache) *Console {
	c := &Console{api: api, cache: cache}
	if cache != nil {
		if snap, ok := cache.LoadSnapshot(); ok {
			c.snap = snap
			log.Printf("console: restored snapshot from cache (loaded %s)", snap.LoadedAt.Format(time.RFC3339))
		}
	}
	return c
}

// Snapshot returns the current state. The value is replaced wholesale on
// reload, never mutated, so handing out a copy of the struct is safe.
func (c *Console) Snapshot() types.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Reload fetches every collection and swaps the snapshot in one step.
// Collections for different entity types are independent requests and run
// concurrently; pools depend on the tournament list and load after it,
// sequentially per tournament.
func (c *Console) Reload(ctx context.Context) types.Snapshot {
	var snap types.Snapshot

	var wg sync.WaitGroup
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	run(func() { snap.Teams = c.api.GetTeams(ctx) })
	run(func() { snap.Tournaments = c.api.GetTournaments(ctx) })
	run(func() { snap.Matches = c.api.GetMatches(ctx) })
	run(func() { snap.Players = c.api.GetPlayers(ctx) })
	run(func() { snap.Standings = c.api.GetStandings(ctx) })
	run(func() { snap.Blogs = c.api.GetBlogs(ctx) })
	run(func() { snap.Admins = c.api.GetAdmins(ctx) })
	run(func() { snap.Rules = c.api.GetRules(ctx) })
	wg.Wait()

	for _, t := range snap.Tournaments {
		pools := c.api.GetPoolsByTournament(ctx, t.ID)
		for i := range pools {
			pools[i].TournamentName = t.Name
		}
		snap.Pools = append(snap.Pools, pools...)
	}
	snap.LoadedAt = time.Now().UTC()

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	if c.cache != nil {
		if err := c.cache.SaveSnapshot(snap); err != nil {
			log.Printf("console: caching snapshot: %v", err)
		}
	}
	return snap
}

// begin takes the save guard. Reads never block; a second concurrent save
// is refused instead of queued so a double-click cannot submit twice.
func (c *Console) begin() error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()
	if c.saving {
		return ErrBusy
	}
	c.saving = true
	return nil
}

func (c *Console) end() {
	c.saveMu.Lock()
	c.saving = false
	c.saveMu.Unlock()
}

func busy() Result {
	return Result{Status: "Error: another save is in progress"}
}

func reject(s sheets.Status, prefix string) Result {
	msg := s.Message
	if msg == "" {
		msg = "Error"
	}
	return Result{Status: prefix + msg, Reauthorize: needsReauthorization(msg)}
}

// needsReauthorization spots the backend's permission failure, which would
// otherwise repeat silently on every retry.
func needsReauthorization(message string) bool {
	return strings.Contains(message, "Authorization") || strings.Contains(message, "permission")
}
