package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/opencourt/tourney-admin/internal/sheets"
	"github.com/opencourt/tourney-admin/internal/types"
)

func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// recorder is a fake backend that logs every request it receives and
// answers success with an empty payload.
type recorder struct {
	mu       sync.Mutex
	actions  []string
	payloads []map[string]any
	fail     map[string]string // action -> failure message
	hold     chan struct{}     // when set, block handling until closed
}

func (r *recorder) serve(t *testing.T) *sheets.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		action, _ := body["action"].(string)
		r.mu.Lock()
		r.actions = append(r.actions, action)
		r.payloads = append(r.payloads, body)
		msg, failed := r.fail[action]
		hold := r.hold
		r.mu.Unlock()
		if hold != nil {
			<-hold
		}
		if failed {
			fmt.Fprintf(w, `{"success":false,"message":%q}`, msg)
			return
		}
		fmt.Fprint(w, `{"success":true}`)
	}))
	t.Cleanup(srv.Close)
	api := sheets.New(srv.URL)
	api.RetryWait = time.Millisecond
	return api
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.actions...)
}

// payload returns the fields of the first request carrying the action.
func (r *recorder) payload(t *testing.T, action string) map[string]any {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payloads {
		if p["action"] == action {
			return p
		}
	}
	t.Fatalf("no %s request recorded", action)
	return nil
}

func (r *recorder) count(action string) int {
	n := 0
	for _, a := range r.seen() {
		if a == action {
			n++
		}
	}
	return n
}

func testSnapshot() types.Snapshot {
	return types.Snapshot{
		Tournaments: []types.Tournament{
			{ID: "tr_1", Name: "Premier Cup", Sport: "Football", CategoryID: "cat_2", CategoryName: "Football B"},
		},
		Teams: []types.Team{
			{ID: "tm_1", Name: "Harbor FC", PoolID: "po_1", TournamentID: "tr_1"},
			{ID: "tm_2", Name: "Summit FC", PoolID: "po_1", TournamentID: "tr_1"},
			{ID: "tm_3", Name: "Valley FC", PoolID: "po_2", TournamentID: "tr_1"},
			{ID: "tm_4", Name: "Ridge FC", TournamentID: "tr_1"},
			{ID: "tm_5", Name: "Coast FC", TournamentID: "tr_1"},
		},
	}
}

func TestSaveMatch_RequiresDate(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveMatch(context.Background(), types.Match{})
	assertEq(t, res.OK, false)
	assertEq(t, res.Status, "Error: Match Date is required")
	assertEq(t, len(rec.seen()), 0)
}

func TestSaveMatch_RejectsUnknownTournament(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveMatch(context.Background(), types.Match{
		Date:         "2026-09-05",
		TournamentID: "tr_missing",
	})
	assertEq(t, res.Status, "Error: Please select a Tournament")
	assertEq(t, len(rec.seen()), 0)
}

func TestSaveMatch_RejectsSelfMatch(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveMatch(context.Background(), types.Match{
		Date:         "2026-09-05",
		TournamentID: "tr_1",
		TeamA:        types.MatchTeam{ID: "tm_1"},
		TeamB:        types.MatchTeam{ID: "tm_1"},
	})
	assertEq(t, res.Status, "Error: Teams cannot play against themselves")
	assertEq(t, len(rec.seen()), 0)
}

func TestSaveMatch_RejectsCrossPoolTeams(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveMatch(context.Background(), types.Match{
		Date:         "2026-09-05",
		TournamentID: "tr_1",
		PoolID:       "po_1",
		TeamA:        types.MatchTeam{ID: "tm_1"},
		TeamB:        types.MatchTeam{ID: "tm_3"},
	})
	assertEq(t, res.Status, "Error: Teams are in different pools. Please select teams from the same pool.")
	assertEq(t, len(rec.seen()), 0)
}

func TestSaveMatch_CrossPoolAllowedWithoutChosenPool(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveMatch(context.Background(), types.Match{
		Date:         "2026-09-05",
		TournamentID: "tr_1",
		TeamA:        types.MatchTeam{ID: "tm_1"},
		TeamB:        types.MatchTeam{ID: "tm_3"},
	})
	assertEq(t, res.OK, true)
	assertEq(t, rec.payload(t, "createMatch")["poolId"], any("po_1"))
}

func TestSaveMatch_KeepsChosenPoolForUnpooledTeams(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveMatch(context.Background(), types.Match{
		Date:         "2026-09-05",
		TournamentID: "tr_1",
		PoolID:       "po_chosen",
		TeamA:        types.MatchTeam{ID: "tm_4"},
		TeamB:        types.MatchTeam{ID: "tm_5"},
	})
	assertEq(t, res.OK, true)
	assertEq(t, rec.payload(t, "createMatch")["poolId"], any("po_chosen"))
}

func TestSaveMatch_StampsTournamentDetails(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveMatch(context.Background(), types.Match{
		Date:         "2026-09-05",
		TournamentID: "tr_1",
		TeamA:        types.MatchTeam{ID: "tm_1"},
		TeamB:        types.MatchTeam{ID: "tm_2"},
	})
	assertEq(t, res.OK, true)
	created := rec.payload(t, "createMatch")
	assertEq(t, created["tournamentName"], any("Premier Cup"))
	assertEq(t, created["sport"], any("Football"))
	assertEq(t, created["categoryId"], any("cat_2"))
	assertEq(t, created["categoryName"], any("Football B"))
	assertEq(t, created["teamAName"], any("Harbor FC"))
}

func TestSaveMatch_UpdateFallsBackToEitherTeamPool(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	snap := testSnapshot()
	snap.Teams[0].PoolID = "" // teamA unpooled, teamB still in po_1
	c.snap = snap

	res := c.SaveMatch(context.Background(), types.Match{
		ID:           "match_31",
		Date:         "2026-09-05",
		TournamentID: "tr_1",
		TeamA:        types.MatchTeam{ID: "tm_1"},
		TeamB:        types.MatchTeam{ID: "tm_2"},
	})
	assertEq(t, res.OK, true)
	assertEq(t, rec.payload(t, "updateMatch")["poolId"], any("po_1"))
}

func TestSaveMatch_CreatesThenReloads(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveMatch(context.Background(), types.Match{
		Date:         "2026-09-05",
		TournamentID: "tr_1",
		PoolID:       "po_9", // wrong on purpose, corrected to the teams' pool
		TeamA:        types.MatchTeam{ID: "tm_1"},
		TeamB:        types.MatchTeam{ID: "tm_2"},
	})
	assertEq(t, res.OK, true)
	assertEq(t, res.Status, "Match saved successfully")
	assertEq(t, rec.count("createMatch"), 1)
	assertEq(t, rec.count("getMatches"), 1)
	assertEq(t, rec.seen()[0], "createMatch")
}

func TestSaveMatch_UpdateForServerID(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveMatch(context.Background(), types.Match{
		ID:           "match_17",
		Date:         "2026-09-05",
		TournamentID: "tr_1",
		TeamA:        types.MatchTeam{ID: "tm_1", Score: "2"},
		TeamB:        types.MatchTeam{ID: "tm_2", Score: "1"},
		Status:       types.StatusCompleted,
	})
	assertEq(t, res.OK, true)
	assertEq(t, rec.count("updateMatch"), 1)
	assertEq(t, rec.count("createMatch"), 0)
}

func TestSaveTeam_RecalculatesBeforeReload(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveTeam(context.Background(), types.Team{
		ID:           "tm_1",
		Name:         "Harbor FC",
		TournamentID: "tr_1",
	})
	assertEq(t, res.OK, true)
	assertEq(t, res.Status, "Team updated")

	seen := rec.seen()
	assertEq(t, seen[0], "updateTeam")
	assertEq(t, seen[1], "recalculateStandings")
	if rec.count("getTeams") != 1 {
		t.Fatalf("expected one reload, saw actions %v", seen)
	}
}

func TestSaveTeam_FailureStillReloads(t *testing.T) {
	rec := &recorder{fail: map[string]string{"createTeam": "Sheet is locked"}}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveTeam(context.Background(), types.Team{Name: "New FC", TournamentID: "tr_1"})
	assertEq(t, res.OK, false)
	assertEq(t, res.Status, "Failed to save: Sheet is locked")
	assertEq(t, rec.count("getTeams"), 1)
	assertEq(t, rec.count("recalculateStandings"), 0)
}

func TestSavePlayer_RequiresKnownTeam(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SavePlayer(context.Background(), types.Player{Name: "Dev"})
	assertEq(t, res.Status, "Please select a team")

	res = c.SavePlayer(context.Background(), types.Player{Name: "Dev", TeamID: "tm_missing"})
	assertEq(t, res.Status, "Error: Selected team details not found.")
	assertEq(t, len(rec.seen()), 0)
}

func TestSavePlayer_ReauthorizeOnPermissionFailure(t *testing.T) {
	rec := &recorder{fail: map[string]string{"createPlayer": "Authorization is required to perform that action."}}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SavePlayer(context.Background(), types.Player{Name: "Dev", TeamID: "tm_1"})
	assertEq(t, res.OK, false)
	assertEq(t, res.Reauthorize, true)
	if !strings.HasPrefix(res.Status, "Failed: ") {
		t.Fatalf("status = %q", res.Status)
	}
}

func TestSaveBlog_DefaultsDate(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveBlog(context.Background(), types.BlogPost{Title: "Kickoff"})
	assertEq(t, res.OK, true)
	assertEq(t, res.Status, "Post saved")
	assertEq(t, rec.count("createBlog"), 1)
}

func TestSaveBlog_UpdateForServerID(t *testing.T) {
	rec := &recorder{}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	res := c.SaveBlog(context.Background(), types.BlogPost{ID: "blog_01", Title: "Kickoff"})
	assertEq(t, res.OK, true)
	assertEq(t, rec.count("updateBlog"), 1)
}

func TestBusySaveIsRefused(t *testing.T) {
	hold := make(chan struct{})
	rec := &recorder{hold: hold}
	c := New(rec.serve(t), nil)
	c.snap = testSnapshot()

	started := make(chan struct{})
	done := make(chan Result, 1)
	go func() {
		close(started)
		done <- c.DeleteMatch(context.Background(), "match_01")
	}()
	<-started
	// Wait until the first save holds the guard.
	for i := 0; i < 100; i++ {
		c.saveMu.Lock()
		busy := c.saving
		c.saveMu.Unlock()
		if busy {
			break
		}
		time.Sleep(time.Millisecond)
	}

	second := c.DeleteMatch(context.Background(), "match_02")
	assertEq(t, second.OK, false)
	assertEq(t, second.Status, "Error: another save is in progress")

	close(hold)
	first := <-done
	assertEq(t, first.OK, true)
	assertEq(t, rec.count("deleteMatch"), 1)
}

func TestLoginFailureMessage(t *testing.T) {
	rec := &recorder{fail: map[string]string{"login": "Invalid email or password"}}
	c := New(rec.serve(t), nil)

	_, res := c.Login(context.Background(), "a@b.c", "nope")
	assertEq(t, res.OK, false)
	assertEq(t, res.Status, "Invalid Credentials or Server Error")
}

func TestLoginSuccessBuildsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `{"success":true,"name":"Dana","mustChangePassword":true}`)
	}))
	defer srv.Close()
	c := New(sheets.New(srv.URL), nil)

	sess, res := c.Login(context.Background(), "dana@club.org", "pw")
	assertEq(t, res.OK, true)
	assertEq(t, sess.Name, "Dana")
	assertEq(t, sess.Email, "dana@club.org")
	assertEq(t, sess.MustChangePassword, true)
}

func TestReloadStampsPoolTournamentNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Action string `json:"action"`
		}
		json.NewDecoder(req.Body).Decode(&body)
		switch body.Action {
		case "getTournaments":
			fmt.Fprint(w, `{"success":true,"tournaments":[{"tournamentId":"tr_1","tournamentName":"Premier Cup"}]}`)
		case "getPoolsByTournament":
			fmt.Fprint(w, `{"success":true,"pools":[{"poolId":"po_1","poolName":"Pool A"}]}`)
		default:
			fmt.Fprint(w, `{"success":false,"message":"no such action"}`)
		}
	}))
	defer srv.Close()
	api := sheets.New(srv.URL)
	api.RetryWait = time.Millisecond
	c := New(api, nil)

	snap := c.Reload(context.Background())
	assertEq(t, len(snap.Pools), 1)
	assertEq(t, snap.Pools[0].TournamentID, "tr_1")
	assertEq(t, snap.Pools[0].TournamentName, "Premier Cup")
	if snap.LoadedAt.IsZero() {
		t.Fatal("LoadedAt not stamped")
	}
	// Failed collections fall back to seeds rather than going empty.
	if len(snap.Teams) == 0 {
		t.Fatal("expected seed teams on backend failure")
	}
}
