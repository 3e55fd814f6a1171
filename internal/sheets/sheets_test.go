package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opencourt/tourney-admin/internal/seed"
	"github.com/opencourt/tourney-admin/internal/types"
)

// backend serves one canned body per action.
func backend(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var req map[string]any
		_ = json.Unmarshal(raw, &req)
		action, _ := req["action"].(string)
		body, ok := responses[action]
		if !ok {
			t.Errorf("unexpected action %q", action)
			body = `{"success":false,"message":"unexpected"}`
		}
		w.Write([]byte(body))
	}))
}

func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestGetTeams_FiltersHeaderEcho(t *testing.T) {
	srv := backend(t, map[string]string{
		"getTeams": `{"success":true,"teams":[
			{"teamId":"tm_1","teamName":"Red Hawks","tournamentId":"tr_1","sport":"Football","categoryId":"cat_1","categoryName":"Football A","poolId":"po_1"},
			{"teamId":"teamId","teamName":"teamName","tournamentId":"tournamentId","sport":"sport","categoryId":"categoryId","categoryName":"categoryName","poolId":"poolId"},
			{"teamId":"tm_2","teamName":"Blue Strikers","tournamentId":"tr_1","sport":"Football","categoryId":"cat_1","categoryName":"Football A","poolId":""}]}`,
	})
	defer srv.Close()

	teams := newTestClient(srv.URL).GetTeams(context.Background())
	assertEq(t, len(teams), 2)
	assertEq(t, teams[0].ID, "tm_1")
	assertEq(t, teams[0].Category, "Football A")
	assertEq(t, teams[1].ID, "tm_2")
	assertEq(t, teams[1].PoolID, "")
}

func TestGetTeams_NonListCollectionFallsBackToSeed(t *testing.T) {
	srv := backend(t, map[string]string{
		"getTeams": `{"success":true,"teams":{"oops":"not a list"}}`,
	})
	defer srv.Close()

	teams := newTestClient(srv.URL).GetTeams(context.Background())
	want := seed.Teams()
	assertEq(t, len(teams), len(want))
	assertEq(t, teams[0].ID, want[0].ID)
}

func TestGetTeams_BackendFailureFallsBackToSeed(t *testing.T) {
	srv := backend(t, map[string]string{
		"getTeams": `{"success":false,"message":"script error"}`,
	})
	defer srv.Close()

	teams := newTestClient(srv.URL).GetTeams(context.Background())
	assertEq(t, len(teams), len(seed.Teams()))
}

func TestGetTournaments_EmptyFallback(t *testing.T) {
	srv := backend(t, map[string]string{
		"getTournaments": `{"success":false}`,
	})
	defer srv.Close()

	assertEq(t, len(newTestClient(srv.URL).GetTournaments(context.Background())), 0)
}

func TestGetPoolsByTournament_StampsTournamentID(t *testing.T) {
	srv := backend(t, map[string]string{
		"getPoolsByTournament": `{"success":true,"pools":[{"poolId":"po_1","poolName":"Pool A"},{"poolId":"po_2","poolName":"Pool B"}]}`,
	})
	defer srv.Close()

	pools := newTestClient(srv.URL).GetPoolsByTournament(context.Background(), "tr_7")
	assertEq(t, len(pools), 2)
	assertEq(t, pools[0].TournamentID, "tr_7")
	assertEq(t, pools[1].Name, "Pool B")
}

func TestGetMatches_TranslatesWireVocabulary(t *testing.T) {
	srv := backend(t, map[string]string{
		"getMatches": `{"success":true,"matches":[{
			"matchId":"match_9","tournamentId":"tr_1","tournamentName":"Premier Cup",
			"sport":"Football","categoryId":"cat_1","categoryName":"Football A","poolId":"po_1",
			"teamA":{"id":"tm_1","name":"Red Hawks","score":2},
			"teamB":{"id":"tm_2","name":"Blue Strikers","score":"1"},
			"matchDate":"2025-01-18","matchTime":"16:00","venue":"Main Ground",
			"status":"Completed","matchNumber":3}]}`,
	})
	defer srv.Close()

	matches := newTestClient(srv.URL).GetMatches(context.Background())
	assertEq(t, len(matches), 1)
	m := matches[0]
	assertEq(t, m.ID, "match_9")
	assertEq(t, m.Date, "2025-01-18")
	assertEq(t, m.Time, "16:00")
	assertEq(t, m.TeamA.Score, "2") // numeric cell folded to string
	assertEq(t, m.TeamB.Score, "1")
	assertEq(t, m.Status, types.StatusCompleted)
	assertEq(t, m.MatchNumber, "3")
}

func TestGetMatches_FiltersHeaderRows(t *testing.T) {
	srv := backend(t, map[string]string{
		"getMatches": `{"success":true,"matches":[
			{"matchId":"matchId","matchDate":"matchDate","teamA":{},"teamB":{}},
			{"matchId":"match_1","matchDate":"2025-01-18","teamA":{"id":"a"},"teamB":{"id":"b"}}]}`,
	})
	defer srv.Close()

	matches := newTestClient(srv.URL).GetMatches(context.Background())
	assertEq(t, len(matches), 1)
	assertEq(t, matches[0].ID, "match_1")
}

// Round-trip: the create payload for a new match, echoed back by the
// backend under its own vocabulary, translates to an equal match apart from
// the server-assigned id.
func TestCreateMatch_RoundTrip(t *testing.T) {
	in := types.Match{
		TournamentID:   "tr_1",
		TournamentName: "Premier Cup",
		Sport:          "Football",
		CategoryID:     "cat_1",
		CategoryName:   "Football A",
		PoolID:         "po_1",
		TeamA:          types.MatchTeam{ID: "tm_1", Name: "Red Hawks"},
		TeamB:          types.MatchTeam{ID: "tm_2", Name: "Blue Strikers"},
		Date:           "2025-03-01",
		Time:           "17:30",
		Venue:          "Main Ground",
		MatchNumber:    "SF2",
	}

	var echo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var req map[string]any
		_ = json.Unmarshal(raw, &req)
		switch req["action"] {
		case "createMatch":
			echo = fmt.Sprintf(`{"success":true,"matches":[{
				"matchId":"match_srv_1",
				"tournamentId":%q,"tournamentName":%q,"sport":%q,
				"categoryId":%q,"categoryName":%q,"poolId":%q,
				"teamA":{"id":%q,"name":%q},"teamB":{"id":%q,"name":%q},
				"matchDate":%q,"matchTime":%q,"venue":%q,"status":"","matchNumber":%q}]}`,
				req["tournamentId"], req["tournamentName"], req["sport"],
				req["categoryId"], req["categoryName"], req["poolId"],
				req["teamAId"], req["teamAName"], req["teamBId"], req["teamBName"],
				req["matchDate"], req["matchTime"], req["venue"], req["matchNumber"])
			w.Write([]byte(`{"success":true,"message":"created"}`))
		case "getMatches":
			w.Write([]byte(echo))
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if res := c.CreateMatch(context.Background(), in); !res.Success {
		t.Fatalf("create failed: %+v", res)
	}
	got := c.GetMatches(context.Background())
	assertEq(t, len(got), 1)

	out := got[0]
	assertEq(t, out.ID, "match_srv_1")
	out.ID = in.ID // the only allowed difference
	assertEq(t, out, in)
}

func TestGetStandings_TranslatesWinsLosses(t *testing.T) {
	srv := backend(t, map[string]string{
		"getStandings": `{"success":true,"standings":[{
			"teamId":"tm_1","teamName":"Red Hawks","played":"4","wins":3,"draws":0,"losses":1,
			"goalsFor":9,"goalsAgainst":4,"goalDifference":5,"points":9,
			"categoryName":"Football A","poolId":"po_1","lastUpdated":"2025-01-20T10:00:00Z"}]}`,
	})
	defer srv.Close()

	standings := newTestClient(srv.URL).GetStandings(context.Background())
	assertEq(t, len(standings), 1)
	s := standings[0]
	assertEq(t, s.Won, 3)
	assertEq(t, s.Drawn, 0)
	assertEq(t, s.Lost, 1)
	assertEq(t, s.Played, 4) // numeric string cell
	assertEq(t, s.Category, "Football A")
}

func TestGetRules_PerListSeedFallback(t *testing.T) {
	srv := backend(t, map[string]string{
		"getRules": `{"success":true,"general":["custom general rule"],"football":[],"volleyball":null}`,
	})
	defer srv.Close()

	r := newTestClient(srv.URL).GetRules(context.Background())
	assertEq(t, len(r.General), 1)
	assertEq(t, r.General[0], "custom general rule")
	assertEq(t, len(r.Football), len(seed.FootballRules()))
	assertEq(t, len(r.Volleyball), len(seed.VolleyballRules()))
}

func TestGetBlogs_TranslatesPostFields(t *testing.T) {
	srv := backend(t, map[string]string{
		"getBlogs": `{"success":true,"blogs":[{
			"postId":"blog_5","title":"Finals","content":"Big day.","coverImageUrl":"https://img/x.jpg",
			"createdBy":"Priya","createdAt":"2025-02-02T08:00:00Z"}]}`,
	})
	defer srv.Close()

	blogs := newTestClient(srv.URL).GetBlogs(context.Background())
	assertEq(t, len(blogs), 1)
	assertEq(t, blogs[0].Author, "Priya")
	assertEq(t, blogs[0].Image, "https://img/x.jpg")
	assertEq(t, blogs[0].Date, "2025-02-02T08:00:00Z")
}

func TestCreatePlayer_ImageForwardedOnlyWhenInline(t *testing.T) {
	var payloads []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var req map[string]any
		_ = json.Unmarshal(raw, &req)
		payloads = append(payloads, req)
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	team := types.Team{ID: "tm_1", Name: "Red Hawks", TournamentID: "tr_1", Sport: "Football", CategoryID: "cat_1", CategoryName: "Football A"}

	c.CreatePlayer(context.Background(), types.Player{Name: "Arun", TeamID: "tm_1", Image: "data:image/jpeg;base64,abc"}, team)
	c.UpdatePlayer(context.Background(), types.Player{ID: "pl_1", Name: "Arun", Image: "https://cdn/photo.jpg"})

	if _, ok := payloads[0]["imageBase64"]; !ok {
		t.Fatal("inline image should be forwarded on create")
	}
	if _, ok := payloads[1]["imageBase64"]; ok {
		t.Fatal("URL image must not be re-uploaded on update")
	}
}

func TestLogin_FailurePassesMessageThrough(t *testing.T) {
	srv := backend(t, map[string]string{
		"login": `{"success":false,"message":"Invalid password"}`,
	})
	defer srv.Close()

	res := newTestClient(srv.URL).Login(context.Background(), "a@b.com", "wrong")
	assertEq(t, res.Success, false)
	assertEq(t, res.Message, "Invalid password")
}

func TestGetAdmins_KeepsValuesContainingColumnName(t *testing.T) {
	srv := backend(t, map[string]string{
		"getAdmins": `{"success":true,"admins":[
			{"adminId":"adminId","name":"name","email":"email"},
			{"adminId":"adm_1","name":"Club Mail","email":"club.email@example.org"}]}`,
	})
	defer srv.Close()

	admins := newTestClient(srv.URL).GetAdmins(context.Background())
	assertEq(t, len(admins), 1)
	assertEq(t, admins[0].Email, "club.email@example.org")
}

func TestGetTeams_KeepsNamesContainingColumnName(t *testing.T) {
	srv := backend(t, map[string]string{
		"getTeams": `{"success":true,"teams":[
			{"teamId":"tm_1","teamName":"Old teamName FC","tournamentId":"tr_1"}]}`,
	})
	defer srv.Close()

	teams := newTestClient(srv.URL).GetTeams(context.Background())
	assertEq(t, len(teams), 1)
	assertEq(t, teams[0].Name, "Old teamName FC")
}

func TestGetAdmins_FallbackEmpty(t *testing.T) {
	srv := backend(t, map[string]string{
		"getAdmins": `{"success":true,"admins":"not-a-list"}`,
	})
	defer srv.Close()

	assertEq(t, len(newTestClient(srv.URL).GetAdmins(context.Background())), 0)
}
