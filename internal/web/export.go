package web

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/opencourt/tourney-admin/internal/console"
)

func registerExports(api *gin.RouterGroup, cns *console.Console) {
	// CSV export of the fixture list
	api.GET("/matches.csv", func(c *gin.Context) {
		snap := cns.Snapshot()

		filename := fmt.Sprintf("matches_%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", "attachment; filename="+filename)

		w := csv.NewWriter(c.Writer)
		_ = w.Write([]string{
			"id", "tournament", "pool",
			"team_a", "team_b", "score_a", "score_b",
			"date", "time", "venue", "status", "match_number",
		})
		for _, m := range snap.Matches {
			_ = w.Write([]string{
				m.ID, m.TournamentName, m.PoolID,
				m.TeamA.Name, m.TeamB.Name, m.TeamA.Score, m.TeamB.Score,
				m.Date, m.Time, m.Venue, m.Status, m.MatchNumber,
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
	})

	// iCal export of the fixture list
	api.GET("/matches.ics", func(c *gin.Context) {
		snap := cns.Snapshot()

		c.Header("Content-Type", "text/calendar; charset=utf-8")
		c.Header("Content-Disposition", "attachment; filename=matches.ics")

		w := c.Writer
		fmt.Fprintln(w, "BEGIN:VCALENDAR")
		fmt.Fprintln(w, "VERSION:2.0")
		fmt.Fprintln(w, "PRODID:-//tourney-admin//EN")
		fmt.Fprintln(w, "CALSCALE:GREGORIAN")

		now := time.Now().UTC().Format("20060102T150405Z")
		esc := func(s string) string {
			return strings.NewReplacer(",", "\\,", ";", "\\;", "\n", "\\n").Replace(s)
		}

		for _, m := range snap.Matches {
			// Sheet dates are local wall-clock strings. Midnight when no
			// kickoff time was entered.
			tm := m.Time
			if tm == "" {
				tm = "00:00"
			}
			start, err := time.ParseInLocation("2006-01-02 15:04", m.Date+" "+tm, time.Local)
			if err != nil {
				continue
			}

			summary := fmt.Sprintf("%s vs %s", m.TeamA.Name, m.TeamB.Name)
			if m.TeamA.Name == "" && m.TeamB.Name == "" {
				summary = "Match"
			}

			fmt.Fprintln(w, "BEGIN:VEVENT")
			fmt.Fprintf(w, "UID:match-%s@tourney-admin\n", m.ID)
			fmt.Fprintf(w, "DTSTAMP:%s\n", now)
			fmt.Fprintf(w, "DTSTART:%s\n", start.UTC().Format("20060102T150405Z"))
			fmt.Fprintf(w, "SUMMARY:%s\n", esc(summary))
			if m.Venue != "" {
				fmt.Fprintf(w, "LOCATION:%s\n", esc(m.Venue))
			}
			if m.TournamentName != "" {
				fmt.Fprintf(w, "DESCRIPTION:%s\n", esc(m.TournamentName))
			}
			fmt.Fprintln(w, "END:VEVENT")
		}

		fmt.Fprintln(w, "END:VCALENDAR")
	})

	// XLSX export of the standings table
	api.GET("/standings.xlsx", func(c *gin.Context) {
		snap := cns.Snapshot()

		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)

		header := []any{"Team", "Played", "Won", "Drawn", "Lost", "GF", "GA", "GD", "Points", "Category"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		for i, s := range snap.Standings {
			row := []any{
				s.TeamName, s.Played, s.Won, s.Drawn, s.Lost,
				s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.Points, s.Category,
			}
			cell := "A" + strconv.Itoa(i+2)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				c.String(http.StatusInternalServerError, err.Error())
				return
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		filename := fmt.Sprintf("standings_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	})
}
