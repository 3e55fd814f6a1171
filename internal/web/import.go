package web

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/opencourt/tourney-admin/internal/types"
)

// parseRoster reads a CSV or XLSX roster file from a multipart form file
// and returns the player rows.
func parseRoster(fh *multipart.FileHeader) ([]types.Player, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch ext {
	case ".csv":
		return parseRosterCSV(file)
	case ".xlsx":
		// Rosters are small; cap at 10MB and read into memory for excelize.
		b, err := io.ReadAll(io.LimitReader(file, 10<<20))
		if err != nil {
			return nil, err
		}
		return parseRosterXLSX(b)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

func parseRosterCSV(r io.Reader) ([]types.Player, error) {
	br := bufio.NewReader(r)
	// Peek first line to guess delimiter
	line, _ := br.ReadString('\n')
	rest := io.MultiReader(strings.NewReader(line), br)
	reader := csv.NewReader(rest)
	reader.FieldsPerRecord = -1
	if strings.Count(line, ";") > strings.Count(line, ",") {
		reader.Comma = ';'
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv")
	}
	headers := normHeaders(rows[0])
	var out []types.Player
	for i := 1; i < len(rows); i++ {
		if len(strings.TrimSpace(strings.Join(rows[i], ""))) == 0 {
			continue
		}
		out = append(out, rowToPlayer(headers, rows[i]))
	}
	return out, nil
}

func parseRosterXLSX(b []byte) ([]types.Player, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheet")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}
	headers := normHeaders(rows[0])
	var out []types.Player
	for i := 1; i < len(rows); i++ {
		if len(strings.TrimSpace(strings.Join(rows[i], ""))) == 0 {
			continue
		}
		out = append(out, rowToPlayer(headers, rows[i]))
	}
	return out, nil
}

// normalize headers: lower, keep letters/digits, fold spreadsheet variants
func normHeaders(hdr []string) map[int]string {
	m := make(map[int]string, len(hdr))
	for i, h := range hdr {
		k := strings.ToLower(strings.TrimSpace(h))
		b := strings.Builder{}
		for _, r := range k {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		k = b.String()
		switch k {
		case "player", "playername", "fullname":
			k = "name"
		case "father", "fathersname", "guardian", "parent":
			k = "fathername"
		case "jersey", "jerseynumber", "shirt", "shirtno", "no", "number":
			k = "jerseyno"
		case "photo", "photourl", "picture":
			k = "image"
		}
		m[i] = k
	}
	return m
}

func rowToPlayer(h map[int]string, row []string) types.Player {
	get := func(key string) string {
		for i, k := range h {
			if k == key && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}
	jersey, _ := strconv.Atoi(get("jerseyno"))
	return types.Player{
		Name:         get("name"),
		FatherName:   get("fathername"),
		JerseyNumber: jersey,
		Image:        get("image"),
	}
}
