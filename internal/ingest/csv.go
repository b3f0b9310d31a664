package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ValueEntry - строка шпаргалки аукциона: name,position,team,byeWeek,price
type ValueEntry struct {
	Name     string
	Position string
	Team     string
	ByeWeek  int
	Price    int
}

// TeamEntry - строка файла команд лиги: name,owner
type TeamEntry struct {
	Name  string
	Owner string
}

// ReadCheatsheet читает шпаргалку; первая строка - заголовок
func ReadCheatsheet(r io.Reader) ([]ValueEntry, error) {
	records, err := readRecords(r, 5)
	if err != nil {
		return nil, fmt.Errorf("read cheatsheet: %w", err)
	}

	entries := make([]ValueEntry, 0, len(records))
	for i, rec := range records {
		price, err := parseInt(rec[4])
		if err != nil {
			return nil, fmt.Errorf("cheatsheet line %d: price: %w", i+2, err)
		}
		bye, err := parseInt(rec[3])
		if err != nil {
			return nil, fmt.Errorf("cheatsheet line %d: bye week: %w", i+2, err)
		}

		entries = append(entries, ValueEntry{
			Name:     strings.TrimSpace(rec[0]),
			Position: strings.TrimSpace(rec[1]),
			Team:     strings.TrimSpace(rec[2]),
			ByeWeek:  bye,
			Price:    price,
		})
	}

	return entries, nil
}

// ReadTeams читает команды лиги; первая строка - заголовок
func ReadTeams(r io.Reader) ([]TeamEntry, error) {
	records, err := readRecords(r, 2)
	if err != nil {
		return nil, fmt.Errorf("read teams: %w", err)
	}

	entries := make([]TeamEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, TeamEntry{
			Name:  strings.TrimSpace(rec[0]),
			Owner: strings.TrimSpace(rec[1]),
		})
	}

	return entries, nil
}

func readRecords(r io.Reader, fields int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fields
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}

	return reader.ReadAll()
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
