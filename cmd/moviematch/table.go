package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"moviematch/internal/catalog"
	"moviematch/internal/library"
	"moviematch/internal/recommend"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func entryRow(entry catalog.Entry) []string {
	return []string{
		entry.ID,
		entry.Title,
		strconv.Itoa(entry.Year),
		strings.Join(entry.Genres, ", "),
		fmt.Sprintf("%.1f", entry.Rating),
		strconv.FormatInt(entry.Votes, 10),
	}
}

func renderEntryTable(entries []catalog.Entry, numbered bool) string {
	headers := []string{"ID", "Title", "Year", "Genres", "Rating", "Votes"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight}
	if numbered {
		headers = append([]string{"#"}, headers...)
		aligns = append([]columnAlignment{alignRight}, aligns...)
	}

	rows := make([][]string, 0, len(entries))
	for i, entry := range entries {
		row := entryRow(entry)
		if numbered {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}

func renderWatchedTable(items []library.WatchedItem, index *catalog.Index) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		title := item.EntryID
		year := ""
		if entry, ok := index.FindByID(item.EntryID); ok {
			title = entry.Title
			year = strconv.Itoa(entry.Year)
		}
		rows = append(rows, []string{item.EntryID, title, year, item.Emotion, string(item.Sentiment)})
	}
	return renderTable(
		[]string{"ID", "Title", "Year", "Emotion", "Sentiment"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	)
}

func renderWatchLaterTable(items []library.WatchLaterItem, index *catalog.Index) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		title := item.EntryID
		year := ""
		if entry, ok := index.FindByID(item.EntryID); ok {
			title = entry.Title
			year = strconv.Itoa(entry.Year)
		}
		rows = append(rows, []string{item.EntryID, title, year})
	}
	return renderTable(
		[]string{"ID", "Title", "Year"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	)
}

func renderRecommendationTable(recs []recommend.Recommendation) string {
	rows := make([][]string, 0, len(recs))
	for i, rec := range recs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			rec.Entry.Title,
			strconv.Itoa(rec.Entry.Year),
			strings.Join(rec.Entry.Genres, ", "),
			fmt.Sprintf("%.1f", rec.Entry.Rating),
			strconv.Itoa(rec.Score()),
			matchMark(rec.EmotionMatch),
			matchMark(rec.YearMatch),
		})
	}
	return renderTable(
		[]string{"#", "Title", "Year", "Genres", "Rating", "Score", "Mood", "Era"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	)
}

func matchMark(matched bool) string {
	if matched {
		return "match"
	}
	return "-"
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

const (
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
