// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/poiesic/therapymatch"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/situation"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
)

const maxCellWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q: must be %s or %s", format, formatTable, formatJSON)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTable prints rows in aligned columns. Cells wider than maxCellWidth
// are cut; widths are measured in terminal cells so umlauts and wide runes
// line up.
func writeTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], min(runewidth.StringWidth(cell), maxCellWidth))
		}
	}

	line := func(cells []string, style *lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			cell = runewidth.FillRight(runewidth.Truncate(cell, widths[i], "…"), widths[i])
			if style != nil {
				cell = style.Render(cell)
			}
			parts[i] = cell
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	line(headers, &headerStyle)
	for _, row := range rows {
		line(row, nil)
	}
}

func joinValues[T ~string](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func writeMatchTable(w io.Writer, res *therapymatch.MatchResult) {
	if res.Crisis != nil {
		writeCrisis(w, res.CrisisResources)
		return
	}

	if c := res.Classification; c != nil {
		fmt.Fprintf(w, "Suggested specialties: %s (%s confidence)\n", joinValues(c.Specialties()), c.Confidence)
		if c.Situation != nil && c.Situation.Summary != "" {
			fmt.Fprintln(w, mutedStyle.Render(c.Situation.Summary))
		}
		fmt.Fprintln(w)
	}

	if len(res.Results) == 0 {
		fmt.Fprintln(w, "No profiles stored.")
		return
	}

	rows := make([][]string, 0, len(res.Results))
	for i, r := range res.Results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			r.Profile.Name,
			r.Profile.Location.City,
			string(r.Profile.SessionMode),
			joinValues(r.Profile.Specialties),
		})
	}
	writeTable(w, []string{"#", "SCORE", "NAME", "CITY", "MODE", "SPECIALTIES"}, rows)
}

func writeCrisis(w io.Writer, resources []situation.Resource) {
	fmt.Fprintln(w, alertStyle.Render("Please reach out for immediate support."))
	fmt.Fprintln(w)
	for _, r := range resources {
		contact := r.Phone
		if r.Kind == situation.ResourceWeb {
			contact = r.URL
		}
		fmt.Fprintf(w, "  %s: %s (%s)\n", r.Name, contact, r.Available)
		if r.Description != "" {
			fmt.Fprintf(w, "    %s\n", mutedStyle.Render(r.Description))
		}
	}
}

func writeProfilesTable(w io.Writer, profiles []*core.Profile) {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(p.Id), 10),
			p.Slug,
			p.Name,
			p.Location.City,
			string(p.SessionMode),
			joinValues(p.Specialties),
		})
	}
	writeTable(w, []string{"ID", "SLUG", "NAME", "CITY", "MODE", "SPECIALTIES"}, rows)
}
