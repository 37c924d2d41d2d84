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
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/therapymatch"
	"github.com/poiesic/therapymatch/ai"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/situation"
	"github.com/urfave/cli/v2"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format (table, json)",
		Value:   formatTable,
	}
}

func matchCmd() *cli.Command {
	return &cli.Command{
		Name:   "match",
		Usage:  "Rank stored therapist profiles for a request",
		Action: matchCommand,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "topic",
				Aliases: []string{"t"},
				Usage:   "Selected topic id, most important first (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "subtopic",
				Usage: "Selected subtopic id (repeatable)",
			},
			&cli.StringFlag{
				Name:  "text",
				Usage: "Free-text description of the situation, used when no topic is selected",
			},
			&cli.StringFlag{
				Name:  "location",
				Usage: "City or postal code",
			},
			&cli.StringFlag{
				Name:  "gender",
				Usage: "Preferred therapist gender (female, male, diverse)",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Session mode (online, in_person, both)",
			},
			&cli.StringSliceFlag{
				Name:  "insurance",
				Usage: "Insurance kind (public, private)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of profiles to show (0 for all)",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Ask for the request in a form",
			},
			formatFlag(),
		},
	}
}

func matchCommand(c *cli.Context) error {
	format := c.String("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	if c.Int("limit") < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	req := therapymatch.Request{
		Criteria: core.Criteria{
			Topics:      c.StringSlice("topic"),
			SubTopics:   c.StringSlice("subtopic"),
			Location:    c.String("location"),
			Gender:      core.Gender(c.String("gender")),
			SessionMode: core.SessionMode(c.String("mode")),
		},
		Text:  c.String("text"),
		Limit: c.Int("limit"),
	}
	for _, ins := range c.StringSlice("insurance") {
		req.Criteria.Insurance = append(req.Criteria.Insurance, core.Insurance(ins))
	}

	if c.Bool("interactive") {
		if err := askRequest(c.App.Reader, c.App.Writer, engine.Taxonomy(), &req); err != nil {
			return err
		}
	}

	res, err := engine.Match(c.Context, req)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if format == formatJSON {
		return writeJSON(c.App.Writer, res)
	}
	writeMatchTable(c.App.Writer, res)
	return nil
}

func classifyCmd() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "Suggest specialties for a free-text description",
		ArgsUsage: "<text>",
		Action:    classifyCommand,
		Flags:     []cli.Flag{formatFlag()},
	}
}

func classifyCommand(c *cli.Context) error {
	format := c.String("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("text is required")
	}

	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	result, err := engine.Classify(c.Context, text)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if format == formatJSON {
		return writeJSON(c.App.Writer, result)
	}

	w := c.App.Writer
	if a := result.Situation; a != nil && a.CrisisDetected() {
		writeCrisis(w, situation.CrisisResources(result.Language))
		return nil
	}
	fmt.Fprintf(w, "Language:   %s\n", result.Language)
	fmt.Fprintf(w, "Confidence: %s\n", result.Confidence)
	if len(result.Candidates) == 0 {
		fmt.Fprintln(w, "No specialty suggested.")
	} else {
		rows := make([][]string, len(result.Candidates))
		for i, cand := range result.Candidates {
			rows[i] = []string{string(cand.Specialty), fmt.Sprintf("%.2f", cand.Score)}
		}
		fmt.Fprintln(w)
		writeTable(w, []string{"SPECIALTY", "SIMILARITY"}, rows)
	}
	if result.Explanation != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, mutedStyle.Render(result.Explanation))
	}
	return nil
}

func intensityCmd() *cli.Command {
	return &cli.Command{
		Name:   "intensity",
		Usage:  "List intensity statements for topics, or score the selected ones",
		Action: intensityCommand,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "topic",
				Aliases:  []string{"t"},
				Usage:    "Topic id (repeatable)",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "statement",
				Aliases: []string{"s"},
				Usage:   "Id of a statement that applies (repeatable); without any, the statements are listed",
			},
			formatFlag(),
		},
	}
}

func intensityCommand(c *cli.Context) error {
	format := c.String("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	topics := c.StringSlice("topic")
	selected := c.StringSlice("statement")
	w := c.App.Writer

	if len(selected) == 0 {
		statements := engine.IntensityStatements(topics)
		if format == formatJSON {
			return writeJSON(w, statements)
		}
		rows := make([][]string, len(statements))
		for i, s := range statements {
			rows[i] = []string{s.ID, s.TopicID, strconv.Itoa(s.Weight), s.LabelKey}
		}
		writeTable(w, []string{"ID", "TOPIC", "WEIGHT", "LABEL KEY"}, rows)
		return nil
	}

	reading := engine.Intensity(selected, topics)
	if format == formatJSON {
		return writeJSON(w, reading)
	}
	fmt.Fprintf(w, "Score: %d\nLevel: %s\n", reading.Score, reading.Level)
	return nil
}

func taxonomyCmd() *cli.Command {
	return &cli.Command{
		Name:   "taxonomy",
		Usage:  "List the topics a person can select",
		Action: taxonomyCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Label language (de, en)",
				Value: string(core.LanguageGerman),
			},
			formatFlag(),
		},
	}
}

func taxonomyCommand(c *cli.Context) error {
	format := c.String("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	topics := engine.Taxonomy().Topics()
	if format == formatJSON {
		return writeJSON(c.App.Writer, topics)
	}

	lang := core.Language(c.String("lang"))
	rows := make([][]string, len(topics))
	for i, t := range topics {
		subs := make([]string, len(t.SubTopics))
		for j, s := range t.SubTopics {
			subs[j] = s.ID
		}
		rows[i] = []string{t.ID, ai.TopicLabel(t.ID, lang), string(t.Section), joinValues(t.Specialties), strings.Join(subs, ", ")}
	}
	writeTable(c.App.Writer, []string{"ID", "LABEL", "SECTION", "SPECIALTIES", "SUBTOPICS"}, rows)
	return nil
}
