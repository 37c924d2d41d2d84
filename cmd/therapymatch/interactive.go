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
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/poiesic/therapymatch"
	"github.com/poiesic/therapymatch/ai"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/taxonomy"
	"golang.org/x/term"
)

// askRequest fills req from a form. Values already set on req are the
// form's defaults.
func askRequest(in io.Reader, out io.Writer, tax *taxonomy.Taxonomy, req *therapymatch.Request) error {
	topicOptions := make([]huh.Option[string], 0, len(tax.Topics()))
	for _, t := range tax.Topics() {
		topicOptions = append(topicOptions, huh.NewOption(ai.TopicLabel(t.ID, core.LanguageGerman), t.ID))
	}

	var (
		topics   = req.Criteria.Topics
		text     = req.Text
		location = req.Criteria.Location
		gender   = string(req.Criteria.Gender)
		mode     = string(req.Criteria.SessionMode)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Topics").
				Description("What would you like to work on? Leave empty to describe it in your own words.").
				Options(topicOptions...).
				Value(&topics),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Your situation").
				Description("Describe what you are going through").
				Value(&text),
		).WithHideFunc(func() bool { return len(topics) > 0 }),
		huh.NewGroup(
			huh.NewInput().
				Title("Location").
				Description("City or postal code").
				Value(&location),
			huh.NewSelect[string]().
				Title("Therapist gender").
				Options(
					huh.NewOption("no preference", ""),
					huh.NewOption("female", string(core.GenderFemale)),
					huh.NewOption("male", string(core.GenderMale)),
					huh.NewOption("diverse", string(core.GenderDiverse)),
				).
				Value(&gender),
			huh.NewSelect[string]().
				Title("Sessions").
				Options(
					huh.NewOption("no preference", ""),
					huh.NewOption("online", string(core.SessionModeOnline)),
					huh.NewOption("in person", string(core.SessionModeInPerson)),
					huh.NewOption("both", string(core.SessionModeBoth)),
				).
				Value(&mode),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Accessible mode reads plain lines, which works for piped input.
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return fmt.Errorf("form failed: %w", err)
	}

	req.Criteria.Topics = topics
	req.Text = strings.TrimSpace(text)
	req.Criteria.Location = strings.TrimSpace(location)
	req.Criteria.Gender = core.Gender(gender)
	req.Criteria.SessionMode = core.SessionMode(mode)
	return nil
}
