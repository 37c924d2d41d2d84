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

package semantic

import "github.com/poiesic/therapymatch/core"

// Entry is the phrase corpus of one specialty.
type Entry struct {
	Specialty core.Specialty
	Label     map[core.Language]string
	Phrases   map[core.Language][]string
}

// BundledCorpus returns a fresh copy of the bundled bilingual corpus.
func BundledCorpus() []Entry {
	return []Entry{
		{
			Specialty: core.SpecialtyDepression,
			Label:     labels("Depression", "Depression"),
			Phrases: map[core.Language][]string{
				core.LanguageGerman: {
					"Ich fühle mich traurig und hoffnungslos",
					"Keine Motivation mehr, alles fühlt sich sinnlos an",
					"Antriebslosigkeit und ständige Müdigkeit",
					"Ich kann mich zu nichts mehr aufraffen",
					"Alles erscheint grau und leer",
					"Ich habe keine Freude mehr an Dingen die mir früher Spaß gemacht haben",
					"Ich fühle mich innerlich leer und taub",
					"Negative Gedanken kreisen ständig",
				},
				core.LanguageEnglish: {
					"I feel sad and hopeless",
					"No motivation, everything feels meaningless",
					"Lack of energy and constant fatigue",
					"I can't bring myself to do anything",
					"Everything feels gray and empty",
					"I don't enjoy things that used to make me happy",
					"I feel emotionally numb and empty inside",
					"Negative thoughts keep circling",
				},
			},
		},
		{
			Specialty: core.SpecialtyAnxiety,
			Label:     labels("Angst & Panik", "Anxiety & Panic"),
			Phrases: map[core.Language][]string{
				core.LanguageGerman: {
					"Ich habe ständig Angst und mache mir Sorgen",
					"Panikattacken mit Herzrasen und Atemnot",
					"Ich vermeide Situationen aus Angst",
					"Ständiges Grübeln über schlimme Dinge die passieren könnten",
					"Soziale Situationen machen mir Angst",
					"Ich fühle mich nervös und angespannt",
					"Ich habe Angst vor bestimmten Dingen oder Situationen",
					"Gedankenkreisen und Katastrophendenken",
				},
				core.LanguageEnglish: {
					"I'm constantly anxious and worried",
					"Panic attacks with racing heart and shortness of breath",
					"I avoid situations because of fear",
					"Constantly worrying about bad things that could happen",
					"Social situations make me anxious",
					"I feel nervous and tense",
					"I'm afraid of certain things or situations",
					"Overthinking and catastrophizing",
				},
			},
		},
		{
			Specialty: core.SpecialtyTrauma,
			Label:     labels("Trauma", "Trauma"),
			Phrases: map[core.Language][]string{
				core.LanguageGerman: {
					"Ich habe traumatische Erfahrungen die mich belasten",
					"Flashbacks und Erinnerungen an schlimme Ereignisse",
					"Kindheitstrauma das mich noch heute beeinflusst",
					"Ich wurde missbraucht oder misshandelt",
					"Albträume von vergangenen Erlebnissen",
					"Ich fühle mich durch bestimmte Dinge getriggert",
					"Ein Unfall oder Verlust den ich nicht verarbeitet habe",
					"Ich kann bestimmte Erinnerungen nicht loslassen",
				},
				core.LanguageEnglish: {
					"I have traumatic experiences that burden me",
					"Flashbacks and memories of terrible events",
					"Childhood trauma that still affects me today",
					"I was abused or mistreated",
					"Nightmares about past experiences",
					"I feel triggered by certain things",
					"An accident or loss I haven't processed",
					"I can't let go of certain memories",
				},
			},
		},
		{
			Specialty: core.SpecialtyRelationships,
			Label:     labels("Beziehungen", "Relationships"),
			Phrases: map[core.Language][]string{
				core.LanguageGerman: {
					"Probleme in meiner Beziehung oder Partnerschaft",
					"Kommunikationsprobleme mit meinem Partner",
					"Ich wurde verlassen und komme nicht darüber hinweg",
					"Eifersucht und Vertrauensprobleme",
					"Ich habe Angst vor Nähe und Bindung",
					"Konflikte in der Familie belasten mich",
					"Schwierigkeiten beim Dating und Kennenlernen",
					"Trennung oder Scheidung verarbeiten",
				},
				core.LanguageEnglish: {
					"Problems in my relationship or partnership",
					"Communication issues with my partner",
					"I was left and can't get over it",
					"Jealousy and trust issues",
					"I'm afraid of closeness and commitment",
					"Family conflicts burden me",
					"Difficulties with dating and meeting people",
					"Processing separation or divorce",
				},
			},
		},
		{
			Specialty: core.SpecialtyBurnout,
			Label:     labels("Burnout & Stress", "Burnout & Stress"),
			Phrases: map[core.Language][]string{
				core.LanguageGerman: {
					"Ich bin völlig ausgebrannt und erschöpft",
					"Arbeitsstress und Überlastung",
					"Work-Life-Balance stimmt nicht mehr",
					"Ich kann nicht mehr abschalten",
					"Dauerstress und keine Erholung",
					"Ich funktioniere nur noch",
					"Chronische Erschöpfung trotz Schlaf",
					"Leistungsdruck und Perfektionismus",
				},
				core.LanguageEnglish: {
					"I'm completely burned out and exhausted",
					"Work stress and overload",
					"Work-life balance is off",
					"I can't switch off anymore",
					"Constant stress and no recovery",
					"I'm just functioning",
					"Chronic exhaustion despite sleep",
					"Performance pressure and perfectionism",
				},
			},
		},
		{
			Specialty: core.SpecialtyAddiction,
			Label:     labels("Sucht", "Addiction"),
			Phrases: map[core.Language][]string{
				core.LanguageGerman: {
					"Ich habe ein Problem mit Alkohol",
					"Drogenkonsum der außer Kontrolle geraten ist",
					"Spielsucht und Glücksspiel",
					"Internetsucht oder Gaming-Sucht",
					"Ich kann nicht aufhören obwohl ich weiß dass es mir schadet",
					"Abhängigkeit von Medikamenten",
					"Suchtverhalten das mein Leben beeinflusst",
					"Entzugserscheinungen wenn ich nicht konsumiere",
				},
				core.LanguageEnglish: {
					"I have a problem with alcohol",
					"Drug use that has gotten out of control",
					"Gambling addiction",
					"Internet addiction or gaming addiction",
					"I can't stop even though I know it's hurting me",
					"Dependence on medication",
					"Addictive behavior affecting my life",
					"Withdrawal symptoms when I don't use",
				},
			},
		},
		{
			Specialty: core.SpecialtyEatingDisorders,
			Label:     labels("Essstörungen", "Eating Disorders"),
			Phrases: map[core.Language][]string{
				core.LanguageGerman: {
					"Probleme mit dem Essen und meinem Körperbild",
					"Ich esse zu wenig oder hungere mich",
					"Essanfälle die ich nicht kontrollieren kann",
					"Ich erbreche nach dem Essen",
					"Zwanghaftes Kalorienzählen",
					"Ich hasse meinen Körper",
					"Gestörtes Verhältnis zum Essen",
					"Essen als Bewältigungsstrategie",
				},
				core.LanguageEnglish: {
					"Problems with eating and my body image",
					"I eat too little or starve myself",
					"Binge eating I can't control",
					"I throw up after eating",
					"Compulsive calorie counting",
					"I hate my body",
					"Disordered relationship with food",
					"Eating as a coping mechanism",
				},
			},
		},
		{
			Specialty: core.SpecialtyADHD,
			Label:     labels("ADHS", "ADHD"),
			Phrases: map[core.Language][]string{
				core.LanguageGerman: {
					"Konzentrationsprobleme und Ablenkbarkeit",
					"Ich kann mich nicht fokussieren",
					"Impulsivität und vorschnelle Entscheidungen",
					"Chaos und Unorganisiertheit im Alltag",
					"Prokrastination und Aufschieben",
					"Hyperaktivität oder innere Unruhe",
					"Vergesslichkeit und Zerstreutheit",
					"Schwierigkeiten Dinge zu Ende zu bringen",
				},
				core.LanguageEnglish: {
					"Concentration problems and distractibility",
					"I can't focus",
					"Impulsivity and hasty decisions",
					"Chaos and disorganization in daily life",
					"Procrastination and putting things off",
					"Hyperactivity or inner restlessness",
					"Forgetfulness and scatteredness",
					"Difficulty finishing things",
				},
			},
		},
	}
}

func labels(de, en string) map[core.Language]string {
	return map[core.Language]string{core.LanguageGerman: de, core.LanguageEnglish: en}
}
