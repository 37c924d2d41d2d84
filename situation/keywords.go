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

package situation

import "github.com/poiesic/therapymatch/core"

// Keywords holds bilingual keyword lists.
type Keywords map[core.Language][]string

func kw(de, en []string) Keywords {
	return Keywords{core.LanguageGerman: de, core.LanguageEnglish: en}
}

// CrisisType classifies an acute risk signal.
type CrisisType string

const (
	CrisisSuicidal    CrisisType = "suicidal"
	CrisisSelfHarm    CrisisType = "self_harm"
	CrisisAcuteDanger CrisisType = "acute_danger"
)

// crisisOrder is the order crisis types are checked in.
var crisisOrder = []CrisisType{CrisisSuicidal, CrisisSelfHarm, CrisisAcuteDanger}

// BundledTopicKeywords returns the keyword table per topic id.
func BundledTopicKeywords() map[string]Keywords {
	return map[string]Keywords{
		"depression": kw(
			[]string{"traurig", "traurigkeit", "hoffnungslos", "antriebslos", "antrieb", "müde", "leer", "sinnlos",
				"depressiv", "depression", "niedergeschlagen", "freudlos", "motivationslos", "interesse verloren",
				"weinen", "tränen", "schwermut", "lebensfreude", "wertlos", "nutzlos"},
			[]string{"sad", "sadness", "hopeless", "no energy", "tired", "empty", "meaningless", "depressed",
				"depression", "joyless", "no motivation", "lost interest", "nothing matters", "hard to get up",
				"crying", "tears", "gloomy", "worthless", "useless"},
		),
		"anxiety": kw(
			[]string{"angst", "ängste", "panik", "panikattacke", "sorgen", "nervös", "unruhig", "ängstlich", "phobie",
				"besorgt", "anspannung", "herzrasen", "atemnot", "schwindel", "zittern", "gedankenkreisen", "grübeln",
				"vermeiden", "soziale angst"},
			[]string{"anxiety", "anxious", "panic", "panic attack", "worry", "worried", "nervous", "phobia", "fear",
				"fearful", "tense", "racing heart", "breathless", "dizzy", "trembling", "overthinking", "ruminating",
				"catastrophizing", "avoid", "social anxiety"},
		),
		"trauma": kw(
			[]string{"trauma", "traumatisch", "ptbs", "flashback", "missbrauch", "misshandlung", "gewalt", "unfall",
				"schock", "albtraum", "albträume", "erinnerungen", "übergriff", "vernachlässigung", "dissoziation",
				"trigger", "nicht vergessen", "krieg"},
			[]string{"trauma", "traumatic", "ptsd", "flashback", "abuse", "violence", "accident", "shock", "nightmare",
				"memories", "assault", "neglect", "numb", "dissociation", "trigger", "reliving", "can't forget",
				"haunts me", "war"},
		),
		"relationships": kw(
			[]string{"beziehung", "partner", "partnerin", "partnerschaft", "ehe", "trennung", "scheidung", "konflikt",
				"intimität", "vertrauen", "eifersucht", "fremdgehen", "untreue", "nähe", "bindungsangst", "dating",
				"verlassen", "streit", "toxisch"},
			[]string{"relationship", "partner", "partnership", "marriage", "separation", "divorce", "conflict",
				"intimacy", "trust", "jealousy", "cheating", "betrayal", "infidelity", "closeness",
				"fear of commitment", "dating", "abandoned", "arguing", "toxic"},
		),
		"family": kw(
			[]string{"familie", "familiär", "eltern", "mutter", "vater", "kind", "kinder", "erziehung", "geschwister",
				"großeltern", "schwiegereltern", "familienkonflikt", "patchwork", "pflegekind", "angehörige"},
			[]string{"family", "parents", "mother", "father", "child", "children", "parenting", "sibling",
				"grandparents", "in-laws", "family conflict", "blended family", "stepparent", "foster", "caregiver"},
		),
		"burnout": kw(
			[]string{"burnout", "burn-out", "ausgebrannt", "erschöpft", "erschöpfung", "überarbeitet", "überlastung",
				"work-life", "keine kraft", "zusammenbruch", "perfektionismus", "leistungsdruck", "dauerstress",
				"nicht abschalten", "arbeit", "chef"},
			[]string{"burnout", "burned out", "exhausted", "exhaustion", "overworked", "overload", "work-life",
				"at my limit", "breakdown", "perfectionism", "constant stress", "can't switch off",
				"vacation doesn't help", "cynical", "job", "work", "boss"},
		),
		"addiction": kw(
			[]string{"sucht", "süchtig", "abhängig", "abhängigkeit", "alkohol", "trinken", "drogen", "konsum",
				"entzug", "spielsucht", "glücksspiel", "casino", "rückfall", "nüchtern", "kiffen", "kokain", "tabletten"},
			[]string{"addiction", "addicted", "dependency", "alcohol", "drinking", "drugs", "substance", "withdrawal",
				"gambling", "casino", "relapse", "sober", "craving", "weed", "cocaine", "pills"},
		),
		"eating_disorders": kw(
			[]string{"essstörung", "essen", "magersucht", "anorexie", "bulimie", "binge", "essanfall", "erbrechen",
				"gewicht", "körperbild", "kalorien", "diät", "hungern", "übergewicht", "waage"},
			[]string{"eating disorder", "eating", "anorexia", "bulimia", "binge", "binge eating", "purging",
				"vomiting", "weight", "body image", "calories", "diet", "starving", "overweight", "obesity"},
		),
		"adhd": kw(
			[]string{"adhd", "adhs", "konzentration", "konzentrationsprobleme", "aufmerksamkeit", "impulsiv",
				"unaufmerksam", "fokus", "abgelenkt", "vergesslich", "chaotisch", "unorganisiert", "prokrastination",
				"aufschieben", "hyperaktiv", "innere unruhe"},
			[]string{"adhd", "concentration", "attention", "impulsive", "impulsivity", "inattentive", "focus",
				"distracted", "forgetful", "chaotic", "disorganized", "procrastination", "procrastinating",
				"hyperactive", "inner restlessness", "racing thoughts"},
		),
		"self_care": kw(
			[]string{"selbstwert", "selbstwertgefühl", "selbstbewusstsein", "selbstvertrauen", "grenzen setzen",
				"selbstfürsorge", "selbstliebe", "minderwertig", "nicht gut genug", "people pleaser", "nein sagen",
				"eigene bedürfnisse"},
			[]string{"self-worth", "self-esteem", "self-confidence", "confidence", "boundaries", "self-care",
				"self-love", "inferior", "not good enough", "people pleaser", "saying no", "own needs"},
		),
		"stress": kw(
			[]string{"stress", "stressig", "druck", "prüfung", "prüfungsangst", "leistung", "überforderung",
				"überlastet", "deadline", "zeitdruck", "studium", "schule", "arbeitsstress", "keine zeit",
				"nicht entspannen"},
			[]string{"stress", "stressful", "pressure", "exam", "test anxiety", "performance", "overwhelmed",
				"overloaded", "deadline", "time pressure", "school", "university", "work stress", "no time",
				"can't relax"},
		),
		"sleep": kw(
			[]string{"schlaf", "schlafstörung", "schlafprobleme", "insomnie", "einschlafen", "durchschlafen",
				"albtraum", "müdigkeit", "nicht schlafen", "wachliegen", "schlafmittel", "schlaflos"},
			[]string{"sleep", "sleep disorder", "insomnia", "falling asleep", "staying asleep", "nightmare",
				"tiredness", "daytime fatigue", "can't sleep", "lying awake", "sleeping pills", "sleepless"},
		),
		"bereavement": kw(
			[]string{"trauer", "verlust", "gestorben", "verstorben", "abschied", "vermissen", "beerdigung",
				"trauerarbeit", "nie wieder"},
			[]string{"grief", "grieving", "died", "passed away", "mourning", "funeral", "bereavement", "miss them",
				"never again"},
		),
		"isolation": kw(
			[]string{"einsam", "einsamkeit", "allein", "isoliert", "keine freunde", "ausgegrenzt",
				"nicht dazugehören", "keiner versteht mich"},
			[]string{"lonely", "loneliness", "alone", "isolated", "no friends", "excluded", "don't belong",
				"no one understands", "disconnected"},
		),
		"life_transitions": kw(
			[]string{"veränderung", "neuanfang", "lebenskrise", "midlife", "umbruch", "neuorientierung", "umzug",
				"ruhestand", "rente", "jobwechsel"},
			[]string{"transition", "new beginning", "life crisis", "midlife", "reorientation", "moving",
				"relocated", "retirement", "retired", "career change"},
		),
	}
}

// BundledSubTopicKeywords returns the keyword table per subtopic id.
func BundledSubTopicKeywords() map[string]Keywords {
	return map[string]Keywords{
		"social_anxiety": kw(
			[]string{"soziale angst", "sozialangst", "unter menschen", "blamieren", "peinlich", "präsentation", "smalltalk"},
			[]string{"social anxiety", "social situations", "crowd", "embarrass", "judged", "public speaking", "small talk"},
		),
		"panic_attacks": kw(
			[]string{"panikattacke", "herzrasen", "atemnot", "ersticken", "ohnmacht", "hyperventilieren"},
			[]string{"panic attack", "racing heart", "can't breathe", "suffocating", "faint", "hyperventilate"},
		),
		"generalized_anxiety": kw(
			[]string{"ständig sorgen", "was wenn", "angst vor allem", "zukunftsangst"},
			[]string{"constant worry", "what if", "anxious about everything", "future anxiety"},
		),
		"chronic_sadness": kw(
			[]string{"immer traurig", "ständig traurig", "tiefe traurigkeit", "keine freude mehr", "innerlich leer"},
			[]string{"always sad", "constantly sad", "deep sadness", "no joy", "emotionally empty"},
		),
		"lack_motivation": kw(
			[]string{"keine motivation", "kein antrieb", "nicht aufstehen", "im bett bleiben", "kraftlos"},
			[]string{"no motivation", "no drive", "can't get up", "stay in bed", "can't do anything"},
		),
		"grief": kw(
			[]string{"trauer", "gestorben", "verstorben", "beerdigung", "trauerarbeit"},
			[]string{"grief", "died", "passed away", "mourning", "funeral"},
		),
		"loneliness": kw(
			[]string{"einsam", "einsamkeit", "isoliert", "keine freunde"},
			[]string{"lonely", "loneliness", "isolated", "no friends"},
		),
		"couple_conflicts": kw(
			[]string{"streit", "streiten", "immer streit", "eskaliert", "anschreien", "vorwürfe"},
			[]string{"fighting", "arguing", "always fighting", "escalate", "yelling", "blame"},
		),
		"breakup": kw(
			[]string{"trennung", "getrennt", "schluss gemacht", "liebeskummer", "herzschmerz"},
			[]string{"breakup", "broke up", "dumped", "heartbreak", "heartache", "can't get over"},
		),
		"ptsd": kw(
			[]string{"ptbs", "posttraumatisch", "flashbacks", "wiedererlebend", "bilder im kopf"},
			[]string{"ptsd", "post-traumatic", "flashbacks", "reliving", "images in my head"},
		),
		"childhood_trauma": kw(
			[]string{"kindheit", "kindheitstrauma", "als kind", "vernachlässigt", "geschlagen"},
			[]string{"childhood", "childhood trauma", "as a child", "neglected", "beaten", "growing up"},
		),
		"work_stress": kw(
			[]string{"arbeitsstress", "überstunden", "vorgesetzter", "kollegen", "zu viel arbeit"},
			[]string{"work stress", "job stress", "overtime", "supervisor", "colleagues", "too much work"},
		),
		"exhaustion": kw(
			[]string{"erschöpft", "erschöpfung", "ausgebrannt", "völlig fertig", "nicht mehr können"},
			[]string{"exhausted", "exhaustion", "burned out", "completely done", "no energy left"},
		),
		"alcohol": kw(
			[]string{"alkohol", "betrunken", "saufen", "kater", "alkoholiker"},
			[]string{"alcohol", "drunk", "booze", "hangover", "alcoholic"},
		),
		"drugs": kw(
			[]string{"drogen", "kiffen", "cannabis", "kokain", "ecstasy"},
			[]string{"drugs", "weed", "cannabis", "cocaine", "ecstasy"},
		),
		"gaming": kw(
			[]string{"zocken", "videospiele", "computerspiele", "nächte durchspielen"},
			[]string{"video games", "computer games", "online games", "playing all night"},
		),
		"binge_eating": kw(
			[]string{"essanfall", "fressanfall", "heimlich essen", "emotional essen"},
			[]string{"binge eating", "eating uncontrollably", "eating in secret", "emotional eating"},
		),
		"concentration": kw(
			[]string{"konzentrationsprobleme", "nicht konzentrieren", "ablenkung"},
			[]string{"concentration problems", "can't concentrate", "distraction"},
		),
		"insomnia": kw(
			[]string{"schlaflos", "insomnie", "nicht einschlafen", "nicht durchschlafen", "wachliegen"},
			[]string{"sleepless", "insomnia", "can't fall asleep", "can't stay asleep", "lying awake"},
		),
		"exam_anxiety": kw(
			[]string{"prüfungsangst", "klausur", "examen", "durchfallen", "blackout"},
			[]string{"exam anxiety", "finals", "failing", "blackout"},
		),
	}
}

// BundledCrisisKeywords returns the crisis keyword table.
func BundledCrisisKeywords() map[CrisisType]Keywords {
	return map[CrisisType]Keywords{
		CrisisSuicidal: kw(
			[]string{"suizid", "selbstmord", "mich umbringen", "das leben nehmen", "nicht mehr leben",
				"will sterben", "möchte sterben", "sterben wollen", "dem leben ein ende", "allem ein ende",
				"keinen sinn mehr zu leben", "wäre besser tot", "besser ohne mich", "welt ohne mich",
				"abschiedsbrief", "sachen verschenken", "wie man stirbt"},
			[]string{"suicide", "suicidal", "kill myself", "end my life", "take my life", "don't want to live",
				"want to die", "wish i was dead", "better off dead", "end it all", "no reason to live",
				"no point living", "world without me", "better off without me", "suicide note",
				"giving away my things", "how to die"},
		),
		CrisisSelfHarm: kw(
			[]string{"selbstverletzung", "selbst verletzen", "mich verletzen", "ritzen", "mich schneiden",
				"mir weh tun", "mir schmerzen zufügen", "mich bestrafen", "mich verbrennen"},
			[]string{"self-harm", "self harm", "hurt myself", "hurting myself", "cut myself", "cutting myself",
				"cause myself pain", "make myself bleed", "punish myself", "burn myself"},
		),
		CrisisAcuteDanger: kw(
			[]string{"mir was antun", "mir etwas antun", "halte es nicht mehr aus", "ertrage es nicht mehr",
				"kann nicht mehr weitermachen", "kein ausweg mehr", "keinen ausweg", "keine hoffnung mehr",
				"niemand kann mir helfen"},
			[]string{"going to hurt myself", "about to hurt myself", "harm myself tonight",
				"can't take it anymore", "can't bear it anymore", "can't go on", "no way out",
				"no hope left", "nobody can help"},
		),
	}
}

// BundledIntensityMarkers returns the markers for high and low intensity.
func BundledIntensityMarkers() (high, low Keywords) {
	high = kw(
		[]string{"dringend", "sofort", "kann nicht mehr", "halte nicht mehr aus", "verzweifelt", "hoffnungslos",
			"keinen ausweg", "zusammenbruch", "krise", "notfall", "jeden tag", "unerträglich", "hölle",
			"gefangen", "akut", "am limit"},
		[]string{"urgent", "immediately", "can't anymore", "can't take it", "can't handle", "desperate",
			"hopeless", "no way out", "unbearable", "breakdown", "crisis", "emergency", "every day",
			"extreme", "hell", "trapped", "acute", "at my limit"},
	)
	low = kw(
		[]string{"manchmal", "gelegentlich", "ab und zu", "leicht", "ein bisschen", "kleinigkeit", "optimieren",
			"verbessern", "wachsen", "neugierig", "ausprobieren", "präventiv", "vorsorge", "coaching", "potenzial"},
		[]string{"sometimes", "occasionally", "once in a while", "slightly", "a little", "minor", "optimize",
			"improve", "grow", "curious", "try out", "preventive", "prevention", "coaching", "potential"},
	)
	return high, low
}
