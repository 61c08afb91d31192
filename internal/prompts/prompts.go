// Package prompts holds the built-in coaching prompt repository. The demo
// build ships the eight most used prompts of the full library.
package prompts

import (
	"sort"
)

// Prompt is one ready-made coaching intervention
type Prompt struct {
	Key         string `json:"key"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Phase       string `json:"phase"`
	Type        string `json:"type"`
	Content     string `json:"content"`
}

// Categories
const (
	CategoryGeissler   = "Geissler Triadisch"
	CategoryEinzel     = "Einzelberatung"
	CategorySystemisch = "Systemisches Coaching"
	CategoryKommunik   = "Kommunikation"
)

var library = map[string]Prompt{
	"GT1": {
		Key:         "GT1",
		Category:    CategoryGeissler,
		Title:       "Problem-Exploration",
		Description: "Systematische Problemanalyse nach Geissler",
		Phase:       "A - Problem",
		Type:        "Analyse",
		Content: `Lass uns dein Anliegen systematisch erkunden:

1. PROBLEM-BESCHREIBUNG:
- Beschreibe dein Anliegen in 2-3 Sätzen
- Was genau bereitet dir Schwierigkeiten?
- Seit wann besteht diese Situation?

2. AUSWIRKUNGEN:
- Wie wirkt sich das Problem auf dich aus?
- Welche Bereiche deines Lebens sind betroffen?
- Was passiert, wenn sich nichts ändert?

3. BISHERIGE LÖSUNGSVERSUCHE:
- Was hast du bereits versucht?
- Was hat funktioniert/nicht funktioniert?
- Welche Ressourcen stehen dir zur Verfügung?`,
	},
	"GT2": {
		Key:         "GT2",
		Category:    CategoryGeissler,
		Title:       "Ziel-Definition",
		Description: "Klare Zielformulierung und Erfolgskriterien",
		Phase:       "B - Ziel",
		Type:        "Zielsetzung",
		Content: `Lass uns dein Ziel klar definieren:

1. ZIEL-VISION:
- Wie soll die Situation idealerweise aussehen?
- Was möchtest du erreichen?
- Woran merkst du, dass du dein Ziel erreicht hast?

2. SMART-CHECK:
- Spezifisch: Ist dein Ziel konkret formuliert?
- Messbar: Wie kannst du Fortschritte messen?
- Attraktiv: Warum ist dieses Ziel wichtig für dich?
- Realistisch: Ist es in deiner Macht erreichbar?
- Terminiert: Bis wann möchtest du es erreichen?

3. MOTIVATION:
- Was treibt dich zu diesem Ziel?
- Welche Werte stehen dahinter?
- Was gewinnst du durch die Zielerreichung?`,
	},
	"GT3": {
		Key:         "GT3",
		Category:    CategoryGeissler,
		Title:       "Lösungs-Entwicklung",
		Description: "Kreative Lösungsfindung und Handlungsplanung",
		Phase:       "C - Lösung",
		Type:        "Lösungsentwicklung",
		Content: `Entwickeln wir gemeinsam Lösungsansätze:

1. BRAINSTORMING:
- Welche Möglichkeiten siehst du?
- Was würdest du einem Freund in derselben Situation raten?
- Welche verrückte Idee hättest du, wenn alles möglich wäre?

2. BEWERTUNG:
- Welche Optionen sprechen dich am meisten an?
- Was sind Vor- und Nachteile der verschiedenen Ansätze?
- Welche Option passt am besten zu deinen Werten?

3. HANDLUNGSPLAN:
- Welchen ersten kleinen Schritt kannst du heute machen?
- Wer oder was kann dich dabei unterstützen?
- Wie überprüfst du deinen Fortschritt?`,
	},
	"EB1": {
		Key:         "EB1",
		Category:    CategoryEinzel,
		Title:       "Ressourcen-Aktivierung",
		Description: "Stärken und Fähigkeiten bewusst machen",
		Phase:       "B - Ziel",
		Type:        "Ressourcenarbeit",
		Content: `Lass uns deine Stärken und Ressourcen entdecken:

1. PERSÖNLICHE STÄRKEN:
- Was sind deine größten Talente und Fähigkeiten?
- Wofür bekommst du häufig Komplimente?
- Was gelingt dir leicht, was anderen schwerfällt?

2. ERFOLGS-ERINNERUNGEN:
- Beschreibe eine Situation, in der du erfolgreich warst
- Was hast du damals getan? Welche Eigenschaften gezeigt?
- Wie hast du dich dabei gefühlt?

3. RESSOURCEN-TRANSFER:
- Wie kannst du diese Stärken für dein aktuelles Anliegen nutzen?
- Welche Erfolgsmuster lassen sich übertragen?
- Wer aus deinem Umfeld kann dich unterstützen?`,
	},
	"EB2": {
		Key:         "EB2",
		Category:    CategoryEinzel,
		Title:       "Glaubenssätze prüfen",
		Description: "Hinderliche Überzeugungen identifizieren und wandeln",
		Phase:       "A - Problem",
		Type:        "Selbstreflexion",
		Content: `Erkunden wir deine inneren Überzeugungen:

1. INNERE STIMME:
- Was sagst du dir selbst über diese Situation?
- Welche Gedanken gehen dir immer wieder durch den Kopf?
- Was "darf" oder "kann" man deiner Meinung nach (nicht)?

2. URSPRUNG:
- Woher könnten diese Überzeugungen stammen?
- Wer hat dir das mal gesagt?
- In welchem Kontext haben sie vielleicht gestimmt?

3. REALITÄTS-CHECK:
- Ist diese Überzeugung heute noch hilfreich?
- Welche Gegenbeispiele kennst du?
- Welche neue, förderliche Überzeugung würdest du gern haben?`,
	},
	"SC1": {
		Key:         "SC1",
		Category:    CategorySystemisch,
		Title:       "Perspektivwechsel",
		Description: "Situation aus verschiedenen Blickwinkeln betrachten",
		Phase:       "A - Problem",
		Type:        "Systemische Frage",
		Content: `Betrachten wir die Situation aus verschiedenen Perspektiven:

1. DEINE SICHT:
- Wie siehst du die Situation?
- Was ist für dich das Hauptproblem?
- Welche Gefühle löst das bei dir aus?

2. ANDERE PERSPEKTIVEN:
- Wie würde [wichtige Person] die Situation sehen?
- Was würde ein neutraler Beobachter wahrnehmen?
- Wie könnte jemand, der dich liebt, die Lage einschätzen?

3. SYSTEM-BLICK:
- Welche Rolle spielst du in diesem System?
- Wer ist noch beteiligt und wie?
- Was würde sich ändern, wenn du dich anders verhältst?`,
	},
	"SC2": {
		Key:         "SC2",
		Category:    CategorySystemisch,
		Title:       "Wunderfrage",
		Description: "Lösungsorientierte Zukunftsvision entwickeln",
		Phase:       "B - Ziel",
		Type:        "Lösungsfokus",
		Content: `Stell dir vor, ein Wunder geschieht über Nacht:

1. DIE WUNDERFRAGE:
- Du wachst morgen auf und dein Problem ist gelöst
- Woran merkst du als erstes, dass sich etwas verändert hat?
- Wie verhältst du dich anders?
- Was denkst und fühlst du?

2. UMFELD-REAKTION:
- Wie reagieren andere auf die Veränderung?
- Was sagen sie zu dir?
- Wie verhalten sie sich dir gegenüber?

3. KLEINE WUNDER:
- Welche Teile dieses "Wunders" existieren bereits?
- Was kannst du heute tun, um dem Wunder näher zu kommen?
- Welcher kleinste Schritt wäre möglich?`,
	},
	"KO1": {
		Key:         "KO1",
		Category:    CategoryKommunik,
		Title:       "Schwierige Gespräche vorbereiten",
		Description: "Strukturierte Vorbereitung für herausfordernde Dialoge",
		Phase:       "C - Lösung",
		Type:        "Gesprächsführung",
		Content: `Bereiten wir dein schwieriges Gespräch vor:

1. GESPRÄCHS-ZIEL:
- Was möchtest du erreichen?
- Welches Ergebnis wäre für dich zufriedenstellend?
- Was ist dein Plan B, falls das nicht gelingt?

2. ICH-BOTSCHAFTEN:
- Wie kannst du deine Sicht beschreiben, ohne anzuklagen?
- "Mir ist aufgefallen..." / "Ich empfinde..." / "Mir ist wichtig..."
- Welche Gefühle und Bedürfnisse stehen dahinter?

3. GESPRÄCHS-ABLAUF:
- Wie steigst du ein? (Positiver Einstieg)
- Wie strukturierst du deine Punkte?
- Wie gehst du mit Widerstand oder Emotionen um?
- Wie beendest du das Gespräch konstruktiv?`,
	},
}

// Get returns the prompt stored under key.
func Get(key string) (Prompt, bool) {
	p, ok := library[key]
	return p, ok
}

// All returns every prompt, sorted by key.
func All() []Prompt {
	out := make([]Prompt, 0, len(library))
	for _, p := range library {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ByCategory returns the prompts of one category, sorted by key. An empty
// category returns everything.
func ByCategory(category string) []Prompt {
	if category == "" {
		return All()
	}
	var out []Prompt
	for _, p := range library {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Categories returns the distinct category names, sorted.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range library {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Stats maps each category to its prompt count.
func Stats() map[string]int {
	out := make(map[string]int)
	for _, p := range library {
		out[p.Category]++
	}
	return out
}
