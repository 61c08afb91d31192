package ai

import "strings"

// Fallback generates a rule-based coaching reply from the dialog text.
// It keys on the coaching method mentioned in the conversation.
func Fallback(dialog string) string {
	lower := strings.ToLower(dialog)

	switch {
	case strings.Contains(lower, "gt1") || strings.Contains(lower, "anliegen"):
		return `Vielen Dank für das Vertrauen, dass Sie Ihr Anliegen mit mir teilen. Was Sie beschreiben, zeigt wichtige Reflexions- und Entwicklungsbereitschaft.

Ich höre heraus, dass Sie bereit sind, strukturiert an diesem Thema zu arbeiten. Das ist bereits eine wertvolle Ressource.

Zur Vertiefung: Wenn Sie Ihre Situation in einem Bild beschreiben müssten - welches Bild würden Sie wählen? Was würde dieses Bild über Ihr Anliegen aussagen?`

	case strings.Contains(lower, "wunderfrage") || strings.Contains(lower, "wunder"):
		return `Diese Wunderfrage öffnet wichtige Perspektiven! Ihre Antwort zeigt mir, dass Sie bereits eine klare Vorstellung von der gewünschten Zukunft haben.

Nächster Schritt: Was von dem, was Sie im "Wunder-Zustand" beschrieben haben, ist heute - auch nur in kleinen Ansätzen - bereits vorhanden?`

	case strings.Contains(lower, "ressourcen") || strings.Contains(lower, "stärken"):
		return `Ich bin beeindruckt von den Ressourcen, die Sie mitbringen! Sie unterschätzen vermutlich Ihre Fähigkeiten.

Frage zur Vertiefung: Wie könnten Sie diese Stärke noch gezielter für Ihr aktuelles Anliegen einsetzen? Was würde sich dadurch verändern?`

	case strings.Contains(lower, "hindernis") || strings.Contains(lower, "widerstand"):
		return `Danke für diese ehrliche Reflexion über mögliche Hindernisse. Das zeigt Ihre realistische Einschätzung und Vorausplanung.

Ich sehe in dem, was Sie als "Hindernis" beschreiben, auch einen Teil von Ihnen, der Sie schützen möchte. Jeder Widerstand hat meist eine positive Absicht.

Lassen Sie uns erkunden: Wenn dieses Hindernis Ihr Freund wäre - was würde es Ihnen Gutes tun wollen? Wovor möchte es Sie bewahren?`

	default:
		return `Ich schätze die Offenheit und Tiefe unseres Gesprächs. Ihre Bereitschaft zur Reflexion und Ihr Mut, sich diesen Fragen zu stellen, sind bemerkenswert.

Was ich in unserem Dialog wahrnehme: Sie sind bereits auf einem guten Weg und haben mehr Ressourcen, als Sie sich vielleicht bewusst sind.

Lassen Sie uns gemeinsam den nächsten Schritt erkunden. Was resoniert am stärksten mit Ihnen aus unserem bisherigen Gespräch?`
	}
}

// SupervisorCategory classifies a coach's situation description for the
// supervisor helper. Emergency wins over everything else.
func SupervisorCategory(input string) string {
	lower := strings.ToLower(input)
	switch {
	case strings.Contains(lower, "suizid") || strings.Contains(lower, "selbstverletzung"):
		return "NOTFALL"
	case strings.Contains(lower, "prozess") || strings.Contains(lower, "stuck") || strings.Contains(lower, "weiter"):
		return "PROZESS"
	case strings.Contains(lower, "methode") || strings.Contains(lower, "technik") || strings.Contains(lower, "intervention"):
		return "METHODIK"
	case strings.Contains(lower, "widerstand") || strings.Contains(lower, "schwierig") || strings.Contains(lower, "blockiert"):
		return "WIDERSTAND"
	default:
		return "BERATUNG"
	}
}

// Supervise returns method guidance for the coach, by category.
func Supervise(input string) (category, advice string) {
	category = SupervisorCategory(input)
	switch category {
	case "NOTFALL":
		advice = `🚨 NOTFALL-PROTOKOLL:

1. Sofortige Sicherstellung: Direkt ansprechen und Sicherheit evaluieren
2. Professionelle Hilfe: Umgehend an Krisenintervention/Therapeuten weiterleiten
3. Dokumentation: Gespräch dokumentieren, Maßnahmen festhalten
4. Nachsorge: Follow-up vereinbaren, weitere Unterstützung organisieren

⚠️ Dies überschreitet die Coaching-Grenzen. Therapeutische Intervention erforderlich.`
	case "PROZESS":
		advice = `⚙️ Prozess-Empfehlung:

• Aktuelle Situation: Kurze Standortbestimmung mit dem Coachee
• Nächster Schritt: Situationsgerechte Prompt-Auswahl aus dem Repository
• Zeitrahmen: ca. 15-20 Minuten für diese Intervention

💡 Tipp: Bei Widerstand zunächst würdigen, dann alternative Herangehensweise anbieten.`
	case "METHODIK":
		advice = `🛠️ Methodische Empfehlung:

1. Primär-Methode: passende Intervention aus dem Prompt-Repository
2. Fallback-Option: Falls Widerstand auftritt
3. Vertiefung: Bei besonders guter Resonanz

📋 Dokumentation: Notieren Sie die Wirksamkeit für zukünftige Sessions.`
	case "WIDERSTAND":
		advice = `🎯 Widerstandsarbeit:

Würdigender Ansatz: "Ich merke, dass hier etwas in Ihnen zögert. Das ist völlig berechtigt und schützt Sie wahrscheinlich vor etwas."

Positive Absicht erkunden:
• Was will dieser Anteil für Sie Gutes?
• Vor was schützt er Sie?

Integration statt Überwindung: Ziel ist nicht, den Widerstand zu brechen, sondern zu verstehen und zu integrieren.

🤝 Widerstand ist Information, nicht Opposition.`
	default:
		advice = `💡 Coach-Beratung für Ihre Situation:

Sofortige Schritte:
1. Situation mit dem Coachee spiegeln und validieren
2. Gemeinsam den nächsten Fokus klären
3. Passende Intervention aus dem Prompt-Repository wählen

Haltung:
• Ressourcenorientiert bleiben
• Prozess vor Inhalt
• Coachee als Experte für sein Leben würdigen`
	}
	return category, advice
}
