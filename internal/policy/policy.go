// Package policy pre-filters user messages for medical advice, diagnosis,
// and treatment recommendation requests, which the assistant must refuse
// without consulting the model.
package policy

import (
	"regexp"
	"strings"
)

// Refusal texts are fixed verbatim; the gate never paraphrases.
const (
	RefusalEN = "I'm sorry, I cannot recommend specific treatments or medications. " +
		"For personalized advice, please consult a doctor or pharmacist."
	RefusalHE = "מצטער, אינני יכול להמליץ על טיפול או תרופה ספציפית. " +
		"להמלצה מותאמת אישית כדאי לפנות לרופא או לרוקח."
)

// English patterns run against the lowercased message.
var violationPatternsEN = compileAll([]string{
	// Direct advice/recommendation keywords
	`\b(recommend|suggestion|suggest|advice|advise|prescribe)\b`,
	`\b(recommendation|proposal|opinion)\b`,

	// Evaluation
	`\b(good|effective|safe|best|better|okay|suitable|appropriate)\s+(for|with|to\s+treat)\b`,
	`\b(works|work|help|helps|effective)\s+(for|with|against)\b`,
	`\bis\s+\w+\s+(good|safe|effective|okay|suitable)\s+for\b`,
	`\bwill\s+\w+\s+(help|work|cure|fix|treat)\b`,

	// "What do you" phrasing
	`\bwhat\s+do\s+you\s+(recommend|suggest|think|advise|propose)\b`,
	`\bdo\s+you\s+(recommend|suggest|think\s+i\s+should|advise)\b`,

	// Actions
	`\b(should|can|could|may|would)\s+(i|we)\s+(take|use|try|stop|continue)\b`,
	`\bwhat\s+(should|can|could|may)\s+i\b`,
	`\bwhat\s+to\s+take\b`,
	`\bcan\s+i\s+take\s+\w+\s+for\b`,

	// Medication selection
	`\bwhat\s+(medication|medicine|drug|pill|tablet|remedy)s?\s+(for|should)\b`,
	`\bwhich\s+(medication|medicine|drug|pill|remedy)\b`,

	// Dosage
	`\bhow\s+(much|many)\s+.*(to\s+take|should\s+i\s+take)\b`,
	`\btoo\s+much\b`,
	`\bis\s+this\s+enough\b`,
	`\benough\s+(medication|medicine|dose)\b`,
	`\b(increase|decrease|change|adjust|reduce|raise)\s+.*?(dose|dosage|medication|amount)\b`,
	`\bshould\s+i\s+(increase|decrease|stop|continue|change)\b`,
	`\bcan\s+i\s+(increase|decrease|stop|change|continue)\b`,
	`\bstop\s+taking\b`,

	// Diagnosis
	`\b(diagnose|diagnosis)\b`,
	`\bwhat'?s\s+wrong\b`,
	`\bwhat\s+do\s+i\s+have\b`,
	`\bwhat'?s\s+wrong\s+with\s+me\b`,
	`\bam\s+i\s+(sick|ill|okay|fine)\b`,
	`\bis\s+this\s+(serious|dangerous|urgent|bad|normal|safe)\b`,
	`\bdo\s+i\s+need\s+(to\s+see\s+)?(a\s+)?(doctor|physician)\b`,

	// Treatment
	`\bhow\s+to\s+(treat|cure|fix|heal)\b`,
	`\b(treatment|cure|remedy)\s+for\b`,
})

// Hebrew patterns run against the raw message, and only when it contains
// Hebrew script. They are written with \b for readability and rewritten at
// compile time: RE2's \b is ASCII-only, so a boundary next to a Hebrew
// letter never matches and must become an explicit non-word-letter class.
var violationPatternsHE = compileAllHebrew([]string{
	// Direct advice/recommendation keywords
	`\b(ממליץ|ממליצה|המלץ|המליצי|תמליץ|תמליצי|המלצה|להמליץ)\b`,
	`\b(מציע|מציעה|תציע|תציעי|להציע|ה?הצעה)\b`,
	`\b(ייעוץ|לייעץ|מייעץ|מייעצת)\b`,
	`\b(מספק|מספקת|לספק)\b`,
	`\bחושב\s+ש(אני\s+)?(צריך|צריכה)\b`,
	`\b(דעה|דעתך)\b`,

	// Evaluation
	`\b(טוב|יעיל|בטוח|עדיף|מתאים|מומלץ)\b`,
	`\b(עוזר|יעזור|עובד|יעבוד|מסייע)\s+(ל|עם|נגד)`,
	`\bהכי\s+(טוב|יעיל|בטוח|מתאים)\b`,

	// "What do you" phrasing
	`\bמה\s+(אתה|את)\s+(ממליץ|ממליצה|חושב|חושבת|מציע|מציעה)\b`,

	// Actions
	`\bמה\s+(לקחת|ליטול|להשתמש|לעשות|צריך|כדאי)\b`,
	`\bהאם\s+(לקחת|ליטול|להשתמש|כדאי)\b`,
	`\bהאם\s+(אני\s+)?(צריך|צריכה)\s+(לקחת|ליטול)\b`,
	`\b(כדאי|שווה)\s+לקחת\b`,
	`\bהאם\s+(להמשיך|להפסיק)\b`,

	// Medication selection
	`\b(איזה|איזו|מה)\s+(תרופה|תכשיר|כדור|תרופות)\b`,
	`\bתרופה\s+ל`,
	`\bמה\s+הכי\s+(טוב|יעיל)\b`,

	// Dosage
	`\bכמה\s+(לקחת|ליטול|מינון|כמות)\b`,
	`\b(יותר\s+מדי|הרבה\s+מדי)\b`,
	`\b(מספיק|די)\b`,
	`\b(להגדיל|להקטין|לשנות|להפסיק|להמשיך|להוריד|להעלות)\b`,
	`\bהאם\s+(להגדיל|להקטין|להפסיק|להמשיך|לשנות)\b`,

	// Diagnosis
	`\b(אבחנה|לאבחן|אבחון)\b`,
	`\bמה\s+(הבעיה|יש\s+לי|קורה\s+לי|קרה\s+לי)\b`,
	`\bמה\s+(האבחנה|הבעיה\s+שלי)\b`,
	`\bהאם\s+אני\s+(חולה|בסדר|תקין)\b`,
	`\bזה\s+(מסוכן|רציני|דחוף|רע|נורמלי|בסדר)\b`,
	`\bהאם\s+(צריך|כדאי)\s+רופא\b`,

	// Treatment
	`\bאיך\s+(לטפל|לרפא|להתמודד)\b`,
	`\bמה\s+(ה)?(טיפול|ריפוי|פתרון)\s+ל`,

	// Common colloquial phrasing
	`\bמה\s+עושים\b`,
	`\b(שווה|כדאי)\s+לקחת\b`,
	`\bמה\s+תגיד\b`,
})

var hebrewScript = regexp.MustCompile(`[\x{0590}-\x{05FF}]`)

// hebrewWordBreak substitutes for \b in Hebrew patterns: start or end of
// text, or any character that is not a letter, digit, or underscore.
const hebrewWordBreak = `(?:\A|\z|[^\p{L}\p{N}_])`

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

func compileAllHebrew(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(strings.ReplaceAll(p, `\b`, hebrewWordBreak))
	}
	return out
}

// ContainsHebrew reports whether text contains any Hebrew-script character.
func ContainsHebrew(text string) bool {
	return hebrewScript.MatchString(text)
}

// CheckViolation reports whether the message asks for medical advice,
// diagnosis, or treatment selection. Hebrew patterns are consulted first
// when the message contains Hebrew; English patterns are always consulted,
// so mixed-script messages can trip either list. The returned refusal is in
// the language of the matched pattern list.
func CheckViolation(message string) (bool, string) {
	if ContainsHebrew(message) {
		for _, p := range violationPatternsHE {
			if p.MatchString(message) {
				return true, RefusalHE
			}
		}
	}
	lower := strings.ToLower(message)
	for _, p := range violationPatternsEN {
		if p.MatchString(lower) {
			return true, RefusalEN
		}
	}
	return false, ""
}

// RefusalFor returns the refusal text matching the message's language.
func RefusalFor(message string) string {
	if ContainsHebrew(message) {
		return RefusalHE
	}
	return RefusalEN
}
