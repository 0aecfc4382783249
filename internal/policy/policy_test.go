package policy

import "testing"

func TestCheckViolationEnglish(t *testing.T) {
	violations := []string{
		"What do you recommend for a headache?",
		"Is ibuprofen good for back pain?",
		"Should I take omeprazole?",
		"which medicine works best",
		"How much ibuprofen should I take?",
		"Can I increase my dose?",
		"what's wrong with me",
		"how to treat a sore throat",
		"I want to stop taking metformin",
	}
	for _, msg := range violations {
		if ok, refusal := CheckViolation(msg); !ok {
			t.Errorf("CheckViolation(%q) should flag a violation", msg)
		} else if refusal != RefusalEN {
			t.Errorf("CheckViolation(%q) refusal = %q, want English refusal", msg, refusal)
		}
	}

	allowed := []string{
		"Do you have Ibuprofen in stock?",
		"What is the price of Omeprazole?",
		"Tell me about Amoxicillin",
		"Do I have a prescription for Metformin? My ID is 123456789",
	}
	for _, msg := range allowed {
		if ok, _ := CheckViolation(msg); ok {
			t.Errorf("CheckViolation(%q) should not flag a violation", msg)
		}
	}
}

func TestCheckViolationHebrew(t *testing.T) {
	violations := []string{
		"מה אתה ממליץ לכאב ראש?",
		"איזו תרופה הכי טובה לאלרגיה?",
		"האם כדאי לקחת אומפרזול?",
		"כמה ליטול ביום?",
		"איך לטפל בכאב גרון?",
	}
	for _, msg := range violations {
		if ok, refusal := CheckViolation(msg); !ok {
			t.Errorf("CheckViolation(%q) should flag a violation", msg)
		} else if refusal != RefusalHE {
			t.Errorf("CheckViolation(%q) refusal = %q, want Hebrew refusal", msg, refusal)
		}
	}

	allowed := []string{
		"האם יש איבופרופן במלאי?",
		"מה המחיר של אמוקסיצילין?",
	}
	for _, msg := range allowed {
		if ok, _ := CheckViolation(msg); ok {
			t.Errorf("CheckViolation(%q) should not flag a violation", msg)
		}
	}
}

func TestHebrewBoundariesMatchWholeWords(t *testing.T) {
	// A Hebrew keyword embedded inside a longer word must not match;
	// the same keyword as a standalone word must.
	if ok, _ := CheckViolation("ממליץ"); !ok {
		t.Error("standalone keyword should match")
	}
	if ok, _ := CheckViolation("הממליצים"); ok {
		t.Error("keyword embedded in a longer word should not match")
	}
}

func TestMixedScriptFallsThroughToEnglish(t *testing.T) {
	// Hebrew present but no Hebrew pattern matches; the English patterns
	// still run and the refusal follows the matched list's language.
	ok, refusal := CheckViolation("שלום, what do you recommend for a cold?")
	if !ok {
		t.Fatal("English pattern should match despite Hebrew text")
	}
	if refusal != RefusalEN {
		t.Errorf("refusal = %q, want English refusal", refusal)
	}
}

func TestContainsHebrew(t *testing.T) {
	if !ContainsHebrew("יש לכם אקמול?") {
		t.Error("Hebrew text not detected")
	}
	if ContainsHebrew("plain English only") {
		t.Error("false positive on English text")
	}
}

func TestRefusalFor(t *testing.T) {
	if RefusalFor("מה יש במלאי") != RefusalHE {
		t.Error("Hebrew message should get Hebrew refusal")
	}
	if RefusalFor("hello") != RefusalEN {
		t.Error("English message should get English refusal")
	}
}
