package langdetect

import "testing"

func TestDetect_English(t *testing.T) {
	text := "The gravitational pull of the moon raises the water level on the side of the earth facing it."
	lang, ok := Detect(text)
	if !ok {
		t.Fatal("Detect() not confident, want a match for clear English prose")
	}
	if lang != "en" {
		t.Errorf("Detect() = %q, want %q", lang, "en")
	}
}

func TestDetect_German(t *testing.T) {
	text := "Die Anziehungskraft des Mondes hebt den Wasserspiegel auf der ihm zugewandten Seite der Erde."
	lang, ok := Detect(text)
	if !ok {
		t.Fatal("Detect() not confident, want a match for clear German prose")
	}
	if lang != "de" {
		t.Errorf("Detect() = %q, want %q", lang, "de")
	}
}

func TestDetect_Empty(t *testing.T) {
	if lang, ok := Detect("   "); ok || lang != "" {
		t.Errorf("Detect(blank) = (%q, %v), want no result", lang, ok)
	}
}

func TestDetect_Deterministic(t *testing.T) {
	text := "Coastal observers see the water level rise and fall roughly twice a day."
	first, _ := Detect(text)
	second, _ := Detect(text)
	if first != second {
		t.Errorf("Detect() not deterministic: %q then %q", first, second)
	}
}
