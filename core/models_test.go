package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "slug", content: "anna-berg"},
		{name: "empty string", content: ""},
		{name: "unicode", content: "jürgen-weiß"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	if IDFromContent("anna-berg") == IDFromContent("anna-bergs") {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestSpecialty_IsValid(t *testing.T) {
	for _, s := range Specialties {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Specialty("astrology").IsValid() {
		t.Errorf("unknown specialty reported valid")
	}
	if Specialty("").IsValid() {
		t.Errorf("empty specialty reported valid")
	}
}

func TestProfile_HasSpecialty(t *testing.T) {
	p := &Profile{Specialties: []Specialty{SpecialtyTrauma}}
	if !p.HasSpecialty(SpecialtyTrauma) {
		t.Errorf("HasSpecialty(trauma) = false")
	}
	if p.HasSpecialty(SpecialtyADHD) {
		t.Errorf("HasSpecialty(adhd) = true")
	}
}

func TestCriteria_WithSpecialties(t *testing.T) {
	base := Criteria{Topics: []string{"anxiety"}, Specialties: []Specialty{SpecialtyAnxiety}}
	got := base.WithSpecialties(SpecialtyAnxiety, SpecialtyTrauma)

	if len(got.Specialties) != 2 {
		t.Fatalf("WithSpecialties() = %v, want 2 deduplicated entries", got.Specialties)
	}
	if got.Specialties[1] != SpecialtyTrauma {
		t.Errorf("WithSpecialties() order = %v", got.Specialties)
	}
	if len(base.Specialties) != 1 {
		t.Errorf("WithSpecialties() mutated the receiver: %v", base.Specialties)
	}
}

func TestCriteria_IsEmpty(t *testing.T) {
	if !(Criteria{}).IsEmpty() {
		t.Errorf("zero Criteria should be empty")
	}
	if (Criteria{Location: "Berlin"}).IsEmpty() {
		t.Errorf("Criteria with location should not be empty")
	}
}
