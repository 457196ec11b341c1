package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   language.Tag
		wantOK bool
	}{
		{in: "de", want: language.German, wantOK: true},
		{in: "de-AT", want: language.German, wantOK: true},
		{in: " en-US ", want: language.English, wantOK: true},
		{in: "fr", want: language.Und, wantOK: false},
		{in: "", want: language.Und, wantOK: false},
		{in: "not a tag", want: language.Und, wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("ParseTag(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != language.German {
		t.Fatalf("MatchTags(nil) = %v, want de", got)
	}
	if got := MatchTags([]language.Tag{language.MustParse("en-GB")}); got != language.English {
		t.Fatalf("MatchTags(en-GB) = %v, want en", got)
	}
	if got := MatchTags([]language.Tag{language.Japanese}); got != language.German {
		t.Fatalf("MatchTags(ja) = %v, want default", got)
	}
}

func TestLocaleCode(t *testing.T) {
	t.Parallel()

	if got := LocaleCode(language.MustParse("de-DE")); got != "de" {
		t.Fatalf("LocaleCode(de-DE) = %q", got)
	}
	if got := LocaleCode(language.English); got != "en" {
		t.Fatalf("LocaleCode(en) = %q", got)
	}
}
