package csvdata

import (
	"errors"
	"testing"
)

func TestParseGSCQueriesTabDelimited(t *testing.T) {
	input := "Requêtes les plus fréquentes\tClics\tImpressions\tCTR\tPosition\n" +
		"formation management\t120\t3400\t3,5%\t4,2\n" +
		"coaching agile\t0\t150\t0%\t12,8\n"

	records, err := Parse(input, GSCQueries)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Parse() returned %d records, want 2", len(records))
	}

	first := records[0]
	if first.Key != "formation management" {
		t.Errorf("Key = %q, want %q", first.Key, "formation management")
	}
	if got := first.Count(FieldClicks); got == nil || *got != 120 {
		t.Errorf("Count(clicks) = %v, want 120", got)
	}
	if got := first.Count(FieldImpressions); got == nil || *got != 3400 {
		t.Errorf("Count(impressions) = %v, want 3400", got)
	}
	if got := first.Percent(FieldCTR); got == nil || *got != 0.035 {
		t.Errorf("Percent(ctr) = %v, want 0.035", got)
	}
	if got := first.Float(FieldPosition); got == nil || *got != 4.2 {
		t.Errorf("Float(position) = %v, want 4.2", got)
	}

	// Zero clicks and zero CTR normalize to nil, position survives.
	second := records[1]
	if got := second.Count(FieldClicks); got != nil {
		t.Errorf("Count(clicks) = %v, want nil for zero", *got)
	}
	if got := second.Percent(FieldCTR); got != nil {
		t.Errorf("Percent(ctr) = %v, want nil for zero", *got)
	}
	if got := second.Float(FieldPosition); got == nil || *got != 12.8 {
		t.Errorf("Float(position) = %v, want 12.8", got)
	}
}

func TestParseCommaDelimited(t *testing.T) {
	input := "Keyword,Position,Search Volume,Keyword Difficulty\n" +
		"seo audit,3,880,45\n" +
		"link building,17,0,0\n"

	records, err := Parse(input, SEMrush)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Parse() returned %d records, want 2", len(records))
	}

	if got := records[0].Count(FieldVolume); got == nil || *got != 880 {
		t.Errorf("Count(volume) = %v, want 880", got)
	}
	if got := records[1].Count(FieldVolume); got != nil {
		t.Errorf("Count(volume) = %v, want nil for zero", *got)
	}
	if got := records[1].Count(FieldDifficulty); got != nil {
		t.Errorf("Count(difficulty) = %v, want nil for zero", *got)
	}
}

func TestParseHeaderAliasPriority(t *testing.T) {
	// English GSC export headers resolve through the fallback aliases.
	input := "Top queries\tClicks\tImpressions\tCTR\tPosition\n" +
		"go modules\t5\t90\t5.56%\t8.1\n"

	records, err := Parse(input, GSCQueries)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(records))
	}
	if records[0].Key != "go modules" {
		t.Errorf("Key = %q, want %q", records[0].Key, "go modules")
	}
	if got := records[0].Count(FieldClicks); got == nil || *got != 5 {
		t.Errorf("Count(clicks) = %v, want 5", got)
	}
}

func TestParseSkipsEmptyKeyRows(t *testing.T) {
	input := "Top queries\tClicks\tImpressions\tCTR\tPosition\n" +
		"   \t10\t100\t10%\t3\n" +
		"real query\t10\t100\t10%\t3\n"

	records, err := Parse(input, GSCQueries)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(records))
	}
	if records[0].Key != "real query" {
		t.Errorf("Key = %q, want %q", records[0].Key, "real query")
	}
}

func TestParseStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"whitespace only", "\n  \n"},
		{"inconsistent delimiter", "a,b,c\nx\ty\tz\tw\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, SEMrush)
			if err == nil {
				t.Fatal("Parse() error = nil, want *ParseError")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse() error = %T, want *ParseError", err)
			}
			if len(perr.Details) == 0 {
				t.Error("ParseError.Details is empty")
			}
		})
	}
}

func TestParseSingleColumn(t *testing.T) {
	input := "Top queries\nonly keyword\n"

	records, err := Parse(input, GSCQueries)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(records))
	}
	if got := records[0].Count(FieldClicks); got != nil {
		t.Errorf("Count(clicks) = %v, want nil for absent column", *got)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := "Keyword,Position,Search Volume,Keyword Difficulty\n" +
		"seo audit,3,880,45\n"

	a, err := Parse(input, SEMrush)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	b, err := Parse(input, SEMrush)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("record counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			t.Errorf("record %d key differs: %q vs %q", i, a[i].Key, b[i].Key)
		}
		for _, f := range []string{FieldPosition, FieldVolume, FieldDifficulty} {
			if a[i].Raw(f) != b[i].Raw(f) {
				t.Errorf("record %d field %s differs: %q vs %q", i, f, a[i].Raw(f), b[i].Raw(f))
			}
		}
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"120", 120},
		{"  42  ", 42},
		{"1 200", 1},
		{"12abc", 12},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
	}

	for _, tt := range tests {
		if got := leadingInt(tt.in); got != tt.want {
			t.Errorf("leadingInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLeadingFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"4.2", 4.2},
		{"12", 12},
		{"3.50", 3.5},
		{"7.", 7},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		if got := leadingFloat(tt.in); got != tt.want {
			t.Errorf("leadingFloat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
