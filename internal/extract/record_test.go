package extract

import (
	"testing"

	"github.com/dgallion1/wxgest/internal/parser"
)

func TestBuild_PreservesTableOrder(t *testing.T) {
	doc := mustDoc(t, `{"CMN": {"sunsetTime": "18:01", "sunriseTime": "06:59", "LunarDate": "廿四"}}`)
	table := NewTable("astron").
		Add("Lunar date", PathSpec("CMN/LunarDate")).
		Add("Sunrise", PathSpec("CMN/sunriseTime")).
		Add("Sunset", PathSpec("CMN/sunsetTime")).
		Add("Moonrise", PathSpec("CMN/moonriseTime"))

	rec := Build(table, doc)

	wantNames := []string{"Lunar date", "Sunrise", "Sunset", "Moonrise"}
	gotNames := rec.Names()
	if len(gotNames) != len(wantNames) {
		t.Fatalf("expected %d fields, got %d", len(wantNames), len(gotNames))
	}
	for i, w := range wantNames {
		if gotNames[i] != w {
			t.Errorf("field[%d]: expected %q, got %q", i, w, gotNames[i])
		}
	}

	wantValues := map[string]string{
		"Lunar date": "廿四",
		"Sunrise":    "06:59",
		"Sunset":     "18:01",
		"Moonrise":   Placeholder,
	}
	for name, want := range wantValues {
		got, ok := rec.Get(name)
		if !ok {
			t.Fatalf("field %q missing", name)
		}
		if got != want {
			t.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}
}

func TestBuild_EmptyDocumentKeepsEveryField(t *testing.T) {
	table := NewTable("current").
		Add("Obs. Time", PathSpec("RHRREAD/FormattedObsTime")).
		Add("Air temperature", Template(At("hko/Temperature"), Lit("°C")))

	rec := Build(table, mustDoc(t, `{}`))
	if len(rec) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(rec))
	}
	if rec[0].Value != Placeholder {
		t.Errorf("expected %q, got %q", Placeholder, rec[0].Value)
	}
	if rec[1].Value != "N/A°C" {
		t.Errorf("expected %q, got %q", "N/A°C", rec[1].Value)
	}
}

func TestBuild_UsesTableMarkup(t *testing.T) {
	doc := mustDoc(t, `{"v": "<b>x</b>"}`)
	table := NewTable("raw").Add("V", PathSpec("v"))
	table.Markup = parser.DialectNone

	if got := Build(table, doc)[0].Value; got != "<b>x</b>" {
		t.Errorf("expected markup kept, got %q", got)
	}
}

func TestSpecTable_AddReplacesInPlace(t *testing.T) {
	table := NewTable("t").
		Add("A", PathSpec("a")).
		Add("B", PathSpec("b")).
		Add("A", PathSpec("c"))

	if len(table.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(table.Fields))
	}
	if table.Fields[0].Name != "A" || table.Fields[0].Spec[0].Path().String() != "c" {
		t.Errorf("expected A replaced in first position, got %+v", table.Fields[0])
	}
}

func TestSpecTable_IsArray(t *testing.T) {
	if NewTable("a").IsArray() {
		t.Error("expected scalar table")
	}
	if !NewArrayTable("b", "F9D/WeatherForecast").IsArray() {
		t.Error("expected array table")
	}
}

func TestRecord_GetMissing(t *testing.T) {
	if _, ok := (Record{{Name: "A", Value: "1"}}).Get("B"); ok {
		t.Error("expected missing field")
	}
}
