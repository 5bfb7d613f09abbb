package parser

import "testing"

func TestHTMLStripper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Sunny periods.", "Sunny periods."},
		{"paragraph", "<p>Fine and <b>very hot</b>.</p>", "Fine and very hot."},
		{"attributes dropped", `<span class="warn" id="x">Typhoon</span>`, "Typhoon"},
		{"entities decoded", "Hot &amp; humid &lt;34&gt;", "Hot & humid <34>"},
		{"comments dropped", "a<!-- hidden -->b", "ab"},
		{"leading whitespace kept", "\n  Outlook: <br/>fine", "\n  Outlook: fine"},
		{"bare angle bracket", "temp 5 < 6", "temp 5 < 6"},
		{"unclosed tag", "<p>open <i>italic", "open italic"},
		{"truncated tag", "ok <span cla", "ok "},
		{"empty", "", ""},
	}
	s := HTMLStripper{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Strip(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHTMLStripper_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>Fine and <b>very hot</b>.</p>",
		"line one\nline two",
		"N/A",
		"a: 1\nb: 2\n",
	}
	s := HTMLStripper{}
	for _, in := range inputs {
		once := s.Strip(in)
		if twice := s.Strip(once); twice != once {
			t.Errorf("strip not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestStripperFor(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    Stripper
	}{
		{"", HTMLStripper{}},
		{"html", HTMLStripper{}},
		{"HTML", HTMLStripper{}},
		{"markdown", MarkdownStripper{}},
		{"none", PlainStripper{}},
	}
	for _, tt := range tests {
		got, err := StripperFor(tt.dialect)
		if err != nil {
			t.Fatalf("dialect %q: unexpected error: %v", tt.dialect, err)
		}
		if got != tt.want {
			t.Errorf("dialect %q: expected %T, got %T", tt.dialect, tt.want, got)
		}
	}

	if _, err := StripperFor("rtf"); err == nil {
		t.Error("expected error for unsupported dialect")
	}
}

func TestPlainStripper_KeepsMarkup(t *testing.T) {
	in := "<b>raw</b> &amp;"
	if got := (PlainStripper{}).Strip(in); got != in {
		t.Errorf("expected %q, got %q", in, got)
	}
}
