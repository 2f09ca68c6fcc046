package boundary

import "testing"

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"hello world", "hello world"},
		{"hello   world", "hello world"},
		{"hello\tworld", "hello world"},
		{"hello\n\nworld", "hello world"},
		{"  hello world  ", "hello world"},
		{"hello\r\nworld", "hello world"},
		{"", ""},
		{"   ", ""},
		{"café\n\tné", "café né"},
	}
	for _, c := range cases {
		got := Normalize([]byte(c.in))
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  hello   world \n\n ",
		"already normal",
		"\t\t tabs  \t everywhere\t",
		"",
	}
	for _, in := range inputs {
		once := Normalize([]byte(in))
		twice := Normalize([]byte(once))
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_PreservesNonASCIIBytes(t *testing.T) {
	got := Normalize([]byte("naïve café  — résumé"))
	want := "naïve café — résumé"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}
