package language

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hi", "hi"},
		{"HIN", "hi"},
		{"Hindi", "hi"},
		{"sa", "sa"},
		{"sanskrit", "sa"},
		{"hi-IN", "hi"},
		{"", Auto},
		{"  AUTO ", Auto},
		{"xx-custom", "xx-custom"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hi", "Hindi"},
		{"san", "Sanskrit"},
		{"auto", "Auto-detected"},
		{"", "Auto-detected"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.in); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
