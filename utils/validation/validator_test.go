package validation

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Safer Rides For Everyone", "safer-rides-for-everyone"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple   spaces & symbols!!", "multiple-spaces-symbols"},
		{"Already-a-slug", "already-a-slug"},
		{"100% Electric Fleet", "100-electric-fleet"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("got %q", got)
	}
}
