package repository

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-05", "2024-03-05"},
		{"2024-03-05T10:15:00Z", "2024-03-05"},
		{" 2024-03-05 ", "2024-03-05"},
		{"05/03/2024", ""},
		{"March 5, 2024", ""},
		{"", ""},
		{"2024-3-5", ""},
	}
	for _, c := range cases {
		if got := NormalizeDate(c.in); got != c.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDirectImageURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			"https://drive.google.com/file/d/1AbC_d-9xyz/view?usp=sharing",
			"https://drive.google.com/uc?export=view&id=1AbC_d-9xyz",
		},
		{
			"https://drive.google.com/open?id=1AbC_d-9xyz",
			"https://drive.google.com/uc?export=view&id=1AbC_d-9xyz",
		},
		// Already direct: the rewrite is idempotent for uc links.
		{
			"https://pub.example.com/bags/slip_42.jpg",
			"https://pub.example.com/bags/slip_42.jpg",
		},
		{"", ""},
	}
	for _, c := range cases {
		if got := DirectImageURL(c.in); got != c.want {
			t.Errorf("DirectImageURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
