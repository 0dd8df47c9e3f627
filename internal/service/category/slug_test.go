package category

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Apparel", "apparel"},
		{"Home & Kitchen", "home-kitchen"},
		{"  Gift Cards  ", "gift-cards"},
		{"T-Shirts (Men's)", "t-shirts-men-s"},
		{"100% Cotton", "100-cotton"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
