package slugify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"robohub/pkg/slugify"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Getting Started", "getting-started"},
		{"ABB IRB 6700", "abb-irb-6700"},
		{"  Payload & Reach  ", "payload-reach"},
		{"What's  new?", "whats-new"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple --- hyphens", "multiple-hyphens"},
		{"---", ""},
		{"", ""},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"UPPER_case_works", "upper_case_works"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify.Slugify(tc.in), "input %q", tc.in)
	}
}
