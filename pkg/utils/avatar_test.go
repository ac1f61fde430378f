package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiceBearURL(t *testing.T) {
	assert.Equal(t,
		"https://api.dicebear.com/7.x/avataaars/svg?seed=Jane+Doe",
		DiceBearURL("Jane Doe", ""),
	)
	assert.Equal(t,
		"https://api.dicebear.com/7.x/bottts/svg?seed=r1",
		DiceBearURL("r1", "bottts"),
	)
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a.jpg", AvatarURL("https://cdn.example.com/a.jpg", "Jane"))
	assert.Equal(t, DiceBearURL("Jane", "avataaars"), AvatarURL("", "Jane"))
	assert.Equal(t, DiceBearURL("user", "avataaars"), AvatarURL("   ", ""))
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Jane Doe":          "JD",
		"Jane Alice Doe":    "JD",
		"jane":              "JA",
		"j":                 "J",
		"":                  "??",
		"  Omar   Karimov ": "OK",
	}
	for in, want := range cases {
		assert.Equal(t, want, Initials(in), "input %q", in)
	}
}
