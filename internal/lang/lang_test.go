package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"ru", RU},
		{"TR", TR},
		{"en-US", EN},
		{"en_GB", EN},
		{"", RU},
		{"de", RU},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Parse(tc.in), "Parse(%q)", tc.in)
	}
}

func TestTextFor(t *testing.T) {
	txt := Text{RU: "каска", TR: "baret", EN: "helmet"}
	assert.Equal(t, "каска", txt.For(RU))
	assert.Equal(t, "baret", txt.For(TR))
	assert.Equal(t, "helmet", txt.For(EN))
	assert.Equal(t, "каска", txt.For(Language("xx")))
}

func TestTextListFor(t *testing.T) {
	list := TextList{RU: []string{"а"}, TR: []string{"b"}, EN: []string{"c", "d"}}
	assert.Equal(t, []string{"c", "d"}, list.For(EN))
	assert.Equal(t, []string{"b"}, list.For(TR))
	assert.Equal(t, []string{"а"}, list.For(""))
}
