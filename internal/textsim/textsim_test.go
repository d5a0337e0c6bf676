package textsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Сварка   труб!! ", "сварка труб"},
		{"Boru-hattı Kaynağı", "boru hattı kaynağı"},
		{"Replace pump #3, bay_2", "replace pump 3 bay_2"},
		{"", ""},
		{"...", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestTokens_DropsShortWords(t *testing.T) {
	tokens := Tokens("Работы на высоте в цехе")
	assert.Contains(t, tokens, "работы")
	assert.Contains(t, tokens, "высоте")
	assert.Contains(t, tokens, "цехе")
	assert.NotContains(t, tokens, "на")
	assert.NotContains(t, tokens, "в")
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"welding of pipe support", "pipe support welding near tank"},
		{"замена кабеля в щитовой", "прокладка кабеля"},
		{"", "anything here"},
		{"a b", "c d"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "pair %q", p)
	}
}

func TestSimilarity_Identity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("замена насоса", "замена насоса"))
	assert.Equal(t, 0.0, Similarity("a b", "a b"), "no qualifying words")
	assert.Equal(t, 0.0, Similarity("", ""))
}

func TestSimilarity_Jaccard(t *testing.T) {
	// {pump, replacement, bay} vs {pump, replacement}: 2/3.
	assert.InDelta(t, 2.0/3.0, Similarity("pump replacement bay", "Pump replacement"), 1e-9)
	assert.Equal(t, 0.0, Similarity("pump", "valve"))
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"ремонт", "насоса"}, Words("Ремонт насоса в цехе", 5))
	assert.Empty(t, Words("", 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(130, 0, 100))
	assert.Equal(t, 42.5, Clamp(42.5, 0, 100))
}

func TestUnion(t *testing.T) {
	got := Union([]string{"a", "b"}, []string{"b", "c"}, []string{"a", "d"})
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.Empty(t, Union(nil))
}
