//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package itext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basic terminal punctuation",
			input: "The capital of France is Paris. It has a population of two million! Is that large?",
			want: []string{
				"The capital of France is Paris",
				"It has a population of two million",
				"Is that large",
			},
		},
		{
			name:  "short fragments dropped",
			input: "Yes. No. The answer is forty-two.",
			want:  []string{"The answer is forty-two"},
		},
		{
			name:  "repeated punctuation collapses",
			input: "Are you sure about that?! Absolutely certain about it...",
			want:  []string{"Are you sure about that", "Absolutely certain about it"},
		},
		{
			// 7 runes but 21 bytes; the length filter counts runes.
			name:  "short non-ascii fragment dropped",
			input: "天空是绿色的。",
			want:  []string{},
		},
		{
			name:  "long non-ascii sentence kept",
			input: "месторождение находится в западной сибири. да.",
			want:  []string{"месторождение находится в западной сибири"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: "   \n\t  ",
			want:  []string{},
		},
		{
			name:  "no terminal punctuation",
			input: "a sentence without any terminator",
			want:  []string{"a sentence without any terminator"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.input))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, Tokens("The  Quick\tBrown FOX"))
	assert.Empty(t, Tokens(""))
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("the cat and the hat")
	assert.Len(t, set, 4)
	assert.Contains(t, set, "the")
	assert.Contains(t, set, "hat")
}

func TestOverlap(t *testing.T) {
	a := TokenSet("alpha beta gamma")
	b := TokenSet("beta gamma delta")
	assert.Equal(t, 2, Overlap(a, b))
	assert.Equal(t, 0, Overlap(a, TokenSet("")))
}

func TestJaccard(t *testing.T) {
	assert.InDelta(t, 0.5, Jaccard(TokenSet("a b c"), TokenSet("b c d")), 1e-9)
	assert.Equal(t, 0.0, Jaccard(TokenSet(""), TokenSet("a")))
	assert.Equal(t, 0.0, Jaccard(TokenSet(""), TokenSet("")))
	assert.Equal(t, 1.0, Jaccard(TokenSet("same words"), TokenSet("words same")))
}

func TestContentTokenSet(t *testing.T) {
	set := ContentTokenSet("What is the capital of France")
	assert.NotContains(t, set, "what")
	assert.NotContains(t, set, "the")
	assert.NotContains(t, set, "is")
	assert.Contains(t, set, "capital")
	assert.Contains(t, set, "france")
	assert.Contains(t, set, "of")
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 0.3333, Round4(1.0/3.0))
	assert.Equal(t, 0.6667, Round4(2.0/3.0))
	assert.Equal(t, 1.0, Round4(1.0))
	assert.Equal(t, 0.0, Round4(0.0))
}

func TestRegexSplitter(t *testing.T) {
	var s Splitter = RegexSplitter{}
	got := s.Split("First complete sentence here. Second complete sentence here.")
	assert.Equal(t, []string{"First complete sentence here", "Second complete sentence here"}, got)
}
