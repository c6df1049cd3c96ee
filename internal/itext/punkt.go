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
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	// punktTokenizerOnce ensures the Punkt model is loaded once.
	punktTokenizerOnce sync.Once
	// punktTokenizer holds the initialized sentence tokenizer instance.
	punktTokenizer *sentences.DefaultSentenceTokenizer
	// punktTokenizerErr caches any initialization error.
	punktTokenizerErr error
)

// punktTokenize splits English text into sentences using Punkt training data.
func punktTokenize(text string) ([]string, error) {
	punktTokenizerOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			punktTokenizerErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			punktTokenizerErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		punktTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if punktTokenizerErr != nil {
		return nil, punktTokenizerErr
	}
	raw := punktTokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// PunktSplitter splits text into sentences with a Punkt model instead of the
// punctuation rule. Terminal punctuation is trimmed from each sentence and the
// MinSentenceLen filter still applies, so downstream support checks see the
// same claim shape either way. Falls back to the punctuation rule when the
// Punkt model cannot be loaded.
type PunktSplitter struct{}

// Split implements Splitter.
func (PunktSplitter) Split(text string) []string {
	raw, err := punktTokenize(text)
	if err != nil {
		return SplitSentences(text)
	}
	sentences := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(strings.TrimRight(sent, ".!?"))
		if utf8.RuneCountInString(s) > MinSentenceLen {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
