//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package retrieval computes rank-based retrieval quality metrics against a
// ground-truth relevance set. All functions treat empty input as a zero score,
// never an error, and round scores to 4 decimal places.
package retrieval

import (
	"github.com/KshitijBhardwaj18/evRAG/document"
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
)

// DefaultKs is the default list of cutoff depths for K-indexed metrics.
var DefaultKs = []int{1, 3, 5, 10}

// RecallAtK computes |top-K ∩ ground truth| / |ground truth| for each K.
// The result covers exactly the requested K list; empty retrieved or ground
// truth maps every K to 0.
func RecallAtK(retrieved, groundTruth []document.Document, ks []int) map[int]float64 {
	if len(ks) == 0 {
		ks = DefaultKs
	}
	results := make(map[int]float64, len(ks))
	gtSet := document.IdentitySet(groundTruth)
	if len(gtSet) == 0 || len(retrieved) == 0 {
		for _, k := range ks {
			results[k] = 0.0
		}
		return results
	}
	retrievedList := document.IdentityList(retrieved)
	for _, k := range ks {
		topK := truncate(retrievedList, k)
		results[k] = itext.Round4(float64(uniqueMatches(topK, gtSet)) / float64(len(gtSet)))
	}
	return results
}

// PrecisionAtK computes |top-K ∩ ground truth| / |top-K| for each K. When K
// exceeds the retrieved list the slice simply yields fewer elements; an empty
// slice scores 0 for that K.
func PrecisionAtK(retrieved, groundTruth []document.Document, ks []int) map[int]float64 {
	if len(ks) == 0 {
		ks = DefaultKs
	}
	results := make(map[int]float64, len(ks))
	gtSet := document.IdentitySet(groundTruth)
	if len(gtSet) == 0 || len(retrieved) == 0 {
		for _, k := range ks {
			results[k] = 0.0
		}
		return results
	}
	retrievedList := document.IdentityList(retrieved)
	for _, k := range ks {
		topK := truncate(retrievedList, k)
		if len(topK) == 0 {
			results[k] = 0.0
			continue
		}
		results[k] = itext.Round4(float64(uniqueMatches(topK, gtSet)) / float64(len(topK)))
	}
	return results
}

// MRR returns the reciprocal rank (1-indexed) of the first retrieved document
// whose identity is in the ground truth, or 0 when none is found.
func MRR(retrieved, groundTruth []document.Document) float64 {
	gtSet := document.IdentitySet(groundTruth)
	if len(gtSet) == 0 || len(retrieved) == 0 {
		return 0.0
	}
	for rank, id := range document.IdentityList(retrieved) {
		if _, ok := gtSet[id]; ok {
			return itext.Round4(1.0 / float64(rank+1))
		}
	}
	return 0.0
}

// MAP returns the average precision over the ranked list. The denominator is
// the ground-truth set size, so relevant documents that never appear still
// count against the score.
func MAP(retrieved, groundTruth []document.Document) float64 {
	gtSet := document.IdentitySet(groundTruth)
	if len(gtSet) == 0 || len(retrieved) == 0 {
		return 0.0
	}
	precisionSum := 0.0
	relevantFound := 0
	for rank, id := range document.IdentityList(retrieved) {
		if _, ok := gtSet[id]; ok {
			relevantFound++
			precisionSum += float64(relevantFound) / float64(rank+1)
		}
	}
	if relevantFound == 0 {
		return 0.0
	}
	return itext.Round4(precisionSum / float64(len(gtSet)))
}

// HitRate returns 1.0 iff at least one relevant document was retrieved.
func HitRate(retrieved, groundTruth []document.Document) float64 {
	gtSet := document.IdentitySet(groundTruth)
	if len(gtSet) == 0 || len(retrieved) == 0 {
		return 0.0
	}
	for id := range document.IdentitySet(retrieved) {
		if _, ok := gtSet[id]; ok {
			return 1.0
		}
	}
	return 0.0
}

// Coverage returns the fraction of ground-truth documents present anywhere in
// the retrieved list, with no K cutoff.
func Coverage(retrieved, groundTruth []document.Document) float64 {
	gtSet := document.IdentitySet(groundTruth)
	if len(gtSet) == 0 || len(retrieved) == 0 {
		return 0.0
	}
	covered := 0
	retrievedSet := document.IdentitySet(retrieved)
	for id := range gtSet {
		if _, ok := retrievedSet[id]; ok {
			covered++
		}
	}
	return itext.Round4(float64(covered) / float64(len(gtSet)))
}

// truncate slices the list to at most k elements.
func truncate(list []string, k int) []string {
	if k < 0 {
		k = 0
	}
	if k > len(list) {
		k = len(list)
	}
	return list[:k]
}

// uniqueMatches counts distinct identities in the list that are relevant.
func uniqueMatches(list []string, gtSet map[string]struct{}) int {
	seen := make(map[string]struct{}, len(list))
	matches := 0
	for _, id := range list {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := gtSet[id]; ok {
			matches++
		}
	}
	return matches
}
