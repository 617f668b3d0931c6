// Package antecedent implements the single-attribute test ("antecedent")
// that a RIPPER rule conjoins zero or more of.
//
// An Antecedent is bound to one attribute and is one of two variants:
//
//	Discrete   — an equality test: attribute == target domain index.
//	Continuous — a threshold test: attribute <= splitPoint, or
//	             attribute >= splitPoint, selected by Direction.
//
// Antecedent values are found by SplitData, a greedy one-attribute search
// that scores every candidate test by information gain against a target
// class and a baseline accuracy rate, and records the winner's statistics
// (MaxInfoGain, AccuRate, Cover, Accu) directly on the Antecedent.
package antecedent
