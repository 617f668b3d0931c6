package rulestats

import "math"

// TheoryDL is the description length, in bits, of one rule with k
// antecedents chosen from numAllConditions total available single-attribute
// tests: the subset-code length of choosing which k conditions, plus
// log2(k) to encode the rule's length, all discounted by RIPPER's
// traditional redundancy factor of 0.5. TheoryDL(0, n) is 0 (the default
// rule costs nothing to describe).
func TheoryDL(k int, numAllConditions float64) float64 {
	if k <= 0 {
		return 0
	}
	n := numAllConditions
	kf := float64(k)
	if n <= kf {
		n = kf + 1 // a schema too small to literally fit k conditions; keep the log terms finite
	}

	bits := kf*log2(n/kf) + (n-kf)*log2(n/(n-kf)) + log2(kf)

	return 0.5 * bits
}

// DataDL is the description length, in bits, of the (covered, uncovered)
// split a rule produces against a dataset with expFPRate expected false
// positive rate: a binomial code length for the covered instances (errors
// = covered-coveredPos false positives) plus one for the uncovered
// instances (errors = uncoveredPos false negatives), each including the
// self-cost of encoding which count occurred.
func DataDL(expFPRate, covered, uncovered, coveredPos, uncoveredPos float64) float64 {
	rate := expFPRate
	switch {
	case rate <= 0:
		rate = 1e-6
	case rate >= 1:
		rate = 1 - 1e-6
	}

	fp := covered - coveredPos
	fn := uncoveredPos

	return binomialCodeLength(covered, fp, rate) + binomialCodeLength(uncovered, fn, rate)
}

// RelativeDL is TheoryDL(k)+DataDL(...) minus priorDL, the description
// length already spent by the rules preceding this one in the ruleset
// being scored.
func RelativeDL(k int, numAllConditions, expFPRate, covered, uncovered, coveredPos, uncoveredPos, priorDL float64) float64 {
	return TheoryDL(k, numAllConditions) + DataDL(expFPRate, covered, uncovered, coveredPos, uncoveredPos) - priorDL
}

// binomialCodeLength is L(n,k,p) = -k*log2(p) - (n-k)*log2(1-p), plus
// log2(n+1) bits to self-describe which of the n+1 possible values of k
// occurred.
func binomialCodeLength(n, k, p float64) float64 {
	if n <= 0 {
		return 0
	}
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	bits := -k*log2(p) - (n-k)*log2(1-p)
	bits += log2(n + 1)

	return bits
}

func log2(x float64) float64 { return math.Log2(x) }
