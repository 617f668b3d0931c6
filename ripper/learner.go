package ripper

import (
	"math/rand"

	"github.com/katalvlaran/ripper/dataset"
	"github.com/katalvlaran/ripper/model"
	"github.com/katalvlaran/ripper/rule"
	"github.com/katalvlaran/ripper/rulestats"
)

// Learner trains a RuleBasedModel from a Dataset. A Learner owns a single
// seeded RNG; every draw the algorithm makes (the grow/prune shuffle at
// each building-stage iteration) goes through it, so the same seed over the
// same input always yields the same ruleset.
type Learner struct {
	cfg *Config
	rng *rand.Rand
}

// New returns a Learner configured by opts over DefaultConfig.
func New(opts ...Option) *Learner {
	cfg := newConfig(opts...)
	return &Learner{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// Fit trains a model from data: drops rows with a missing class, resorts
// the class domain ascending by weighted count (the most frequent class
// becomes the implicit default), then for each class but the last runs the
// building stage (and, if UsePruning, the optimization stage) to grow a
// sub-ruleset for that class before moving to the next. Every rule is
// cleaned of redundant continuous antecedents, and a no-antecedent default
// rule predicting the most frequent class is appended last.
func (l *Learner) Fit(data *dataset.Dataset) (*model.Model, error) {
	clean := data.RemoveUselessInsts()
	if clean.NumInstances() == 0 || clean.SumOfWeights() == 0 {
		return model.New(clean.Schema(), []*rule.Rule{rule.New(0)}), nil
	}

	clean.ResortClassesByCount()
	numClasses := clean.NumClasses()

	var ruleset []*rule.Rule
	residual := clean

	for c := 0; c < numClasses-1; c++ {
		counts := classWeights(residual, numClasses)
		if counts[c] == 0 {
			l.cfg.Logger.Printf("ripper: class %d skipped, no remaining instances", c)
			continue
		}
		var sumRemaining float64
		for i := c; i < numClasses; i++ {
			sumRemaining += counts[i]
		}
		if sumRemaining == 0 {
			l.cfg.Logger.Printf("ripper: class %d skipped, no remaining weight", c)
			continue
		}
		l.cfg.Logger.Printf("ripper: class %d started, %.1f instances remaining", c, counts[c])
		expFPRate := counts[c] / sumRemaining

		classResidual := residual
		dl := rulestats.DataDL(expFPRate, 0, classResidual.SumOfWeights(), 0, counts[c])

		rules, newResidual := l.buildRulesetForClass(classResidual, expFPRate, c, dl)
		if l.cfg.UsePruning {
			rules = l.optimizeRuleset(classResidual, rules, expFPRate, c)
			newResidual = classResidual
			for _, r := range rules {
				newResidual = r.NotCoveredBy(newResidual)
			}
		}

		l.cfg.Logger.Printf("ripper: class %d finished, %d rules learned", c, len(rules))
		ruleset = append(ruleset, rules...)
		residual = newResidual
	}

	for _, r := range ruleset {
		r.CleanUp()
	}
	ruleset = append(ruleset, rule.New(numClasses-1))

	return model.New(clean.Schema(), ruleset), nil
}

// growPruneSplit shuffles data via l's owned RNG, stratifies it by class,
// and partitions it into (grow, prune) folds per Config.NumFolds.
func (l *Learner) growPruneSplit(data *dataset.Dataset) (grow, prune *dataset.Dataset) {
	order := l.rng.Perm(data.NumInstances())
	shuffled, err := data.Permute(order)
	if err != nil {
		shuffled = data
	}
	stratified, err := shuffled.Stratify(l.cfg.NumFolds)
	if err != nil {
		stratified = shuffled
	}
	g, p, err := stratified.Partition(l.cfg.NumFolds)
	if err != nil {
		return stratified, stratified.CloneEmpty()
	}
	return g, p
}

func classWeights(d *dataset.Dataset, numClasses int) []float64 {
	w := make([]float64, numClasses)
	for i := 0; i < d.NumInstances(); i++ {
		c := int(d.ClassValue(i))
		if c >= 0 && c < numClasses {
			w[c] += d.Weight(i)
		}
	}
	return w
}

func classWeight(d *dataset.Dataset, class int) float64 {
	var w float64
	for i := 0; i < d.NumInstances(); i++ {
		if int(d.ClassValue(i)) == class {
			w += d.Weight(i)
		}
	}
	return w
}
