package model

import "github.com/katalvlaran/ripper/dataset"

// ClassMeasures is the weighted confusion-matrix summary for one class
// treated as the positive label.
type ClassMeasures struct {
	Positives   float64
	Negatives   float64
	TP          float64
	TN          float64
	FP          float64
	FN          float64
	Accuracy    float64
	Sensitivity float64
	Specificity float64
	PPV         float64
	NPV         float64
}

// Test scores m's predictions against data's true class labels, returning
// one ClassMeasures per class. For a binary class attribute (domain size
// 2), it returns a single-element slice for the positive class, index 1.
func (m *Model) Test(data *dataset.Dataset) ([]ClassMeasures, error) {
	aligned, err := m.align(data)
	if err != nil {
		return nil, err
	}
	predictions, err := m.Predict(aligned)
	if err != nil {
		return nil, err
	}

	numClasses := aligned.ClassAttr().NumValues()
	measures := make([]ClassMeasures, numClasses)
	for i, pred := range predictions {
		w := aligned.Weight(i)
		actual := int(aligned.ClassValue(i))
		for c := 0; c < numClasses; c++ {
			isPos := actual == c
			predPos := pred == c
			if isPos {
				measures[c].Positives += w
			} else {
				measures[c].Negatives += w
			}
			switch {
			case isPos && predPos:
				measures[c].TP += w
			case !isPos && !predPos:
				measures[c].TN += w
			case !isPos && predPos:
				measures[c].FP += w
			default:
				measures[c].FN += w
			}
		}
	}

	for c := range measures {
		finalizeMeasures(&measures[c])
	}

	if numClasses == 2 {
		return measures[1:2], nil
	}
	return measures, nil
}

func finalizeMeasures(m *ClassMeasures) {
	total := m.Positives + m.Negatives
	if total > 0 {
		m.Accuracy = (m.TP + m.TN) / total
	}
	if m.Positives > 0 {
		m.Sensitivity = m.TP / m.Positives
	}
	if m.Negatives > 0 {
		m.Specificity = m.TN / m.Negatives
	}
	if predPosTotal := m.TP + m.FP; predPosTotal > 0 {
		m.PPV = m.TP / predPosTotal
	}
	if predNegTotal := m.TN + m.FN; predNegTotal > 0 {
		m.NPV = m.TN / predNegTotal
	}
}
