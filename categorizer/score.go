package categorizer

import "fmt"

// Score compares motion-level and sentence-level predictions with the
// annotations. sentenceGold and sentencePreds are flattened in motion order.
func Score(motions []Motion, gold, motionPreds, sentenceGold, sentencePreds []string) (Report, error) {
	if len(gold) != len(motions) || len(motionPreds) != len(motions) {
		return Report{}, fmt.Errorf("%w: %d motions, %d gold, %d predictions",
			ErrLengthMismatch, len(motions), len(gold), len(motionPreds))
	}
	total := 0
	for _, m := range motions {
		total += len(m.Examples)
	}
	if len(sentenceGold) != total || len(sentencePreds) != total {
		return Report{}, fmt.Errorf("%w: %d sentences, %d gold, %d predictions",
			ErrLengthMismatch, total, len(sentenceGold), len(sentencePreds))
	}

	report := Report{Motions: make([]MotionResult, len(motions))}
	motionCorrect, sentenceCorrect := 0, 0
	seen := 0
	for i, m := range motions {
		res := MotionResult{
			ID:        m.ID,
			Title:     m.Title(),
			Gold:      gold[i],
			Predicted: motionPreds[i],
			Match:     gold[i] == motionPreds[i],
			Sentences: make([]SentenceResult, len(m.Examples)),
		}
		if res.Match {
			motionCorrect++
		}
		for j, ex := range m.Examples {
			k := seen + j
			s := SentenceResult{
				Annotated: sentenceGold[k],
				Predicted: sentencePreds[k],
				Match:     sentenceGold[k] == sentencePreds[k],
			}
			if len(ex.Fields) > 1 {
				s.Text = ex.Fields[1]
			} else if len(ex.Fields) == 1 {
				s.Text = ex.Fields[0]
			}
			if s.Match {
				sentenceCorrect++
			}
			res.Sentences[j] = s
		}
		seen += len(m.Examples)
		report.Motions[i] = res
	}
	report.MotionLevel = NewRate(motionCorrect, len(motions))
	report.SentenceLevel = NewRate(sentenceCorrect, total)
	return report, nil
}
