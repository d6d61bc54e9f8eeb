package categorizer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service runs the matching pipeline: normalize, vectorize, rank, aggregate and score.
type Service struct {
	cfg        Config
	normalizer Normalizer
	logger     *zap.Logger
}

// NewService constructs a service with the given normalizer and configuration.
func NewService(cfg Config, normalizer Normalizer, logger *zap.Logger) (*Service, error) {
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, normalizer: normalizer, logger: logger}, nil
}

// Config returns a copy of the current configuration.
func (s *Service) Config() Config {
	return s.cfg.Clone()
}

// Run matches every example of every motion against the reference codes and
// scores the aggregated predictions against the annotations.
func (s *Service) Run(ctx context.Context, motions []Motion, refs []ReferenceCode) (Report, error) {
	gold := AggregateAnnotations(motions)

	corpus, err := BuildCorpus(s.normalizer, motions, refs)
	if err != nil {
		return Report{}, fmt.Errorf("build corpus: %w", err)
	}
	s.logger.Info("corpus built",
		zap.Int("queries", corpus.QueryLen()),
		zap.Int("references", corpus.ReferenceLen()))

	matrix, err := NewTfidfVectorizer().FitTransform(corpus.Texts())
	if err != nil {
		return Report{}, fmt.Errorf("vectorize corpus: %w", err)
	}
	s.logger.Info("tf-idf matrix fitted",
		zap.Int("rows", matrix.Rows()),
		zap.Int("terms", len(matrix.Vocabulary())))

	rows := make([][]int, len(motions))
	for i := 0; i < corpus.Boundary(); i++ {
		d := corpus.Document(i)
		rows[d.Motion] = append(rows[d.Motion], i)
	}

	names := make(map[string]string, len(refs))
	for _, r := range refs {
		names[r.ID] = r.Name
	}

	candidates := make([][][]Candidate, len(motions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for mi := range motions {
		mi := mi // per-iteration copy (Go 1.21 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := make([][]Candidate, len(rows[mi]))
			for ei, row := range rows[mi] {
				hits, err := TopK(matrix, row, s.cfg.TopK, corpus.Boundary())
				if err != nil {
					return fmt.Errorf("rank motion %s example %d: %w", motions[mi].ID, ei, err)
				}
				out[ei] = make([]Candidate, len(hits))
				for hi, h := range hits {
					code := corpus.Document(h.Index).Code
					out[ei][hi] = Candidate{Code: code, Name: names[code], Score: h.Score}
				}
			}
			candidates[mi] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	motionPreds := make([]string, len(motions))
	var sentenceGold, sentencePreds []string
	for mi, m := range motions {
		preds := make([]string, len(candidates[mi]))
		for ei, cands := range candidates[mi] {
			preds[ei] = topCode(cands)
		}
		motionPreds[mi] = Majority(preds)
		sentenceGold = append(sentenceGold, m.Codes()...)
		sentencePreds = append(sentencePreds, preds...)
		s.logger.Debug("motion matched",
			zap.String("title", m.Title()),
			zap.String("gold", gold[mi]),
			zap.String("predicted", motionPreds[mi]))
	}

	report, err := Score(motions, gold, motionPreds, sentenceGold, sentencePreds)
	if err != nil {
		return Report{}, fmt.Errorf("score: %w", err)
	}
	for mi := range report.Motions {
		for ei := range report.Motions[mi].Sentences {
			report.Motions[mi].Sentences[ei].Candidates = candidates[mi][ei]
		}
	}
	s.logger.Info("matching finished",
		zap.String("motion_level", report.MotionLevel.String()),
		zap.String("sentence_level", report.SentenceLevel.String()))
	return report, nil
}

// topCode returns the best candidate's code, or NeutralCode when nothing was ranked.
func topCode(cands []Candidate) string {
	if len(cands) == 0 {
		return NeutralCode
	}
	return cands[0].Code
}
