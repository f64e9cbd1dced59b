package trainer

import (
	"context"
	"errors"
	"fmt"

	"intent-chatbot/internal/classifier"
	"intent-chatbot/internal/classifier/repository"
	"intent-chatbot/internal/embedding"
	"intent-chatbot/internal/intent"
	"intent-chatbot/pkg/log"
)

var ErrTestSetEmpty = errors.New("test fraction leaves no held-out examples")

// Trainer builds classifier state from the intent catalog.
type Trainer struct {
	catalog *intent.Catalog
	emb     embedding.Embedder
	opts    classifier.TrainOptions
	l       log.Logger
}

func New(catalog *intent.Catalog, emb embedding.Embedder, opts classifier.TrainOptions, l log.Logger) *Trainer {
	return &Trainer{catalog: catalog, emb: emb, opts: opts, l: l}
}

// FitReport summarises a training run.
type FitReport struct {
	Examples      int
	Labels        []string
	TrainAccuracy float64
}

// EvalReport is the held-out accuracy of a model fitted on the rest.
type EvalReport struct {
	Train    int
	Test     int
	Accuracy float64
	// Misses lists held-out patterns predicted as another tag.
	Misses []Miss
}

type Miss struct {
	Pattern   string
	Want, Got string
}

type examples struct {
	texts []string
	tags  []string
	vecs  [][]float32
}

// Labels are the catalog tags with at least one pattern, in catalog order.
// Tags without patterns cannot be learned and are left out.
func (t *Trainer) Labels() []string {
	var labels []string
	for _, it := range t.catalog.Intents() {
		if len(it.Patterns) > 0 {
			labels = append(labels, it.Tag)
		}
	}
	return labels
}

func (t *Trainer) encode(ctx context.Context) (examples, error) {
	texts, tags := t.catalog.Examples()
	if len(texts) == 0 {
		return examples{}, classifier.ErrNoTrainingData
	}
	vecs, err := embedding.EncodeAll(ctx, t.emb, texts)
	if err != nil {
		return examples{}, fmt.Errorf("embed patterns: %w", err)
	}
	t.l.Infof(ctx, "internal.trainer: embedded %d patterns with %s (dim=%d)", len(texts), t.emb.Name(), t.emb.Dimension())
	return examples{texts: texts, tags: tags, vecs: vecs}, nil
}

// Fit trains a softmax model on every catalog pattern.
func (t *Trainer) Fit(ctx context.Context) (*classifier.Softmax, FitReport, error) {
	ex, err := t.encode(ctx)
	if err != nil {
		return nil, FitReport{}, err
	}

	labels := t.Labels()
	model, err := classifier.Fit(ex.vecs, ex.tags, labels, t.opts)
	if err != nil {
		return nil, FitReport{}, err
	}

	acc, err := classifier.Accuracy(ctx, model, ex.vecs, ex.tags)
	if err != nil {
		return nil, FitReport{}, err
	}
	t.l.Infof(ctx, "internal.trainer.Fit: %d labels, train accuracy %.3f", len(labels), acc)
	return model, FitReport{Examples: len(ex.texts), Labels: labels, TrainAccuracy: acc}, nil
}

// Evaluate fits on a seeded split of the patterns and scores the rest.
func (t *Trainer) Evaluate(ctx context.Context, testFraction float64, seed uint64) (EvalReport, error) {
	ex, err := t.encode(ctx)
	if err != nil {
		return EvalReport{}, err
	}

	trainIdx, testIdx := classifier.Split(len(ex.texts), testFraction, seed)
	if len(testIdx) == 0 {
		return EvalReport{}, ErrTestSetEmpty
	}

	pick := func(idx []int) ([][]float32, []string) {
		vecs := make([][]float32, len(idx))
		tags := make([]string, len(idx))
		for i, j := range idx {
			vecs[i], tags[i] = ex.vecs[j], ex.tags[j]
		}
		return vecs, tags
	}
	trainVecs, trainTags := pick(trainIdx)

	model, err := classifier.Fit(trainVecs, trainTags, t.Labels(), t.opts)
	if err != nil {
		return EvalReport{}, err
	}

	report := EvalReport{Train: len(trainIdx), Test: len(testIdx)}
	correct := 0
	for _, j := range testIdx {
		dist, err := model.PredictProba(ctx, ex.vecs[j])
		if err != nil {
			return EvalReport{}, err
		}
		best, _ := dist.Best()
		if best.Tag == ex.tags[j] {
			correct++
			continue
		}
		report.Misses = append(report.Misses, Miss{Pattern: ex.texts[j], Want: ex.tags[j], Got: best.Tag})
	}
	report.Accuracy = float64(correct) / float64(len(testIdx))

	t.l.Infof(ctx, "internal.trainer.Evaluate: accuracy %.3f on %d held-out patterns", report.Accuracy, report.Test)
	return report, nil
}

// Index embeds every pattern and rebuilds the neighbour index.
func (t *Trainer) Index(ctx context.Context, repo repository.PatternRepository) (int, error) {
	ex, err := t.encode(ctx)
	if err != nil {
		return 0, err
	}
	dim := t.emb.Dimension()
	if dim == 0 && len(ex.vecs) > 0 {
		dim = len(ex.vecs[0])
	}
	if err := classifier.Index(ctx, repo, dim, ex.texts, ex.tags, ex.vecs); err != nil {
		return 0, err
	}
	return len(ex.texts), nil
}
