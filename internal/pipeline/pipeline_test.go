package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"intent-chatbot/config"
	"intent-chatbot/internal/classifier"
	"intent-chatbot/internal/classifier/repository"
	"intent-chatbot/internal/embedding"
	"intent-chatbot/internal/intent"
)

type nopRepo struct{}

func (nopRepo) Recreate(context.Context, int) error {
	return nil
}

func (nopRepo) Upsert(context.Context, []repository.Pattern) error {
	return nil
}

func (nopRepo) Search(context.Context, []float32, int) ([]repository.Hit, error) {
	return nil, nil
}

func testCatalog(t *testing.T) *intent.Catalog {
	t.Helper()
	c, err := intent.NewCatalog([]intent.Intent{
		{Tag: "greeting", Patterns: []string{"hi there", "hello"}, Responses: []string{"Hello!"}},
		{Tag: "fees", Patterns: []string{"what are the fees", "tuition cost"}, Responses: []string{"Fees are X"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewEmbedder(t *testing.T) {
	cat := testCatalog(t)

	t.Run("TFIDF", func(t *testing.T) {
		emb, err := NewEmbedder(config.EmbedderConfig{Type: "tfidf"}, cat)
		if err != nil {
			t.Fatal(err)
		}
		if emb.Name() != embedding.NameTFIDF || emb.Dimension() == 0 {
			t.Errorf("unexpected embedder %s/%d", emb.Name(), emb.Dimension())
		}
	})

	t.Run("Voyage Needs Key", func(t *testing.T) {
		if _, err := NewEmbedder(config.EmbedderConfig{Type: "voyage"}, cat); err == nil {
			t.Error("expected error without api key")
		}
	})

	t.Run("Voyage", func(t *testing.T) {
		emb, err := NewEmbedder(config.EmbedderConfig{Type: "voyage", Voyage: config.VoyageConfig{APIKey: "k", Dimension: 512}}, cat)
		if err != nil {
			t.Fatal(err)
		}
		if emb.Name() != embedding.NameVoyage || emb.Dimension() != 512 {
			t.Errorf("unexpected embedder %s/%d", emb.Name(), emb.Dimension())
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if _, err := NewEmbedder(config.EmbedderConfig{Type: "word2vec"}, cat); err == nil {
			t.Error("expected error")
		}
	})
}

func TestNewClassifier(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	emb, err := NewEmbedder(config.EmbedderConfig{Type: "tfidf"}, cat)
	if err != nil {
		t.Fatal(err)
	}

	texts, tags := cat.Examples()
	vecs, err := embedding.EncodeAll(ctx, emb, texts)
	if err != nil {
		t.Fatal(err)
	}
	model, err := classifier.Fit(vecs, tags, cat.Tags(), classifier.DefaultTrainOptions())
	if err != nil {
		t.Fatal(err)
	}
	artifact, err := NewArtifact(model, emb, config.EmbedderConfig{Type: "tfidf"})
	if err != nil {
		t.Fatal(err)
	}
	if artifact.Vocabulary == nil {
		t.Fatal("expected tfidf vocabulary in artifact")
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := artifact.Save(path); err != nil {
		t.Fatal(err)
	}

	t.Run("Softmax From Artifact", func(t *testing.T) {
		cfg := &config.Config{Model: config.ModelConfig{Path: path}, Classifier: config.ClassifierConfig{Type: "softmax"}}
		clf, err := NewClassifier(cfg, cat, emb, nil)
		if err != nil {
			t.Fatal(err)
		}
		vec, _ := emb.Encode(ctx, "what are the fees")
		d, err := clf.PredictProba(ctx, vec)
		if err != nil {
			t.Fatal(err)
		}
		if best, _ := d.Best(); best.Tag != "fees" {
			t.Errorf("expected fees, got %+v", d)
		}
	})

	t.Run("Softmax Rejects Other Embedder", func(t *testing.T) {
		voy, _ := NewEmbedder(config.EmbedderConfig{Type: "voyage", Voyage: config.VoyageConfig{APIKey: "k"}}, cat)
		cfg := &config.Config{Model: config.ModelConfig{Path: path}, Classifier: config.ClassifierConfig{Type: "softmax"}}
		if _, err := NewClassifier(cfg, cat, voy, nil); !errors.Is(err, classifier.ErrEmbedderMismatch) {
			t.Errorf("expected ErrEmbedderMismatch, got %v", err)
		}
	})

	t.Run("Neighbors", func(t *testing.T) {
		cfg := &config.Config{Classifier: config.ClassifierConfig{Type: "neighbors", K: 5, Temperature: 0.1}}
		clf, err := NewClassifier(cfg, cat, emb, nopRepo{})
		if err != nil {
			t.Fatal(err)
		}
		if got := clf.Labels(); len(got) != 2 || got[0] != "greeting" {
			t.Errorf("unexpected labels %v", got)
		}
		if _, err := NewClassifier(cfg, cat, emb, nil); err == nil {
			t.Error("expected error without repository")
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		cfg := &config.Config{Classifier: config.ClassifierConfig{Type: "svm"}}
		if _, err := NewClassifier(cfg, cat, emb, nil); err == nil {
			t.Error("expected error")
		}
	})
}

// trainSoftmax fits and saves a tfidf softmax model for cat, as `trainer fit`
// does, and returns the serving config pointing at it.
func trainSoftmax(t *testing.T, cat *intent.Catalog) *config.Config {
	t.Helper()
	ctx := context.Background()
	emb, err := NewEmbedder(config.EmbedderConfig{Type: "tfidf"}, cat)
	if err != nil {
		t.Fatal(err)
	}
	texts, tags := cat.Examples()
	vecs, err := embedding.EncodeAll(ctx, emb, texts)
	if err != nil {
		t.Fatal(err)
	}
	model, err := classifier.Fit(vecs, tags, cat.Tags(), classifier.DefaultTrainOptions())
	if err != nil {
		t.Fatal(err)
	}
	artifact, err := NewArtifact(model, emb, config.EmbedderConfig{Type: "tfidf"})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := artifact.Save(path); err != nil {
		t.Fatal(err)
	}
	return &config.Config{
		Model:      config.ModelConfig{Path: path},
		Embedder:   config.EmbedderConfig{Type: "tfidf"},
		Classifier: config.ClassifierConfig{Type: "softmax"},
	}
}

func TestNewServing(t *testing.T) {
	ctx := context.Background()
	trained, err := intent.NewCatalog([]intent.Intent{
		{Tag: "fees", Patterns: []string{"fees cost"}, Responses: []string{"Fees are X"}},
		{Tag: "greeting", Patterns: []string{"hello there"}, Responses: []string{"Hello!"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Same vocabulary size, different terms.
	edited, err := intent.NewCatalog([]intent.Intent{
		{Tag: "fees", Patterns: []string{"tuition cost"}, Responses: []string{"Fees are X"}},
		{Tag: "greeting", Patterns: []string{"hello there"}, Responses: []string{"Hello!"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	cfg := trainSoftmax(t, trained)

	t.Run("Serves Trained Vocabulary After Catalog Edit", func(t *testing.T) {
		emb, clf, err := NewServing(cfg, edited, nil)
		if err != nil {
			t.Fatal(err)
		}
		vec, err := emb.Encode(ctx, "hello there")
		if err != nil {
			t.Fatal(err)
		}
		d, err := clf.PredictProba(ctx, vec)
		if err != nil {
			t.Fatal(err)
		}
		if best, _ := d.Best(); best.Tag != "greeting" || best.Prob < 0.6 {
			t.Errorf("expected confident greeting, got %+v", d)
		}
	})

	t.Run("Refitted Vocabulary Is Rejected", func(t *testing.T) {
		emb, err := NewEmbedder(config.EmbedderConfig{Type: "tfidf"}, edited)
		if err != nil {
			t.Fatal(err)
		}
		if emb.Dimension() != 4 {
			t.Fatalf("expected the edited catalog to keep 4 terms, got %d", emb.Dimension())
		}
		if _, err := NewClassifier(cfg, edited, emb, nil); !errors.Is(err, classifier.ErrEmbedderMismatch) {
			t.Errorf("expected ErrEmbedderMismatch, got %v", err)
		}
	})

	t.Run("Artifact Without Vocabulary", func(t *testing.T) {
		model, _ := classifier.NewSoftmax([]string{"fees", "greeting"}, [][]float32{{1, 0}, {0, 1}}, []float32{0, 0})
		path := filepath.Join(t.TempDir(), "old.json")
		if err := classifier.NewArtifact(model, "tfidf", "").Save(path); err != nil {
			t.Fatal(err)
		}
		old := *cfg
		old.Model.Path = path
		if _, _, err := NewServing(&old, trained, nil); !errors.Is(err, classifier.ErrEmbedderMismatch) {
			t.Errorf("expected ErrEmbedderMismatch, got %v", err)
		}
	})

	t.Run("Neighbors Fits On Catalog", func(t *testing.T) {
		ncfg := &config.Config{
			Embedder:   config.EmbedderConfig{Type: "tfidf"},
			Classifier: config.ClassifierConfig{Type: "neighbors", K: 5, Temperature: 0.1},
		}
		emb, clf, err := NewServing(ncfg, edited, nopRepo{})
		if err != nil {
			t.Fatal(err)
		}
		if emb.Name() != embedding.NameTFIDF || len(clf.Labels()) != 2 {
			t.Errorf("unexpected pipeline %s/%v", emb.Name(), clf.Labels())
		}
	})
}
