// Package pipeline builds the configured embedder and classifier. It is
// shared by the API server and the trainer so both see the same vectors.
package pipeline

import (
	"fmt"

	"intent-chatbot/config"
	"intent-chatbot/internal/classifier"
	"intent-chatbot/internal/classifier/repository"
	qdrantRepo "intent-chatbot/internal/classifier/repository/qdrant"
	"intent-chatbot/internal/embedding"
	"intent-chatbot/internal/embedding/tfidf"
	"intent-chatbot/internal/intent"
	"intent-chatbot/pkg/log"
	pkgQdrant "intent-chatbot/pkg/qdrant"
	"intent-chatbot/pkg/voyage"
)

// NewEmbedder returns the configured embedder. The TF-IDF vocabulary is
// fitted on the catalog patterns, so training and serving must use the same
// catalog.
func NewEmbedder(cfg config.EmbedderConfig, catalog *intent.Catalog) (embedding.Embedder, error) {
	switch cfg.Type {
	case embedding.NameTFIDF:
		texts, _ := catalog.Examples()
		emb, err := tfidf.NewFitted(texts)
		if err != nil {
			return nil, fmt.Errorf("fit tfidf vocabulary: %w", err)
		}
		return emb, nil
	case embedding.NameVoyage:
		client, err := voyage.New(cfg.Voyage.APIKey)
		if err != nil {
			return nil, err
		}
		client.WithModel(cfg.Voyage.Model).WithBaseURL(cfg.Voyage.BaseURL)
		return embedding.NewVoyage(client, cfg.Voyage.Dimension), nil
	default:
		return nil, fmt.Errorf("unknown embedder type %q", cfg.Type)
	}
}

// EmbedderModel names the concrete model behind emb, recorded in artifacts.
func EmbedderModel(cfg config.EmbedderConfig) string {
	if cfg.Type == embedding.NameVoyage {
		if cfg.Voyage.Model != "" {
			return cfg.Voyage.Model
		}
		return voyage.DefaultModel
	}
	return ""
}

// NewQdrantClient returns a client for the configured Qdrant instance.
func NewQdrantClient(cfg config.QdrantConfig) *pkgQdrant.Client {
	var opts []pkgQdrant.Option
	if cfg.APIKey != "" {
		opts = append(opts, pkgQdrant.WithAPIKey(cfg.APIKey))
	}
	return pkgQdrant.NewClient(cfg.URL, opts...)
}

// NewPatternRepository returns the Qdrant-backed pattern index.
func NewPatternRepository(client pkgQdrant.IQdrant, cfg config.QdrantConfig, l log.Logger) repository.PatternRepository {
	return qdrantRepo.New(client, cfg.CollectionName, l)
}

// NewArtifact captures a trained model for serving. With the TF-IDF embedder
// the fitted vocabulary is stored alongside, so serving does not depend on
// the catalog being unchanged.
func NewArtifact(model *classifier.Softmax, emb embedding.Embedder, cfg config.EmbedderConfig) (classifier.Artifact, error) {
	a := classifier.NewArtifact(model, emb.Name(), EmbedderModel(cfg))
	if t, ok := emb.(*tfidf.Embedder); ok {
		st, err := t.State()
		if err != nil {
			return classifier.Artifact{}, err
		}
		a.Vocabulary = &st
	}
	return a, nil
}

// NewServing returns the embedder and classifier the API serves with. The
// softmax TF-IDF embedder is restored from the model artifact instead of being
// refitted on the catalog.
func NewServing(cfg *config.Config, catalog *intent.Catalog, repo repository.PatternRepository) (embedding.Embedder, classifier.Classifier, error) {
	var emb embedding.Embedder
	if cfg.Classifier.Type == classifier.NameSoftmax && cfg.Embedder.Type == embedding.NameTFIDF {
		artifact, err := classifier.LoadArtifact(cfg.Model.Path)
		if err != nil {
			return nil, nil, err
		}
		t, err := artifact.TFIDFEmbedder()
		if err != nil {
			return nil, nil, err
		}
		emb = t
	} else {
		e, err := NewEmbedder(cfg.Embedder, catalog)
		if err != nil {
			return nil, nil, err
		}
		emb = e
	}

	clf, err := NewClassifier(cfg, catalog, emb, repo)
	if err != nil {
		return nil, nil, err
	}
	return emb, clf, nil
}

// NewClassifier returns the configured classifier. The softmax model is read
// from its artifact and must match emb, down to the TF-IDF vocabulary; the
// neighbour classifier labels are the catalog tags.
func NewClassifier(cfg *config.Config, catalog *intent.Catalog, emb embedding.Embedder, repo repository.PatternRepository) (classifier.Classifier, error) {
	switch cfg.Classifier.Type {
	case classifier.NameSoftmax:
		artifact, err := classifier.LoadArtifact(cfg.Model.Path)
		if err != nil {
			return nil, err
		}
		if t, ok := emb.(*tfidf.Embedder); ok {
			if err := artifact.MatchVocabulary(t); err != nil {
				return nil, err
			}
		}
		return artifact.Classifier(emb.Name(), emb.Dimension())
	case classifier.NameNeighbors:
		if repo == nil {
			return nil, fmt.Errorf("neighbors classifier needs a pattern repository")
		}
		return classifier.NewNeighbors(catalog.Tags(), repo, cfg.Classifier.K, cfg.Classifier.Temperature, emb.Dimension())
	default:
		return nil, fmt.Errorf("unknown classifier type %q", cfg.Classifier.Type)
	}
}
