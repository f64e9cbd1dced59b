package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"intent-chatbot/internal/embedding"
	"intent-chatbot/internal/embedding/tfidf"
)

// ArtifactVersion is bumped whenever the artifact layout changes.
const ArtifactVersion = 2

// Artifact is the persisted form of a trained Softmax model together with
// the embedding scheme it was trained on.
type Artifact struct {
	Version   int         `json:"version"`
	Embedder  string      `json:"embedder"`
	Model     string      `json:"model,omitempty"` // embedder model, e.g. voyage-3-lite
	Dimension int         `json:"dimension"`
	Labels    []string    `json:"labels"`
	Weights   [][]float32 `json:"weights"`
	Biases    []float32   `json:"biases"`
	Accuracy  float64     `json:"accuracy,omitempty"`
	TrainedAt time.Time   `json:"trained_at"`

	// Vocabulary is the fitted TF-IDF state; set only for the tfidf embedder.
	Vocabulary *tfidf.State `json:"vocabulary,omitempty"`
}

// NewArtifact captures m for persistence.
func NewArtifact(m *Softmax, embedderName, embedderModel string) Artifact {
	return Artifact{
		Version:   ArtifactVersion,
		Embedder:  embedderName,
		Model:     embedderModel,
		Dimension: m.dim,
		Labels:    m.Labels(),
		Weights:   m.weights,
		Biases:    m.biases,
		TrainedAt: time.Now().UTC(),
	}
}

// LoadArtifact reads an artifact from a JSON file.
func LoadArtifact(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read model artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return Artifact{}, fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	if a.Version != ArtifactVersion {
		return Artifact{}, fmt.Errorf("model artifact version %d not supported (want %d)", a.Version, ArtifactVersion)
	}
	return a, nil
}

// Save writes the artifact as JSON, creating parent directories as needed.
func (a Artifact) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Classifier rebuilds the model, checking it matches the serving embedder.
func (a Artifact) Classifier(embedderName string, dimension int) (*Softmax, error) {
	if a.Embedder != embedderName {
		return nil, fmt.Errorf("%w: artifact %q, serving %q", ErrEmbedderMismatch, a.Embedder, embedderName)
	}
	m, err := NewSoftmax(a.Labels, a.Weights, a.Biases)
	if err != nil {
		return nil, err
	}
	if m.dim != a.Dimension || (dimension > 0 && m.dim != dimension) {
		return nil, fmt.Errorf("model has %d dims, artifact says %d, embedder gives %d: %w", m.dim, a.Dimension, dimension, ErrDimensionMismatch)
	}
	return m, nil
}

// TFIDFEmbedder rebuilds the TF-IDF embedder the model was trained with.
func (a Artifact) TFIDFEmbedder() (*tfidf.Embedder, error) {
	if a.Embedder != embedding.NameTFIDF || a.Vocabulary == nil {
		return nil, fmt.Errorf("%w: artifact carries no tfidf vocabulary, retrain the model", ErrEmbedderMismatch)
	}
	return tfidf.FromState(*a.Vocabulary)
}

// MatchVocabulary fails unless emb encodes into the same columns, with the
// same weights, as the embedder the model was trained with.
func (a Artifact) MatchVocabulary(emb *tfidf.Embedder) error {
	if a.Vocabulary == nil {
		return fmt.Errorf("%w: artifact carries no tfidf vocabulary, retrain the model", ErrEmbedderMismatch)
	}
	st, err := emb.State()
	if err != nil {
		return err
	}
	if !slices.Equal(st.Terms, a.Vocabulary.Terms) || !slices.Equal(st.IDF, a.Vocabulary.IDF) {
		return fmt.Errorf("%w: tfidf vocabulary differs from the trained one, retrain the model", ErrEmbedderMismatch)
	}
	return nil
}
