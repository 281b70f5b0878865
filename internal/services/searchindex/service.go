package searchindex

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Hit is one ranked search result
type Hit struct {
	PartID uint    `json:"part_id"`
	Score  float64 `json:"score"`
}

// partDocument is the indexed shape: part text keyed by the decimal part id
type partDocument struct {
	Text string `json:"text"`
}

// Index wraps the embedded full-text index over part text. Reads can run
// concurrently; mutations serialize behind the writer mutex so the index
// behaves as a single-writer, multi-reader resource.
type Index struct {
	index bleve.Index
	mu    sync.Mutex
}

// Open opens the index at path, creating it if it does not exist
func Open(path string) (*Index, error) {
	index, err := bleve.Open(path)
	if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
		index, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("opening search index at %s: %w", path, err)
	}
	return &Index{index: index}, nil
}

// OpenMemOnly creates an in-memory index, used by tests
func OpenMemOnly() (*Index, error) {
	index, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("creating in-memory search index: %w", err)
	}
	return &Index{index: index}, nil
}

func buildMapping() mapping.IndexMapping {
	return bleve.NewIndexMapping()
}

// UpsertPart replaces the indexed document for a part. Indexing under an
// existing id overwrites the previous document, so callers never have to
// pair a delete with an add for in-place text changes.
func (i *Index) UpsertPart(partID uint, text string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.index.Index(docID(partID), partDocument{Text: text}); err != nil {
		return fmt.Errorf("indexing part %d: %w", partID, err)
	}
	return nil
}

// DeletePart removes a part's document. Deleting an id that was never
// indexed is a no-op.
func (i *Index) DeletePart(partID uint) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.index.Delete(docID(partID)); err != nil {
		return fmt.Errorf("deleting part %d from index: %w", partID, err)
	}
	return nil
}

// Search runs a ranked match query over part text
func (i *Index) Search(query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 25
	}

	request := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	result, err := i.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	hits := make([]Hit, 0, len(result.Hits))
	for _, match := range result.Hits {
		id, err := strconv.ParseUint(match.ID, 10, 32)
		if err != nil {
			continue // stale document with a foreign id shape
		}
		hits = append(hits, Hit{PartID: uint(id), Score: match.Score})
	}
	return hits, nil
}

// RebuildFrom re-indexes every part from a relational snapshot, the
// reconciliation path for when the index and the database diverge.
func (i *Index) RebuildFrom(parts map[uint]string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.index.NewBatch()
	for id, text := range parts {
		if err := batch.Index(docID(id), partDocument{Text: text}); err != nil {
			return fmt.Errorf("batching part %d: %w", id, err)
		}
	}
	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("applying rebuild batch: %w", err)
	}
	return nil
}

// Close releases the underlying index
func (i *Index) Close() error {
	return i.index.Close()
}

func docID(partID uint) string {
	return strconv.FormatUint(uint64(partID), 10)
}
