package search

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	htmlchar "github.com/blevesearch/bleve/v2/analysis/char/html"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/token/porter"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/rs/zerolog"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
)

const htmlAnalyzer = "html_en"

// IndexMetrics receives the indexed document count after every change
type IndexMetrics interface {
	SetIndexedDocuments(count uint64)
}

// Index wraps a Bleve index over published announcements
type Index struct {
	mu      sync.RWMutex
	index   bleve.Index
	metrics IndexMetrics
	logger  zerolog.Logger
}

// indexedDocument is the stored shape; field names are the mapping paths
type indexedDocument struct {
	Headline string
	Syn      string
	Body     string
	Slug     string
}

// Open opens or creates the index at path; an empty path keeps it in memory
func Open(path string, m IndexMetrics, logger zerolog.Logger) (*Index, error) {
	var (
		idx bleve.Index
		err error
	)

	if path == "" {
		idx, err = bleve.NewMemOnly(buildIndexMapping())
	} else {
		idx, err = bleve.Open(path)
		if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
			idx, err = bleve.New(path, buildIndexMapping())
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	i := &Index{
		index:   idx,
		metrics: m,
		logger:  logger.With().Str("component", "search").Logger(),
	}
	i.reportCount()

	return i, nil
}

// buildIndexMapping stems every field in English; the body is stripped of markup first.
// Queries against the composite field use the same analyzer so stems line up.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName
	_ = indexMapping.AddCustomAnalyzer(htmlAnalyzer, map[string]interface{}{
		"type":          custom.Name,
		"char_filters":  []string{htmlchar.Name},
		"tokenizer":     unicode.Name,
		"token_filters": []string{lowercase.Name, en.StopName, porter.Name},
	})

	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = en.AnalyzerName

	bodyField := bleve.NewTextFieldMapping()
	bodyField.Analyzer = htmlAnalyzer

	slugField := bleve.NewTextFieldMapping()

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("Headline", textField)
	docMapping.AddFieldMappingsAt("Syn", textField)
	docMapping.AddFieldMappingsAt("Body", bodyField)
	docMapping.AddFieldMappingsAt("Slug", slugField)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// Upsert adds or replaces a document
func (i *Index) Upsert(doc *dto.SearchDocument) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.index.Index(docID(doc.ID), toIndexed(doc)); err != nil {
		return fmt.Errorf("index document %d: %w", doc.ID, err)
	}
	i.reportCount()
	return nil
}

// Remove drops a document; removing an absent id is not an error
func (i *Index) Remove(id uint) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.index.Delete(docID(id)); err != nil {
		return fmt.Errorf("delete document %d: %w", id, err)
	}
	i.reportCount()
	return nil
}

// Rebuild replaces the whole index content with docs in one batch
func (i *Index) Rebuild(docs []dto.SearchDocument) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	existing, err := i.allIDs()
	if err != nil {
		return err
	}

	batch := i.index.NewBatch()
	for _, id := range existing {
		batch.Delete(id)
	}
	for idx := range docs {
		doc := &docs[idx]
		if err := batch.Index(docID(doc.ID), toIndexed(doc)); err != nil {
			return fmt.Errorf("batch index %d: %w", doc.ID, err)
		}
	}

	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}

	i.reportCount()
	return nil
}

// Search runs a query string query and returns ids by descending score
func (i *Index) Search(queryStr string, limit int) ([]uint, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	req := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(queryStr), limit, 0, false)
	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	ids := make([]uint, 0, len(res.Hits))
	for _, hit := range res.Hits {
		id, err := strconv.ParseUint(hit.ID, 10, 64)
		if err != nil {
			i.logger.Warn().Str("doc_id", hit.ID).Msg("Skipping non-numeric document id")
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// Count returns the number of documents in the index
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

// Close closes the index
func (i *Index) Close() error {
	return i.index.Close()
}

func (i *Index) allIDs() ([]string, error) {
	count, err := i.index.DocCount()
	if err != nil || count == 0 {
		return nil, err
	}

	req := bleve.NewSearchRequestOptions(query.NewMatchAllQuery(), int(count), 0, false)
	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

func (i *Index) reportCount() {
	count, err := i.index.DocCount()
	if err != nil {
		i.logger.Warn().Err(err).Msg("Failed to count indexed documents")
		return
	}
	i.metrics.SetIndexedDocuments(count)
}

func docID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func toIndexed(doc *dto.SearchDocument) indexedDocument {
	return indexedDocument{
		Headline: doc.Headline,
		Syn:      doc.Syn,
		Body:     doc.Body,
		Slug:     doc.Slug,
	}
}
