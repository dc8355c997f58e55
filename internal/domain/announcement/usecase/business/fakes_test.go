package business

import (
	"context"
	"sync"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []dto.AnnouncementEvent
	err    error
}

func (p *fakePublisher) PublishAnnouncementEvent(_ context.Context, event *dto.AnnouncementEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, *event)
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeIndex struct {
	docs      map[uint]dto.SearchDocument
	hits      []uint
	searchErr error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: map[uint]dto.SearchDocument{}}
}

func (f *fakeIndex) Upsert(doc *dto.SearchDocument) error {
	f.docs[doc.ID] = *doc
	return nil
}

func (f *fakeIndex) Remove(id uint) error {
	delete(f.docs, id)
	return nil
}

func (f *fakeIndex) Rebuild(docs []dto.SearchDocument) error {
	f.docs = map[uint]dto.SearchDocument{}
	for _, d := range docs {
		f.docs[d.ID] = d
	}
	return nil
}

func (f *fakeIndex) Search(string, int) ([]uint, error) {
	return f.hits, f.searchErr
}

type fakeMetrics struct {
	engagement map[string]int
	searches   int
}

func (m *fakeMetrics) RecordEngagement(kind string) {
	if m.engagement == nil {
		m.engagement = map[string]int{}
	}
	m.engagement[kind]++
}

func (m *fakeMetrics) RecordSearch() {
	m.searches++
}

// interleavingRepository applies counter bumps right after the first GetByID,
// as if other requests had committed views between Update's read and write
type interleavingRepository struct {
	deps.AnnouncementRepository
	bumps int
	done  bool
}

func (r *interleavingRepository) GetByID(ctx context.Context, id uint) (*entities.Announcement, error) {
	a, err := r.AnnouncementRepository.GetByID(ctx, id)
	if err != nil || r.done {
		return a, err
	}
	r.done = true
	for i := 0; i < r.bumps; i++ {
		if _, err := r.AnnouncementRepository.IncrementCounter(ctx, id, deps.CounterViews, 1); err != nil {
			return nil, err
		}
	}
	return a, nil
}
