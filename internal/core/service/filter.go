package service

import (
	"strings"
	"time"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/sapiens-sapiens/storefront/pkg/textnorm"
	"github.com/sapiens-sapiens/storefront/pkg/urlstate"
)

// FilterProducts returns the subsequence of ps matching the query and
// category, in input order. It is a pure function: the category gates
// first, then the folded query is matched as a substring of the
// name+description+tags haystack. An empty folded query matches
// everything; an unknown category matches nothing.
func FilterProducts(
	ps []domain.Product, query, category string,
) []domain.Product {
	q := textnorm.Fold(query)

	var out []domain.Product
	for _, p := range ps {
		if category != domain.CategoryAll && p.Category != category {
			continue
		}
		if q != "" {
			hay := p.Name + " " + p.Description + " " + strings.Join(p.Tags, " ")
			if !strings.Contains(textnorm.Fold(hay), q) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// VisibleProducts returns the list for the currently applied filter
// state. A query set within the debounce window is not reflected
// until the window elapses.
func (s *Service) VisibleProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps := make([]domain.Product, len(s.visible))
	copy(ps, s.visible)
	return ps
}

func (s *Service) FilterState() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// ShareString encodes the applied filter state for URL mirroring.
func (s *Service) ShareString() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return urlstate.Encode(s.filter)
}

// SetQuery schedules query to become the applied search text after
// the debounce delay. A later call within the window supersedes the
// pending one: last write wins, never two overlapping recomputations.
func (s *Service) SetQuery(query string) {
	s.mu.Lock()

	s.queryGen++
	gen := s.queryGen

	if s.debounce <= 0 {
		s.applyQueryLocked(query)
		s.mu.Unlock()
		s.notify()
		return
	}
	s.mu.Unlock()

	time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		if gen != s.queryGen {
			s.mu.Unlock()
			return
		}
		s.applyQueryLocked(query)
		s.mu.Unlock()
		s.notify()
	})
}

func (s *Service) applyQueryLocked(query string) {
	s.filter.Query = query
	s.recomputeVisibleLocked()
}

// SetCategory applies immediately; only text input is debounced.
// An unrecognized key is stored as-is and matches no products.
func (s *Service) SetCategory(category string) {
	s.mu.Lock()
	s.filter.Category = category
	s.recomputeVisibleLocked()
	s.mu.Unlock()
	s.notify()
}

func (s *Service) recomputeVisibleLocked() {
	s.visible = FilterProducts(
		s.catalog.All(), s.filter.Query, s.filter.Category,
	)
}
