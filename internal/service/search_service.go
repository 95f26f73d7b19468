package service

import (
	"sort"
	"strings"

	"campus-compass-backend/internal/models"
	"campus-compass-backend/internal/repository"
)

type SearchService struct {
	searchRepo *repository.SearchRepository
}

func NewSearchService(searchRepo *repository.SearchRepository) *SearchService {
	return &SearchService{searchRepo: searchRepo}
}

// Search runs the federated query across buildings, classrooms and
// facilities and merges the three lists into one. The merged list is
// ordered by type then display name, so output comes back in category
// blocks (BUILDING, FACILITY, ROOM) rather than relevance-interleaved.
func (s *SearchService) Search(query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []models.SearchResult{}, nil
	}

	buildings, err := s.searchRepo.SearchBuildings(query)
	if err != nil {
		return nil, err
	}
	rooms, err := s.searchRepo.SearchRooms(query)
	if err != nil {
		return nil, err
	}
	facilities, err := s.searchRepo.SearchFacilities(query)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(buildings)+len(rooms)+len(facilities))
	results = append(results, buildings...)
	results = append(results, rooms...)
	results = append(results, facilities...)

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Type != results[j].Type {
			return results[i].Type < results[j].Type
		}
		return strings.ToLower(results[i].DisplayName) < strings.ToLower(results[j].DisplayName)
	})

	return results, nil
}
