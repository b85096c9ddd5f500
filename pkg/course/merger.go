// Package course builds a bounded, ordered itinerary out of the two search
// backends' result sets. Used whenever the curation provider does not return
// an ordered course of its own.
package course

import (
	"sort"
	"strconv"
	"strings"

	"mannam/entities"
	"mannam/pkg/area"
	"mannam/pkg/tour"
)

const (
	maxAnchors     = 3
	maxFood        = 2
	maxExtra       = 2
	sentinelRank   = 99
	defaultTitle   = "추천 여행 코스"
	mergeSummary   = "KorService2 + TarRlteTarService1 데이터 기반 추천"
	anchorCategory = "관광지"
	extraCategory  = "연관 관광지"
)

// Merge combines keyword hits and related-attraction hits into one course:
// up to 3 keyword attractions in source order, then up to 2 related food
// spots by ascending rank, then up to 2 more related attractions by rank.
// Deterministic for a given input; an empty input yields an empty course.
func Merge(keyword []tour.KeywordItem, related []tour.RelatedItem, theme string) *entities.Course {
	stops := make([]entities.CourseStop, 0, maxAnchors+maxFood+maxExtra)
	seen := map[string]bool{}

	for _, it := range keyword {
		if it.ContentTypeID != area.ContentTypeAttraction {
			continue
		}
		stops = append(stops, entities.CourseStop{
			Name:      it.Title,
			Address:   it.Addr1,
			Category:  anchorCategory,
			ContentID: it.ContentID,
			MapX:      it.MapX,
			MapY:      it.MapY,
		})
		seen[it.Title] = true
		if len(stops) >= maxAnchors {
			break
		}
	}

	for _, it := range pickRelated(related, area.CategoryFood, seen, maxFood) {
		cat := it.CategorySmall
		if cat == "" {
			cat = area.CategoryFood
		}
		stops = append(stops, entities.CourseStop{Name: it.Name, Category: cat})
		seen[it.Name] = true
	}

	for _, it := range pickRelated(related, area.CategoryAttraction, seen, maxExtra) {
		stops = append(stops, entities.CourseStop{Name: it.Name, Category: extraCategory})
		seen[it.Name] = true
	}

	for i := range stops {
		stops[i].Order = i + 1
	}

	title := defaultTitle
	if t := strings.TrimSpace(theme); t != "" {
		title = t + " 테마 추천 코스"
	}
	return &entities.Course{
		Title:   title,
		Stops:   stops,
		Summary: mergeSummary,
	}
}

// pickRelated filters by large category, drops already-picked names, and
// stable-sorts ascending by rank so equal ranks keep their source order.
func pickRelated(related []tour.RelatedItem, categoryLarge string, seen map[string]bool, limit int) []tour.RelatedItem {
	var out []tour.RelatedItem
	for _, it := range related {
		if it.CategoryLarge != categoryLarge || seen[it.Name] {
			continue
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(out[i]) < rankOf(out[j])
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// rankOf parses the source-supplied rank; anything non-numeric sorts last.
func rankOf(it tour.RelatedItem) int {
	n, err := strconv.Atoi(strings.TrimSpace(it.Rank.String()))
	if err != nil {
		return sentinelRank
	}
	return n
}
