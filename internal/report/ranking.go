package report

import (
	"sort"

	"github.com/jekabolt/sales-digest/internal/entity"
)

// TopN is the number of products listed in the ranking.
const TopN = 5

// RankProducts sums line item quantities by title and returns the TopN
// titles by quantity. Ties keep the order in which titles were first seen.
func RankProducts(orders []entity.Order) []entity.RankingEntry {
	ranking := make([]entity.RankingEntry, 0)
	index := make(map[string]int)

	for _, o := range orders {
		for _, li := range o.LineItems {
			i, ok := index[li.Title]
			if !ok {
				i = len(ranking)
				index[li.Title] = i
				ranking = append(ranking, entity.RankingEntry{Title: li.Title})
			}
			ranking[i].Quantity += li.Quantity
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})

	if len(ranking) > TopN {
		ranking = ranking[:TopN]
	}
	return ranking
}
