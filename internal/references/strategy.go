// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package references

import (
	"fmt"
	"time"
)

// Strategy is one SERP query in the waterfall. Rank 0 is the most
// precise; higher ranks broaden the query. Strategies are tried in rank
// order and only advanced to while the result set is under target.
type Strategy struct {
	Rank  int
	Query string
}

// Strategies returns the three waterfall queries for keyword, from
// strict statistics scoped to the current year down to a general
// expert-analysis query with no date scope. Pure function of the
// keyword and the reference time.
func Strategies(keyword string, now time.Time) []Strategy {
	year := now.Year()
	return []Strategy{
		{
			Rank: 0,
			Query: fmt.Sprintf(`%s "research" "data" "statistics" %d -site:youtube.com -site:pinterest.com -site:quora.com`,
				keyword, year),
		},
		{
			Rank: 1,
			Query: fmt.Sprintf(`%s "report" "study" "findings" %d..%d -site:youtube.com`,
				keyword, year-1, year),
		},
		{
			Rank:  2,
			Query: keyword + " definitive guide expert analysis",
		},
	}
}
