package links

import (
	"strings"
	"testing"

	"github.com/pdiddy/content-engine/pkg/types"
)

var inventory = []types.Page{
	{Slug: "wireless-earbuds-guide", Title: "Wireless Earbuds Buying Guide"},
	{Slug: "earbuds-battery-life", Title: "Earbuds Battery Life Compared"},
	{Slug: "home-office-setup", Title: "Home Office Setup Checklist"},
	{Slug: "noise-cancelling-earbuds", Title: "Best Noise Cancelling Wireless Earbuds"},
	{Slug: "standing-desks", Title: "Standing Desks Reviewed"},
}

func TestSuggestOverlapFirst(t *testing.T) {
	got := Suggest("Wireless Earbuds Under $100", inventory, 3)

	if len(got) != 3 {
		t.Fatalf("len(suggestions) = %d, want 3", len(got))
	}

	// Two pages share "wireless" and "earbuds"; they come first in
	// inventory order.
	if got[0].TargetSlug != "wireless-earbuds-guide" {
		t.Errorf("got[0].TargetSlug = %s", got[0].TargetSlug)
	}
	if got[1].TargetSlug != "noise-cancelling-earbuds" {
		t.Errorf("got[1].TargetSlug = %s", got[1].TargetSlug)
	}
	for _, s := range got[:2] {
		if !strings.HasPrefix(s.Context, "Related to") {
			t.Errorf("overlap suggestion context = %q, want Related to prefix", s.Context)
		}
		if s.Placement != "Body section" {
			t.Errorf("placement = %q", s.Placement)
		}
	}

	// Third slot is padding.
	if got[2].Context != "Contextually relevant" {
		t.Errorf("got[2].Context = %q", got[2].Context)
	}
}

func TestSuggestSingleWordOverlapIsNotAMatch(t *testing.T) {
	got := Suggest("Earbuds Cleaning Tips", inventory, 10)

	// Every page sharing just one substantial word lands in padding.
	for _, s := range got {
		if strings.HasPrefix(s.Context, "Related to") {
			t.Errorf("one-word overlap treated as match: %+v", s)
		}
	}
}

func TestSuggestNoDuplicates(t *testing.T) {
	got := Suggest("Wireless Earbuds Buying Guide", inventory, 10)

	if len(got) != len(inventory) {
		t.Fatalf("len(suggestions) = %d, want %d", len(got), len(inventory))
	}
	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s.TargetSlug] {
			t.Errorf("duplicate target slug %s", s.TargetSlug)
		}
		seen[s.TargetSlug] = true
	}
}

func TestSuggestTargetCountCap(t *testing.T) {
	if got := Suggest("Wireless Earbuds", inventory, 2); len(got) != 2 {
		t.Errorf("len(suggestions) = %d, want 2", len(got))
	}
}

func TestSuggestEmptyInventory(t *testing.T) {
	if got := Suggest("Anything", nil, 10); len(got) != 0 {
		t.Errorf("len(suggestions) = %d, want 0", len(got))
	}
}

func TestCommonWords(t *testing.T) {
	got := commonWords(
		[]string{"best", "wireless", "earbuds", "for", "running"},
		[]string{"wireless", "earbuds", "running", "shoes"},
	)
	want := []string{"wireless", "earbuds", "running"}

	if len(got) != len(want) {
		t.Fatalf("commonWords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("commonWords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCommonWordsShortWordsIgnored(t *testing.T) {
	if got := commonWords([]string{"top", "ten", "tips"}, []string{"top", "ten"}); len(got) != 0 {
		t.Errorf("commonWords = %v, want none (all under length threshold)", got)
	}
}
