package catalog

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// exampleSnapshot is the worked three-entry dataset: A and C share category
// "sci" and tag "fun", B is alone in "hist", C additionally carries "dark".
func exampleSnapshot() *Snapshot {
	return &Snapshot{
		Categories: []Category{{Name: "sci"}, {Name: "hist"}},
		Entries: []Entry{
			{ID: "A", Title: "Alpha ray", Summary: "the first one", Categories: []string{"sci"}, Tags: []string{"fun"}},
			{ID: "B", Title: "Bronze age", Summary: "the second one", Categories: []string{"hist"}},
			{ID: "C", Title: "Cosmic dust", Summary: "the third one", Categories: []string{"sci"}, Tags: []string{"fun", "dark"}},
		},
	}
}

func mustIndex(t *testing.T, snap *Snapshot) *Index {
	t.Helper()
	ix, err := BuildIndex(snap)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return ix
}

func TestList_NoFilterReturnsDatasetOrder(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())
	got := entryIDs(ix.List(Filter{}))
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestList_CategoryFilter(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())
	got := entryIDs(ix.List(Filter{Category: "sci"}))
	if !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Fatalf("List(category=sci) = %v, want [A C]", got)
	}
}

func TestList_BothFiltersAreAND(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())

	if got := entryIDs(ix.List(Filter{Category: "sci", Tag: "dark"})); !reflect.DeepEqual(got, []string{"C"}) {
		t.Fatalf("List(sci, dark) = %v, want [C]", got)
	}
	// B is in hist but carries no tags: the intersection is empty, which is
	// a valid outcome, not an error.
	if got := ix.List(Filter{Category: "hist", Tag: "fun"}); len(got) != 0 {
		t.Fatalf("List(hist, fun) = %v, want empty", entryIDs(got))
	}
}

func TestList_UnknownFilterIsEmpty(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())
	if got := ix.List(Filter{Category: "nope"}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", entryIDs(got))
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())

	if got := entryIDs(ix.Search("cosmic", SearchOptions{})); !reflect.DeepEqual(got, []string{"C"}) {
		t.Fatalf("Search(cosmic) = %v, want [C]", got)
	}
	if got := entryIDs(ix.Search("RAY", SearchOptions{})); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("Search(RAY) = %v, want [A]", got)
	}
	// "the" appears in every summary; order stays dataset order.
	if got := entryIDs(ix.Search("the", SearchOptions{})); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("Search(the) = %v, want [A B C]", got)
	}
}

func TestSearch_BlankQueryEqualsUnfilteredList(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())
	want := entryIDs(ix.List(Filter{}))
	for _, q := range []string{"", "   ", "\t"} {
		if got := entryIDs(ix.Search(q, SearchOptions{})); !reflect.DeepEqual(got, want) {
			t.Fatalf("Search(%q) = %v, want %v", q, got, want)
		}
	}
}

func TestSearch_TitleOnly(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())

	// "first" only occurs in A's summary.
	if got := entryIDs(ix.Search("first", SearchOptions{})); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("Search(first) = %v, want [A]", got)
	}
	if got := ix.Search("first", SearchOptions{TitleOnly: true}); len(got) != 0 {
		t.Fatalf("title-only Search(first) = %v, want empty", entryIDs(got))
	}
}

func TestSearch_FoldingOptions(t *testing.T) {
	snap := &Snapshot{Entries: []Entry{
		{ID: "cafe", Title: "Café society"},
	}}
	ix := mustIndex(t, snap)

	if got := ix.Search("cafe", SearchOptions{}); len(got) != 1 {
		t.Fatalf("expected accent-folded match, got %v", entryIDs(got))
	}
	if got := ix.Search("cafe", SearchOptions{KeepAccents: true}); len(got) != 0 {
		t.Fatalf("expected no match with accents kept, got %v", entryIDs(got))
	}
	if got := ix.Search("CAFÉ", SearchOptions{MatchCase: true}); len(got) != 0 {
		t.Fatalf("expected no match with case preserved, got %v", entryIDs(got))
	}
}

func TestShow(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())

	e, err := ix.Show("B")
	if err != nil {
		t.Fatalf("Show(B): %v", err)
	}
	if e.ID != "B" || e.Title != "Bronze age" {
		t.Fatalf("unexpected entry: %+v", e)
	}

	if _, err := ix.Show("Z"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Show(Z): expected ErrNotFound, got %v", err)
	}
}

func TestRandom_DeterministicWithSeed(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())
	f := Filter{Category: "sci"}

	first, err := ix.Random(f, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ix.Random(f, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("seed 42 gave %q then %q", first.ID, again.ID)
		}
	}
	if first.Categories[0] != "sci" {
		t.Fatalf("Random ignored the filter: %+v", first)
	}
}

func TestRandom_RoughlyUniformAcrossSeeds(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())

	const trials = 600
	picks := make(map[string]int)
	for seed := int64(0); seed < trials; seed++ {
		e, err := ix.Random(Filter{}, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		picks[e.ID]++
	}
	if len(picks) != 3 {
		t.Fatalf("expected all 3 candidates selected, got %v", picks)
	}
	// Expected 200 picks each; anything under half of that signals bias.
	for id, n := range picks {
		if n < 100 {
			t.Fatalf("candidate %q picked only %d/%d times: %v", id, n, trials, picks)
		}
	}
}

func TestRandom_EmptyCandidateSet(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())
	e, err := ix.Random(Filter{Category: "sci", Tag: "nonexistent"}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil entry on empty candidate set, got %+v", e)
	}
}

func TestCategories_DeclarationOrderWithCounts(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())
	got := ix.Categories()
	want := []NameCount{{Name: "sci", Count: 2}, {Name: "hist", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
}

func TestTags_FirstReferenceOrderWithCounts(t *testing.T) {
	ix := mustIndex(t, exampleSnapshot())
	got := ix.Tags()
	want := []NameCount{{Name: "fun", Count: 2}, {Name: "dark", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tags() = %v, want %v", got, want)
	}
}

func TestFilterString(t *testing.T) {
	if got := (Filter{}).String(); got != "no filters" {
		t.Fatalf("zero Filter = %q", got)
	}
	if got := (Filter{Category: "sci", Tag: "fun"}).String(); got != "category=sci tag=fun" {
		t.Fatalf("full Filter = %q", got)
	}
}
