package sampling

import (
	"bytes"
	"log/slog"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func quietSampler() *Sampler {
	return &Sampler{Log: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))}
}

func TestSample_SubsamplesOneDomain(t *testing.T) {
	urls := []string{"http://a.com/x", "http://a.com/y", "http://a.com/z"}
	got := quietSampler().Sample(urls, Constraint{SampleSize: 2})

	if len(got) != 2 {
		t.Fatalf("got %d URLs, want 2: %v", len(got), got)
	}
	for _, u := range got {
		if !strings.HasPrefix(u, "a.com/") {
			t.Errorf("unexpected domain in %q", u)
		}
	}
	if !slices.IsSorted(got) {
		t.Errorf("sampled paths not sorted: %v", got)
	}
}

func TestSample_HomepageOnlyDomainDropped(t *testing.T) {
	got := quietSampler().Sample([]string{"http://a.com/"}, Constraint{SampleSize: 5})
	if len(got) != 0 {
		t.Fatalf("homepage-only domain survived: %v", got)
	}
}

func TestSample_ExcludeMinLogsRejection(t *testing.T) {
	var buf bytes.Buffer
	s := &Sampler{Log: slog.New(slog.NewTextHandler(&buf, nil))}

	urls := []string{"http://a.com/1", "http://a.com/2", "http://a.com/3"}
	got := s.Sample(urls, Constraint{SampleSize: 2, ExcludeMin: 5})

	if len(got) != 0 {
		t.Fatalf("undersized domain survived: %v", got)
	}
	if !strings.Contains(buf.String(), "discarded (size)") {
		t.Errorf("no warning logged, got: %s", buf.String())
	}
}

func TestSample_ExcludeMax(t *testing.T) {
	urls := []string{
		"http://big.com/1", "http://big.com/2", "http://big.com/3",
		"http://small.com/only",
	}
	got := quietSampler().Sample(urls, Constraint{SampleSize: 10, ExcludeMax: 2})

	want := []string{"small.com/only"}
	if !slices.Equal(got, want) {
		t.Errorf("Sample = %v, want %v", got, want)
	}
}

func TestSample_KeepsAllBelowSampleSize(t *testing.T) {
	urls := []string{"http://a.com/x", "http://a.com/y"}
	got := quietSampler().Sample(urls, Constraint{SampleSize: 5})
	want := []string{"a.com/x", "a.com/y"}
	if !slices.Equal(got, want) {
		t.Errorf("Sample = %v, want %v", got, want)
	}
}

func TestSample_ConstraintsHold(t *testing.T) {
	var urls []string
	for _, d := range []string{"http://one.com", "http://two.com", "http://three.com"} {
		for _, p := range []string{"/a", "/b", "/c", "/d"} {
			urls = append(urls, d+p)
		}
	}
	urls = append(urls, "http://tiny.com/solo")

	c := Constraint{SampleSize: 2, ExcludeMin: 2, ExcludeMax: 10}
	got := quietSampler().Sample(urls, c)

	perDomain := make(map[string]int)
	for _, u := range got {
		perDomain[strings.SplitN(u, "/", 2)[0]]++
	}
	if _, ok := perDomain["tiny.com"]; ok {
		t.Errorf("tiny.com below ExcludeMin survived: %v", got)
	}
	for domain, n := range perDomain {
		if n != c.SampleSize {
			t.Errorf("domain %s contributed %d paths, want %d", domain, n, c.SampleSize)
		}
	}
	if len(perDomain) != 3 {
		t.Errorf("expected 3 surviving domains, got %v", perDomain)
	}
}

func TestSample_SeededReproducibility(t *testing.T) {
	var urls []string
	for i := 'a'; i <= 'z'; i++ {
		urls = append(urls, "http://example.com/"+string(i))
	}

	sample := func(seed int64) []string {
		s := quietSampler()
		s.Rand = rand.New(rand.NewSource(seed))
		return s.Sample(urls, Constraint{SampleSize: 5})
	}

	first := sample(42)
	second := sample(42)
	if !slices.Equal(first, second) {
		t.Errorf("same seed diverged: %v vs %v", first, second)
	}
	if len(first) != 5 {
		t.Errorf("got %d URLs, want 5", len(first))
	}
}

func TestSample_ZeroSampleSize(t *testing.T) {
	got := quietSampler().Sample(
		[]string{"http://a.com/x", "http://a.com/y"},
		Constraint{SampleSize: 0},
	)
	if len(got) != 0 {
		t.Errorf("SampleSize 0 produced output: %v", got)
	}
}

type fakeStore struct {
	added   []string
	domains []string
	paths   map[string][]string
}

func (f *fakeStore) AddURLs(urls []string) { f.added = append(f.added, urls...) }

func (f *fakeStore) Domains() []string { return f.domains }

func (f *fakeStore) Paths(domain string) []string { return f.paths[domain] }

func TestSample_InjectedStoreOrder(t *testing.T) {
	store := &fakeStore{
		domains: []string{"z.com", "a.com"},
		paths: map[string][]string{
			"z.com": {"/zz"},
			"a.com": {"/aa"},
		},
	}
	s := quietSampler()
	s.Store = store

	got := s.Sample([]string{"http://z.com/zz", "http://a.com/aa"}, Constraint{SampleSize: 3})
	want := []string{"z.com/zz", "a.com/aa"}
	if !slices.Equal(got, want) {
		t.Errorf("Sample = %v, want %v (store iteration order must win)", got, want)
	}
	if !slices.IsSorted(store.added) {
		t.Errorf("input not sorted before ingestion: %v", store.added)
	}
}
