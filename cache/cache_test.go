package cache

import "testing"

func TestLookupSetGetInvalidate(t *testing.T) {
	s := New()

	if _, ok := s.Get("paymenttypes"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	s.Set("paymenttypes", []string{"cash", "transfer"})
	v, ok := s.Get("paymenttypes")
	if !ok {
		t.Fatalf("expected hit after Set")
	}
	if got := v.([]string); len(got) != 2 {
		t.Fatalf("unexpected cached value: %v", got)
	}

	s.Invalidate("paymenttypes")
	if _, ok := s.Get("paymenttypes"); ok {
		t.Fatalf("expected miss after Invalidate")
	}
}

func TestPageCacheEvictsOldestBeyondFive(t *testing.T) {
	s := New()

	keys := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		k := s.PageKey("clients", string(rune('a'+i)))
		keys = append(keys, k)
		s.SetPage(k, i)
	}

	// first page out, last five in
	if _, ok := s.GetPage(keys[0]); ok {
		t.Fatalf("oldest page should have been evicted")
	}
	for _, k := range keys[1:] {
		if _, ok := s.GetPage(k); !ok {
			t.Fatalf("page %s should still be cached", k)
		}
	}
}

func TestBumpOrphansCollectionPages(t *testing.T) {
	s := New()

	k := s.PageKey("orders", "start")
	s.SetPage(k, "page-1")
	if _, ok := s.GetPage(k); !ok {
		t.Fatalf("expected hit before Bump")
	}

	s.Bump("orders")
	if k2 := s.PageKey("orders", "start"); k2 == k {
		t.Fatalf("key should change after Bump")
	}

	// other collections unaffected
	ck := s.PageKey("clients", "start")
	s.SetPage(ck, "page-1")
	s.Bump("orders")
	if got := s.PageKey("clients", "start"); got != ck {
		t.Fatalf("clients generation should not move on orders writes")
	}
}
