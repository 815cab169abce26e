package documents

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"docqa-backend/internal/shared/cache"
	localstore "docqa-backend/internal/shared/storage/object/local"
)

type fakeCache struct {
	values map[string]string
	gets   int
	dels   []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.gets++
	val, ok := f.values[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return val, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	f.dels = append(f.dels, keys...)
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func newTestService(t *testing.T, c cache.Cache) *Service {
	t.Helper()
	return &Service{
		Repo:            NewMemoryDocumentsRepo(),
		Store:           localstore.New(t.TempDir()),
		Cache:           c,
		StorageProvider: "local",
	}
}

func TestListServesSecondReadFromCache(t *testing.T) {
	fc := newFakeCache()
	svc := newTestService(t, fc)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "guest:a", "One", "one.txt", bytes.NewReader([]byte("x"))); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.List(ctx, "guest:a", defaultListLimit, 0)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	if len(fc.values) == 0 {
		t.Fatalf("expected list to be cached")
	}

	second, err := svc.List(ctx, "guest:a", defaultListLimit, 0)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(first) != len(second) || first[0].ID != second[0].ID {
		t.Fatalf("cached list differs: %v vs %v", first, second)
	}
}

func TestCreateInvalidatesCachedList(t *testing.T) {
	fc := newFakeCache()
	svc := newTestService(t, fc)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "guest:a", "One", "one.txt", bytes.NewReader([]byte("x"))); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.List(ctx, "guest:a", defaultListLimit, 0); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := svc.Create(ctx, "guest:a", "Two", "two.txt", bytes.NewReader([]byte("y"))); err != nil {
		t.Fatalf("create: %v", err)
	}

	docs, err := svc.List(ctx, "guest:a", defaultListLimit, 0)
	if err != nil {
		t.Fatalf("list after create: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected stale cache dropped, got %d docs", len(docs))
	}
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	dir := t.TempDir()
	svc := &Service{
		Repo:            NewMemoryDocumentsRepo(),
		Store:           localstore.New(dir),
		StorageProvider: "local",
	}
	ctx := context.Background()

	doc, err := svc.Create(ctx, "guest:a", "Doomed", "doomed.txt", bytes.NewReader([]byte("x")))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, "guest:a", doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*", "*"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	for _, match := range matches {
		info, err := os.Stat(match)
		if err == nil && !info.IsDir() {
			t.Fatalf("expected stored file removed, found %s", match)
		}
	}
}

func TestUpdateTitleTooLongRejected(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	doc, err := svc.Create(ctx, "guest:a", "Fine", "fine.txt", bytes.NewReader([]byte("x")))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	long := make([]byte, maxTitleLength+1)
	for i := range long {
		long[i] = 'a'
	}
	title := string(long)
	if _, err := svc.Update(ctx, "guest:a", doc.ID, UpdateParams{Title: &title}); err == nil {
		t.Fatalf("expected validation error for long title")
	}
}
