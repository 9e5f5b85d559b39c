package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/planreader/internal/model"
)

func TestDocumentKey(t *testing.T) {
	a := DocumentKey([]byte("plan"), 50, "openai")
	if !strings.HasPrefix(a, "planreader:v1:") {
		t.Errorf("unexpected prefix in %s", a)
	}
	if a != DocumentKey([]byte("plan"), 50, "openai") {
		t.Error("expected stable key")
	}
	if a == DocumentKey([]byte("plan"), 50, "") {
		t.Error("OCR provider should change the key")
	}
	if a == DocumentKey([]byte("plan"), 80, "openai") {
		t.Error("threshold should change the key")
	}
	if a == DocumentKey([]byte("plan2"), 50, "openai") {
		t.Error("content should change the key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	value := []byte("estimate")
	_ = c.Set("k", value, 0)

	value[0] = 'X'
	got, ok := c.Get("k")
	if !ok || string(got) != "estimate" {
		t.Errorf("expected stored copy, got %q %v", got, ok)
	}

	_ = c.Set("short", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("expected entry to expire")
	}

	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected entry to be deleted")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	key := DocumentKey([]byte("plan"), 50, "")

	if err := c.Set(key, []byte("payload"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok := c.Get(key)
	if !ok || string(got) != "payload" {
		t.Errorf("expected payload, got %q %v", got, ok)
	}
	if strings.Contains(filepath.Base(c.path(key)), ":") {
		t.Errorf("path should not contain colons: %s", c.path(key))
	}

	if err := c.Delete(key); err != nil {
		t.Errorf("Delete failed: %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("deleting a missing entry should not fail: %v", err)
	}
}

func TestDiskCache_ExpiredAndCorrupt(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	_ = c.Set("old", []byte("v"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("old"); ok {
		t.Error("expected expired entry to miss")
	}

	_ = c.Set("bad", []byte("v"), 0)
	if err := os.WriteFile(c.path("bad"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("expected corrupt entry to miss")
	}
	if _, err := os.Stat(c.path("bad")); !os.IsNotExist(err) {
		t.Error("expected corrupt entry to be removed")
	}
}

func TestDiskCache_Prune(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	_ = c.Set("keep", []byte("v"), 0)
	_ = c.Set("drop", []byte("v"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	n, err := c.Prune()
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 pruned entry, got %d", n)
	}
	if _, ok := c.Get("keep"); !ok {
		t.Error("live entry should survive pruning")
	}

	empty := NewDiskCache(filepath.Join(t.TempDir(), "missing"), time.Hour)
	if _, err := empty.Prune(); err != nil {
		t.Errorf("pruning a missing dir should not fail: %v", err)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	first := NewLayeredCache(time.Minute, dir, time.Hour)
	_ = first.Set("k", []byte("v"), 0)

	second := NewLayeredCache(time.Minute, dir, time.Hour)
	if got, ok := second.Get("k"); !ok || string(got) != "v" {
		t.Fatalf("expected disk hit, got %q %v", got, ok)
	}
	if _, ok := second.memory.Get("k"); !ok {
		t.Error("expected disk hit to be promoted to memory")
	}

	if err := second.Clear(); err != nil {
		t.Errorf("Clear failed: %v", err)
	}
	if _, ok := second.Get("k"); ok {
		t.Error("expected miss after clear")
	}
}

func TestEstimates(t *testing.T) {
	e := NewEstimates(NewMemoryCache(time.Minute, time.Minute))
	est := model.BlueprintEstimate{Filename: "house.pdf", TotalSqft: 2400, NumStories: 2, FoundationType: model.FoundationBasement}

	if err := e.Put("k", est); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, ok := e.Get("k")
	if !ok || got.TotalSqft != 2400 || got.FoundationType != model.FoundationBasement {
		t.Errorf("unexpected estimate %+v %v", got, ok)
	}
	if _, ok := e.Get("missing"); ok {
		t.Error("expected miss")
	}
}

func TestNew(t *testing.T) {
	if _, ok := New(model.CacheConfig{}).(Nop); !ok {
		t.Error("expected Nop when disabled")
	}
	c := New(model.CacheConfig{Enabled: true, Dir: t.TempDir(), MemoryTTL: time.Minute, DiskTTL: time.Hour})
	if _, ok := c.(*LayeredCache); !ok {
		t.Errorf("expected layered cache, got %T", c)
	}
	if err := NewEstimates(Nop{}).Put("k", model.BlueprintEstimate{}); err != nil {
		t.Errorf("Nop put should succeed: %v", err)
	}
}
