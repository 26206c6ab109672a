package data

import (
	"context"
	"testing"

	"github.com/Pjt727/classboard/config"
	"github.com/Pjt727/classboard/data/kv"
)

func TestOpenStoreMemory(t *testing.T) {
	store, closeStore, err := OpenStore(context.Background(), config.Runtime{Store: config.StoreMemory})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer closeStore()
	if _, ok := store.(*kv.MemoryStore); !ok {
		t.Fatalf("expected a memory store, got %T", store)
	}
}

func TestOpenStoreFile(t *testing.T) {
	dir := t.TempDir()
	store, closeStore, err := OpenStore(context.Background(), config.Runtime{Store: config.StoreFile, StateDir: dir})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer closeStore()
	if err := store.Set(context.Background(), "holidays", []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}
}

func TestOpenStoreUnknown(t *testing.T) {
	_, closeStore, err := OpenStore(context.Background(), config.Runtime{Store: "floppy"})
	if err == nil {
		t.Fatalf("expected an error for an unknown store")
	}
	closeStore()
}
