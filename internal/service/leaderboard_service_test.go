package service

import (
	"testing"

	"scamwise-backend/internal/models"
)

func TestBuildEntriesRanks(t *testing.T) {
	records := []models.UserProgress{
		{UserID: "u1", UserName: "Ada", TotalXP: 900, Level: 2},
		{UserID: "u2", UserName: "Ben", TotalXP: 500, Level: 2},
		{UserID: "u3", UserName: "Cleo", TotalXP: 500, Level: 2}, // tie with u2
		{UserID: "u4", UserName: "Dee", TotalXP: 40, Level: 1},
	}
	entries := buildEntries(records)

	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entry %d has rank %d, ranks must be consecutive from 1", i, e.Rank)
		}
		if i > 0 && e.TotalXP > entries[i-1].TotalXP {
			t.Errorf("XP must be non-increasing by rank, entry %d breaks order", i)
		}
	}
	// ties keep distinct ranks in input order
	if entries[1].UserID != "u2" || entries[2].UserID != "u3" {
		t.Error("tied users should keep the storage order")
	}
	if entries[1].Rank == entries[2].Rank {
		t.Error("tied users must still get distinct ranks")
	}
}

func TestBuildEntriesEmpty(t *testing.T) {
	entries := buildEntries(nil)
	if len(entries) != 0 {
		t.Errorf("expected empty result, got %d entries", len(entries))
	}
}
