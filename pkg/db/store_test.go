package db

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/mwendt/sprechpass/pkg/sprechpass"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := InitDB(conn); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return conn
}

func testModel() *sprechpass.Model {
	return &sprechpass.Model{
		StartVowel:     sprechpass.ChainTable{"": {"a", "ei"}, "schm": {"ie"}},
		VowelConsonant: sprechpass.ChainTable{"a": {"t", "ng"}, "ei": {"n"}, "ie": {"d"}},
		ConsonantVowel: sprechpass.ChainTable{"t": {"e"}, "ng": {"e"}, "n": {"e"}, "d": {"e"}},
		VowelEnd:       sprechpass.ChainTable{"e": {"", "r", "nd"}},
		Vowels:         sprechpass.DefaultVowels,
		Digits:         sprechpass.DefaultDigits,
	}
}

func TestInitDBCreatesSchema(t *testing.T) {
	conn := openTestDB(t)

	for _, table := range []string{"models", "model_entries"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
	// Migrations are idempotent.
	if err := InitDB(conn); err != nil {
		t.Fatalf("second InitDB failed: %v", err)
	}
}

func TestSaveAndLoadModel(t *testing.T) {
	conn := openTestDB(t)
	want := testModel()

	if err := SaveModel(conn, "test", want, 25, sprechpass.Strength(want)); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}

	got, err := LoadModel(conn, "test")
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("loaded model differs:\nwant %#v\ngot  %#v", want, got)
	}
}

func TestSaveModelReplaces(t *testing.T) {
	conn := openTestDB(t)

	if err := SaveModel(conn, "test", testModel(), 25, 4); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := testModel()
	second.VowelEnd = sprechpass.ChainTable{"e": {"r"}}
	if err := SaveModel(conn, "test", second, 10, 1); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := LoadModel(conn, "test")
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if !reflect.DeepEqual(second, got) {
		t.Fatalf("expected replaced model, got %#v", got)
	}

	infos, err := ListModels(conn)
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "test" || infos[0].Cutoff != 10 || infos[0].Strength != 1 {
		t.Fatalf("unexpected model list: %+v", infos)
	}
}

func TestLoadModelNotFound(t *testing.T) {
	conn := openTestDB(t)
	if _, err := LoadModel(conn, "nope"); !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}

func TestSaveModelEmptyName(t *testing.T) {
	conn := openTestDB(t)
	if err := SaveModel(conn, "  ", testModel(), 25, 4); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestDeleteModel(t *testing.T) {
	conn := openTestDB(t)
	if err := SaveModel(conn, "test", testModel(), 25, 4); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}

	if err := DeleteModel(conn, "test"); err != nil {
		t.Fatalf("DeleteModel failed: %v", err)
	}
	if _, err := LoadModel(conn, "test"); !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound after delete, got %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM model_entries`).Scan(&count); err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no orphaned entries, found %d", count)
	}

	if err := DeleteModel(conn, "test"); !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound for second delete, got %v", err)
	}
}

func TestStoredGermanModelRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	want := sprechpass.German()

	if err := SaveModel(conn, "german", want, 700, sprechpass.Strength(want)); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}
	got, err := LoadModel(conn, "german")
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if got.StartVowel.Len() != 700 || got.VowelEnd.Len() != 700 {
		t.Fatalf("entry counts changed: start=%d end=%d", got.StartVowel.Len(), got.VowelEnd.Len())
	}
	if sprechpass.Strength(got) != sprechpass.Strength(want) {
		t.Fatal("strength changed across save/load")
	}
}
