package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

func TestAddCmd(t *testing.T) {
	db := testDB(t)

	startSeq, err := db.NextCmdSeq()
	if err != nil {
		t.Fatalf("NextCmdSeq: %v", err)
	}
	if startSeq != 1 {
		t.Errorf("NextCmdSeq on a fresh store = %d, want 1", startSeq)
	}

	for i, cmd := range []string{"echo a", "echo b"} {
		seq, err := db.AddCmd(cmd)
		if err != nil {
			t.Fatalf("AddCmd(%q): %v", cmd, err)
		}
		if want := startSeq + i; seq != want {
			t.Errorf("AddCmd(%q) seq = %d, want %d", cmd, seq, want)
		}
	}

	nextSeq, err := db.NextCmdSeq()
	if err != nil {
		t.Fatalf("NextCmdSeq: %v", err)
	}
	if nextSeq != startSeq+2 {
		t.Errorf("NextCmdSeq after two adds = %d, want %d", nextSeq, startSeq+2)
	}
}

func TestCmd(t *testing.T) {
	db := testDB(t)

	seq, err := db.AddCmd("print hello")
	if err != nil {
		t.Fatalf("AddCmd: %v", err)
	}

	cmd, err := db.Cmd(seq)
	if err != nil {
		t.Fatalf("Cmd(%d): %v", seq, err)
	}
	if cmd != "print hello" {
		t.Errorf("Cmd(%d) = %q, want %q", seq, cmd, "print hello")
	}

	if _, err := db.Cmd(seq + 100); err != ErrNoMatchingCmd {
		t.Errorf("Cmd on a missing seq: err = %v, want ErrNoMatchingCmd", err)
	}
}

func TestDelCmd(t *testing.T) {
	db := testDB(t)

	seq, err := db.AddCmd("doomed")
	if err != nil {
		t.Fatalf("AddCmd: %v", err)
	}
	if err := db.DelCmd(seq); err != nil {
		t.Fatalf("DelCmd(%d): %v", seq, err)
	}
	if _, err := db.Cmd(seq); err != ErrNoMatchingCmd {
		t.Errorf("Cmd after delete: err = %v, want ErrNoMatchingCmd", err)
	}
}

func TestIterateCmds(t *testing.T) {
	db := testDB(t)

	cmds := []string{"a", "b", "c", "d"}
	var seqs []int
	for _, cmd := range cmds {
		seq, err := db.AddCmd(cmd)
		if err != nil {
			t.Fatalf("AddCmd(%q): %v", cmd, err)
		}
		seqs = append(seqs, seq)
	}

	var got []string
	err := db.IterateCmds(seqs[1], seqs[3], func(_ int, cmd string) {
		got = append(got, cmd)
	})
	if err != nil {
		t.Fatalf("IterateCmds: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "c"}, got); diff != "" {
		t.Errorf("IterateCmds range mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAppend(t *testing.T) {
	db := testDB(t)

	got, err := db.Load()
	if err != nil {
		t.Fatalf("Load on a fresh store: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load on a fresh store = %v, want empty", got)
	}

	lines := []string{"print a", "print b", "exit"}
	for _, line := range lines {
		if err := db.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	got, err = db.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(lines, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.Append("survivor"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got, err := db.Load()
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if diff := cmp.Diff([]string{"survivor"}, got); diff != "" {
		t.Errorf("Load after reopen mismatch (-want +got):\n%s", diff)
	}
}
