package tasktree_test

import (
	"strings"
	"testing"

	"tasktree/internal/model"
	"tasktree/internal/tasktree"
)

func sampleTree() []model.Task {
	return []model.Task{
		{
			ID:   "t1",
			Text: "Design new website layout",
			Subtasks: []model.Task{
				{ID: "s1", Text: "Pick a palette", Subtasks: []model.Task{}},
				{ID: "s2", Text: "Sketch wireframes", Completed: true, Subtasks: []model.Task{}},
			},
		},
		{
			ID:       "t2",
			Text:     "Implement user authentication",
			Subtasks: []model.Task{},
		},
	}
}

func TestToggleTopLevel(t *testing.T) {
	in := sampleTree()
	out := tasktree.Toggle(in, "t2", "")

	if !out[1].Completed {
		t.Fatalf("expected t2 completed after toggle")
	}
	if out[0].Completed {
		t.Errorf("t1 should be untouched")
	}
	if in[1].Completed {
		t.Errorf("input tree mutated in place")
	}
	// Everything else unchanged.
	if out[0].Subtasks[1].Completed != true || out[0].Subtasks[0].Completed {
		t.Errorf("subtask flags changed by top-level toggle")
	}
}

func TestToggleSubtaskDoesNotDeriveParent(t *testing.T) {
	in := sampleTree()
	out := tasktree.Toggle(in, "s1", "t1")

	if !out[0].Subtasks[0].Completed {
		t.Fatalf("expected s1 completed")
	}
	if out[0].Completed {
		t.Errorf("parent completion must not derive from children")
	}
	if out[0].Subtasks[1].Completed != true {
		t.Errorf("sibling subtask changed")
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	in := sampleTree()
	for _, tc := range []struct{ id, parent string }{
		{"missing", ""},
		{"missing", "t1"},
		{"s1", "missing-parent"},
	} {
		out := tasktree.Toggle(in, tc.id, tc.parent)
		if len(out) != len(in) || out[0].Completed || out[1].Completed ||
			out[0].Subtasks[0].Completed {
			t.Errorf("toggle(%q,%q) changed the tree", tc.id, tc.parent)
		}
	}
}

func TestRemoveTopLevelCascades(t *testing.T) {
	out := tasktree.Remove(sampleTree(), "t1", "")

	if len(out) != 1 || out[0].ID != "t2" {
		t.Fatalf("expected only t2 to remain, got %+v", out)
	}
	for _, task := range out {
		for _, s := range task.Subtasks {
			if s.ID == "s1" || s.ID == "s2" {
				t.Errorf("orphaned subtask %s still reachable", s.ID)
			}
		}
	}
}

func TestRemoveSubtask(t *testing.T) {
	out := tasktree.Remove(sampleTree(), "s1", "t1")

	if len(out) != 2 {
		t.Fatalf("top-level count changed")
	}
	if len(out[0].Subtasks) != 1 || out[0].Subtasks[0].ID != "s2" {
		t.Errorf("expected only s2 under t1, got %+v", out[0].Subtasks)
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	out := tasktree.Remove(sampleTree(), "nope", "")
	if len(out) != 2 {
		t.Fatalf("remove of unknown id changed the tree")
	}
}

func TestEditText(t *testing.T) {
	out := tasktree.EditText(sampleTree(), "t2", "", "Ship auth")
	if out[1].Text != "Ship auth" {
		t.Fatalf("top-level edit not applied")
	}

	out = tasktree.EditText(sampleTree(), "s2", "t1", "")
	if out[0].Subtasks[1].Text != "" {
		t.Errorf("empty text must be committable on save")
	}
}

func TestEditCancelKeepsOriginal(t *testing.T) {
	// Cancelling an edit means never calling EditText; the tree the caller
	// holds must still carry the original text.
	in := sampleTree()
	_ = tasktree.EditText(in, "t1", "", "")
	if in[0].Text != "Design new website layout" {
		t.Fatalf("EditText mutated its input")
	}
}

func TestToggleCollapseTopLevelOnly(t *testing.T) {
	out := tasktree.ToggleCollapse(sampleTree(), "t1")
	if !out[0].Collapsed {
		t.Fatalf("collapse not toggled")
	}
	out = tasktree.ToggleCollapse(out, "t1")
	if out[0].Collapsed {
		t.Errorf("second toggle should restore")
	}

	// A subtask id is not addressable at the top level.
	out = tasktree.ToggleCollapse(sampleTree(), "s1")
	for _, task := range out {
		if task.Collapsed {
			t.Errorf("collapse leaked to %s", task.ID)
		}
	}
}

func TestAppendSubtasksTruncatesAtFive(t *testing.T) {
	batches := [][]string{
		{"a", "b", "c", "d", "e", "f", "g"},
		{"a"},
		{},
	}
	for _, batch := range batches {
		out := tasktree.AppendSubtasks(sampleTree(), "t1", batch)
		if n := len(out[0].Subtasks); n > model.MaxSubtasks {
			t.Fatalf("batch of %d produced %d subtasks", len(batch), n)
		}
	}

	// Existing two subtasks leave room for exactly three more.
	out := tasktree.AppendSubtasks(sampleTree(), "t1", []string{"a", "b", "c", "d"})
	subs := out[0].Subtasks
	if len(subs) != model.MaxSubtasks {
		t.Fatalf("expected %d subtasks, got %d", model.MaxSubtasks, len(subs))
	}
	if subs[2].Text != "a" || subs[4].Text != "c" {
		t.Errorf("batch order not preserved: %+v", subs)
	}
}

func TestAppendSubtasksAssignsFreshIDs(t *testing.T) {
	out := tasktree.AppendSubtasks(sampleTree(), "t1", []string{"x", "y"})
	seen := map[string]bool{}
	for _, task := range out {
		seen[task.ID] = true
		for _, s := range task.Subtasks {
			if seen[s.ID] {
				t.Fatalf("duplicate id %s", s.ID)
			}
			seen[s.ID] = true
		}
	}
}

func TestAddTopLevelTaskDefaults(t *testing.T) {
	out := tasktree.Add(sampleTree(), "Write release notes")

	if len(out) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(out))
	}
	got := out[2]
	if got.Text != "Write release notes" || got.Completed || got.Collapsed {
		t.Errorf("unexpected defaults: %+v", got)
	}
	if got.Subtasks == nil || len(got.Subtasks) != 0 {
		t.Errorf("subtasks must be an empty list, got %v", got.Subtasks)
	}
	if strings.TrimSpace(got.ID) == "" {
		t.Errorf("new task missing id")
	}
}

func TestNewIDUniqueEnough(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := tasktree.NewID()
		if seen[id] {
			t.Fatalf("id collision after %d ids", i)
		}
		seen[id] = true
	}
}
