package session_test

import (
	"context"
	"reflect"
	"testing"

	"subcast/internal/annotation"
	"subcast/internal/characters"
	"subcast/internal/session"
	"subcast/internal/subtitles"
	"subcast/internal/testsupport"
)

func sampleState(filename string) *annotation.State {
	state := &annotation.State{
		Filename: filename,
		Subtitles: []subtitles.Line{
			{Index: 1, Timestamp: "00:00:01,000 --> 00:00:02,000", Text: "Hello.", Character: "Rei"},
			{Index: 2, Timestamp: "00:00:03,000 --> 00:00:04,000", Text: "Hi."},
		},
		Characters: []characters.Character{
			{Name: characters.OtherName, CanonicalName: characters.OtherName},
			{Name: "Rei", CanonicalName: "Rei", Count: 1},
		},
		SceneBreaks: []int{0},
	}
	state.Normalize()
	return state
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	ann := annotation.NewStore(sampleState("episode01.srt"))
	if err := ann.AssignCharacter(1, "Rei"); err != nil {
		t.Fatalf("AssignCharacter: %v", err)
	}

	if err := store.Save(ctx, ann.State, ann.History); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ann.State.LastSaved == "" {
		t.Fatal("LastSaved not stamped")
	}

	loaded, history, err := store.Load(ctx, "episode01.srt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, ann.State) {
		t.Fatalf("loaded state = %+v, want %+v", loaded, ann.State)
	}
	if history.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d, want 1", history.UndoDepth())
	}

	restored := &annotation.Store{State: loaded, History: history}
	if !restored.Undo() {
		t.Fatal("Undo after reload returned false")
	}
	if restored.State.Subtitles[1].Character != "" {
		t.Fatalf("undo across reload did not revert: %q", restored.State.Subtitles[1].Character)
	}
}

func TestSaveUpsertsByFilename(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	state := sampleState("episode01.srt")
	if err := store.Save(ctx, state, nil); err != nil {
		t.Fatalf("first save: %v", err)
	}
	state.Subtitles[1].Character = "Rei"
	if err := store.Save(ctx, state, nil); err != nil {
		t.Fatalf("second save: %v", err)
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1", len(summaries))
	}
	if summaries[0].AnnotatedCount != 2 {
		t.Fatalf("annotated count = %d, want 2", summaries[0].AnnotatedCount)
	}
	if summaries[0].LineCount != 2 {
		t.Fatalf("line count = %d, want 2", summaries[0].LineCount)
	}
}

func TestLoadMissingSession(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	_, _, err := store.Load(context.Background(), "nope.srt")
	if err == nil {
		t.Fatal("missing session loaded without error")
	}
}

func TestDelete(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.Save(ctx, sampleState("episode01.srt"), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	removed, err := store.Delete(ctx, "episode01.srt")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Fatal("existing session not removed")
	}

	removed, err = store.Delete(ctx, "episode01.srt")
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if removed {
		t.Fatal("second delete reported removal")
	}
}

func TestCharacterListRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	loaded, err := store.LoadCharacterList(ctx)
	if err != nil {
		t.Fatalf("LoadCharacterList: %v", err)
	}
	if loaded != nil {
		t.Fatalf("empty store returned list: %v", loaded)
	}

	list := []characters.ListEntry{
		{Name: characters.OtherName, CanonicalName: characters.OtherName, Aliases: []string{}},
		{Name: "Rei", CanonicalName: "Rei", Aliases: []string{"レイ"}},
	}
	if err := store.SaveCharacterList(ctx, list); err != nil {
		t.Fatalf("SaveCharacterList: %v", err)
	}

	loaded, err = store.LoadCharacterList(ctx)
	if err != nil {
		t.Fatalf("LoadCharacterList: %v", err)
	}
	if !reflect.DeepEqual(loaded, list) {
		t.Fatalf("loaded list = %v, want %v", loaded, list)
	}
}

func TestAcquireLockBlocksSecondHolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	release, err := session.AcquireLock(cfg)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}
	defer release()

	if _, err := session.AcquireLock(cfg); err == nil {
		t.Fatal("second lock acquired while first held")
	}
}
