package generate

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"simmer/internal/home"
	"simmer/internal/images"
	"simmer/internal/parse"
	"simmer/internal/providers"
	"simmer/internal/store"
)

var recipeFragments = []providers.Fragment{
	providers.TextFragment("## Lemon Chicken\nBright and simple.\n" +
		"**Prep time:** 10 minutes\n**Cook time:** 30 minutes\n**Servings:** 2\n\n" +
		"**Ingredients:**\n* chicken\n* lemon\n\n"),
	providers.TextFragment("**Step 1: Marinate**\nMarinate the chicken.\n---\n"),
	providers.ImageFragment([]byte{0x1}, "image/png"),
}

func testService(t *testing.T, mock *providers.MockGenerator, withStore bool) (*Service, *home.Dir) {
	t.Helper()
	reg := providers.NewRegistry()
	reg.Register(mock.Name(), mock)

	var st *store.Store
	var h *home.Dir
	if withStore {
		var err error
		h, err = home.New(t.TempDir())
		if err != nil {
			t.Fatalf("home: %v", err)
		}
		st, err = store.Open(h.RecipesDBPath())
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		t.Cleanup(func() { _ = st.Close() })
	}
	return NewService(reg, st, h, nil), h
}

func TestRun(t *testing.T) {
	mock := providers.NewMockGenerator("mock", recipeFragments)
	svc, _ := testService(t, mock, false)

	out, err := svc.Run(context.Background(), Request{
		Provider:    "mock",
		Ingredients: []string{"chicken", "lemon"},
		Units:       "metric",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if out.Recipe.Title != "Lemon Chicken" {
		t.Errorf("title = %q", out.Recipe.Title)
	}
	if len(out.Recipe.Steps) != 1 {
		t.Errorf("steps = %d", len(out.Recipe.Steps))
	}
	if mock.LastRequest == nil {
		t.Fatal("provider never received a request")
	}
	if !strings.Contains(mock.LastRequest.Prompt, "* chicken") {
		t.Error("prompt missing ingredients")
	}
	if mock.LastRequest.RequestID == "" {
		t.Error("request id not set")
	}
}

func TestRunRequiresIngredients(t *testing.T) {
	svc, _ := testService(t, providers.NewMockGenerator("mock", nil), false)

	if _, err := svc.Run(context.Background(), Request{Provider: "mock"}); err == nil {
		t.Fatal("expected error for empty ingredient list")
	}
}

func TestRunUnknownProvider(t *testing.T) {
	svc, _ := testService(t, providers.NewMockGenerator("mock", nil), false)

	_, err := svc.Run(context.Background(), Request{
		Provider:    "nope",
		Ingredients: []string{"rice"},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("err = %v", err)
	}
}

func TestRunEmptyStream(t *testing.T) {
	svc, _ := testService(t, providers.NewMockGenerator("mock", nil), false)

	_, err := svc.Run(context.Background(), Request{
		Provider:    "mock",
		Ingredients: []string{"rice"},
	})
	if !errors.Is(err, ErrNoRecipe) {
		t.Fatalf("err = %v, want ErrNoRecipe", err)
	}
}

func TestRunStreamFaultKeepsPartial(t *testing.T) {
	mock := providers.NewMockGenerator("mock", recipeFragments)
	mock.StreamErr = errors.New("connection reset")
	svc, _ := testService(t, mock, false)

	out, err := svc.Run(context.Background(), Request{
		Provider:    "mock",
		Ingredients: []string{"chicken"},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Recipe.Title != "Lemon Chicken" {
		t.Errorf("partial content lost: %+v", out.Recipe)
	}
}

func TestRunSaves(t *testing.T) {
	mock := providers.NewMockGenerator("mock", recipeFragments)
	svc, _ := testService(t, mock, true)

	out, err := svc.Run(context.Background(), Request{
		Provider:       "mock",
		Ingredients:    []string{"chicken"},
		ServingsPolicy: parse.LastWrite,
		Save:           true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Saved == nil || out.Saved.ID == "" {
		t.Fatal("recipe was not persisted")
	}
	if out.Saved.Recipe.Title != "Lemon Chicken" {
		t.Errorf("saved title = %q", out.Saved.Recipe.Title)
	}
}

func TestRunSavePersistsStepImages(t *testing.T) {
	mock := providers.NewMockGenerator("mock", recipeFragments)
	svc, h := testService(t, mock, true)

	out, err := svc.Run(context.Background(), Request{
		Provider:    "mock",
		Ingredients: []string{"chicken"},
		Save:        true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Saved == nil {
		t.Fatal("recipe was not persisted")
	}

	if len(out.ImagePaths) != 1 {
		t.Fatalf("image paths = %v, want one entry", out.ImagePaths)
	}
	want := h.StepImagePath(out.Saved.ID, 1, images.ExtForMIME("image/png"))
	if out.ImagePaths[0] != want {
		t.Errorf("image path = %q, want %q", out.ImagePaths[0], want)
	}
	data, err := os.ReadFile(out.ImagePaths[0])
	if err != nil {
		t.Fatalf("read persisted image: %v", err)
	}
	if string(data) != string(out.Recipe.Steps[0].ImageData) {
		t.Error("persisted image bytes differ from the step image")
	}
}

func TestRunSaveWithoutStore(t *testing.T) {
	mock := providers.NewMockGenerator("mock", recipeFragments)
	svc, _ := testService(t, mock, false)

	_, err := svc.Run(context.Background(), Request{
		Provider:    "mock",
		Ingredients: []string{"chicken"},
		Save:        true,
	})
	if err == nil {
		t.Fatal("expected error when saving without a store")
	}
}
