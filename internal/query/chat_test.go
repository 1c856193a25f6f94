package query

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/rcliao/courtdocs/internal/model"
)

func fixedSearch(docs []model.Document, err error, seen *model.SearchCriteria) SearchFunc {
	return func(_ context.Context, c model.SearchCriteria) ([]model.Document, error) {
		if seen != nil {
			*seen = c
		}
		return docs, err
	}
}

func oneOf(t *testing.T, got string, opts []string) {
	t.Helper()
	for _, o := range opts {
		if got == o {
			return
		}
	}
	t.Errorf("reply %q not among %q", got, opts)
}

func caseDocs(n int) []model.Document {
	docs := make([]model.Document, n)
	for i := range docs {
		docs[i] = model.Document{Metadata: model.Metadata{Fields: map[model.Field]string{
			model.FieldCaseNumber: fmt.Sprintf("2-%d/2025", i+1),
			model.FieldCourtName:  "Ağdam Rayon Məhkəməsi",
			model.FieldJudge:      "Əliyev Rauf",
		}}}
	}
	return docs
}

func TestReply_Greeting(t *testing.T) {
	r := NewResponder(fixedSearch(nil, errors.New("must not search"), nil), rand.New(rand.NewSource(1)))
	got, err := r.Reply(context.Background(), "  Salam!  ")
	if err != nil {
		t.Fatal(err)
	}
	oneOf(t, got, responses["greeting"])
}

func TestReply_Empty(t *testing.T) {
	r := NewResponder(fixedSearch(nil, nil, nil), rand.New(rand.NewSource(1)))
	got, _ := r.Reply(context.Background(), "   ")
	oneOf(t, got, responses["clarification"])
}

func TestReply_NoResults(t *testing.T) {
	r := NewResponder(fixedSearch(nil, nil, nil), rand.New(rand.NewSource(1)))
	got, err := r.Reply(context.Background(), "2023 cinayət")
	if err != nil {
		t.Fatal(err)
	}
	oneOf(t, got, responses["no_results"])
}

func TestReply_Results(t *testing.T) {
	var seen model.SearchCriteria
	r := NewResponder(fixedSearch(caseDocs(5), nil, &seen), rand.New(rand.NewSource(7)))
	got, err := r.Reply(context.Background(), "Məmmədov Orxanın 2025 qərarları")
	if err != nil {
		t.Fatal(err)
	}

	if seen.Judge != "Məmmədov Orxanın" || seen.Year != "2025" {
		t.Errorf("criteria = %+v", seen)
	}

	header := strings.SplitN(got, "\n", 2)[0]
	var headers []string
	for _, h := range responses["found_results"] {
		headers = append(headers, strings.ReplaceAll(h, "{}", "5"))
	}
	oneOf(t, header, headers)

	for _, want := range []string{
		"1. 2-1/2025 - Ağdam Rayon Məhkəməsi - Əliyev Rauf\n",
		"3. 2-3/2025 - Ağdam Rayon Məhkəməsi - Əliyev Rauf\n",
		"\n... və daha 2 sənəd tapıldı.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("reply missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "4. ") {
		t.Errorf("reply lists more than three documents:\n%s", got)
	}
}

func TestReply_MissingFieldsUseDefaults(t *testing.T) {
	r := NewResponder(fixedSearch([]model.Document{{}}, nil, nil), rand.New(rand.NewSource(1)))
	got, _ := r.Reply(context.Background(), "mülki")
	if !strings.Contains(got, "1. Unknown - Unknown Court - Unknown Judge") {
		t.Errorf("unexpected reply:\n%s", got)
	}
	if strings.Contains(got, "daha") {
		t.Errorf("single result should not mention more documents:\n%s", got)
	}
}

func TestReply_SearchError(t *testing.T) {
	boom := errors.New("db closed")
	r := NewResponder(fixedSearch(nil, boom, nil), rand.New(rand.NewSource(1)))
	got, err := r.Reply(context.Background(), "mülki")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if got != errorReply {
		t.Errorf("reply = %q", got)
	}
}

func TestReply_SeededIsReproducible(t *testing.T) {
	ctx := context.Background()
	a := NewResponder(fixedSearch(nil, nil, nil), rand.New(rand.NewSource(42)))
	b := NewResponder(fixedSearch(nil, nil, nil), rand.New(rand.NewSource(42)))
	for i := 0; i < 5; i++ {
		ra, _ := a.Reply(ctx, "salam")
		rb, _ := b.Reply(ctx, "salam")
		if ra != rb {
			t.Fatalf("round %d: %q != %q", i, ra, rb)
		}
	}
}
