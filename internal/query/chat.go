package query

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/rcliao/courtdocs/internal/model"
)

var responses = map[string][]string{
	"greeting": {
		"Salam! Mən məhkəmə sənədləri üzrə köməkçi AI botam.",
		"Salam! Məhkəmə işləri haqqında suallarınızı cavablandıra bilərəm.",
		"Salam! Hansı məhkəmə sənədi ilə bağlı köməyə ehtiyacınız var?",
	},
	"clarification": {
		"Zəhmət olmasa, axtarışınızı daha dəqiq edin.",
		"Daha çox detal verə bilərsinizmi?",
		"Hansı hakim, məhkəmə və ya il sizi maraqlandırır?",
	},
	"no_results": {
		"Təəssüf ki, bu meyarlara uyğun sənəd tapılmadı.",
		"Axtarışınız üçün uyğun nəticə yoxdur.",
		"Başqa meyarlarla yenidən cəhd edin.",
	},
	"found_results": {
		"Sizin üçün {} uyğun sənəd tapdım.",
		"Axtarışınıza {} nəticə uyğun gəlir.",
		"Budur, axtardığınız sənədlər:",
	},
}

const (
	errorReply    = "Bağışlayın, xəta baş verdi. Zəhmət olmasa, yenidən cəhd edin."
	fallbackReply = "Bağışlayın, cavab tapa bilmirəm."
	listedInReply = 3
)

// SearchFunc runs criteria against the document collection.
type SearchFunc func(ctx context.Context, c model.SearchCriteria) ([]model.Document, error)

// Responder answers chat messages about the document collection.
type Responder struct {
	search SearchFunc
	rng    *rand.Rand
}

// NewResponder creates a Responder. rng selects among reply templates; pass a
// seeded source for reproducible replies.
func NewResponder(search SearchFunc, rng *rand.Rand) *Responder {
	return &Responder{search: search, rng: rng}
}

// Reply returns the bot's answer to message. Search failures are returned
// alongside a generic apology so the caller can log them.
func (r *Responder) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return r.pick("clarification"), nil
	}
	if IsGreeting(message) {
		return r.pick("greeting"), nil
	}

	docs, err := r.search(ctx, Analyze(message))
	if err != nil {
		return errorReply, err
	}
	if len(docs) == 0 {
		return r.pick("no_results"), nil
	}
	return r.formatResults(docs), nil
}

func (r *Responder) formatResults(docs []model.Document) string {
	var b strings.Builder
	b.WriteString(strings.ReplaceAll(r.pick("found_results"), "{}", strconv.Itoa(len(docs))))
	b.WriteString("\n\n")
	for i, d := range docs {
		if i == listedInReply {
			break
		}
		fmt.Fprintf(&b, "%d. %s - %s - %s\n", i+1,
			orDefault(d.Metadata.Get(model.FieldCaseNumber), "Unknown"),
			orDefault(d.Metadata.Get(model.FieldCourtName), "Unknown Court"),
			orDefault(d.Metadata.Get(model.FieldJudge), "Unknown Judge"))
	}
	if len(docs) > listedInReply {
		fmt.Fprintf(&b, "\n... və daha %d sənəd tapıldı.", len(docs)-listedInReply)
	}
	return b.String()
}

func (r *Responder) pick(kind string) string {
	opts := responses[kind]
	if len(opts) == 0 {
		return fallbackReply
	}
	return opts[r.rng.Intn(len(opts))]
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
