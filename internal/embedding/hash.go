package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strconv"

	"github.com/rcliao/courtdocs/internal/aztext"
)

const defaultHashDims = 256

var tokenPattern = regexp.MustCompile(`\p{L}+|\p{N}+`)

// HashEmbedder maps text to a bag-of-words vector with feature hashing.
// It needs no model or corpus, so it serves offline installs and tests.
type HashEmbedder struct {
	dims int
}

// NewHashEmbedder creates a hashing embedder with the given dimensionality.
func NewHashEmbedder(dims int) *HashEmbedder {
	if dims <= 0 {
		dims = defaultHashDims
	}
	return &HashEmbedder{dims: dims}
}

// Embed returns the L2-normalized term-count vector of text.
// Text without tokens yields a zero vector.
func (e *HashEmbedder) Embed(ctx context.Context, text string) (Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec := make(Vector, e.dims)
	for _, tok := range tokenPattern.FindAllString(aztext.Lower(text), -1) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%uint32(e.dims)]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec, nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec, nil
}

func (e *HashEmbedder) Dims() int { return e.dims }

func (e *HashEmbedder) Name() string { return "hash/" + strconv.Itoa(e.dims) }
