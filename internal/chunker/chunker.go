// Package chunker splits document text into overlapping word windows for
// similarity indexing.
package chunker

import (
	"strings"
)

const (
	DefaultWords   = 500
	DefaultOverlap = 50
)

// Options configures chunking behavior.
type Options struct {
	Words   int // words per chunk
	Overlap int // words shared by consecutive chunks
}

// DefaultOptions returns default chunking options.
func DefaultOptions() Options {
	return Options{
		Words:   DefaultWords,
		Overlap: DefaultOverlap,
	}
}

// ChunkResult represents a chunk with its word range in the original text.
// EndWord is exclusive.
type ChunkResult struct {
	Text      string
	StartWord int
	EndWord   int
}

// Chunk splits text on whitespace into windows of opts.Words words, each
// starting opts.Words-opts.Overlap words after the previous one. Whitespace
// inside a chunk is normalized to single spaces. The last window is the one
// that reaches the end of the text.
func Chunk(text string, opts Options) []ChunkResult {
	opts = opts.normalize()

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := opts.Words - opts.Overlap
	var results []ChunkResult
	for start := 0; start < len(words); start += step {
		end := min(start+opts.Words, len(words))
		results = append(results, ChunkResult{
			Text:      strings.Join(words[start:end], " "),
			StartWord: start,
			EndWord:   end,
		})
		if end == len(words) {
			break
		}
	}
	return results
}

func (o Options) normalize() Options {
	if o.Words <= 0 {
		o = DefaultOptions()
	}
	if o.Overlap < 0 || o.Overlap >= o.Words {
		o.Overlap = 0
	}
	return o
}
