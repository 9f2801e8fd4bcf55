package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const feed = `{"asin": "B0DCPKM21Y", "title": "Premium Headphones", "brand": "Soundcore"}
not json at all
{"asin": "B0DCPKM22Z", "title": "USB-C Cable", "price": {"amount": "9.99", "currency": "USD"}}
{"title": "record without asin"}
{"asin": "B0DCPKM23X", "title": "Desk Lamp"}
`

func TestRunSingleWorkerPreservesOrder(t *testing.T) {
	var out bytes.Buffer

	stats, err := Run(context.Background(), strings.NewReader(feed), &out, Opts{Workers: 1})
	assert.NoError(t, err)
	assert.Equal(t, Stats{Read: 5, Normalized: 3, Invalid: 2}, stats)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 3)

	var ids []string
	for _, l := range lines {
		var rec struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		}
		assert.NoError(t, json.Unmarshal([]byte(l), &rec))
		assert.Equal(t, "amazon", rec.Metadata["source"])
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"B0DCPKM21Y", "B0DCPKM22Z", "B0DCPKM23X"}, ids)
}

func TestRunConcurrentWorkers(t *testing.T) {
	var out bytes.Buffer

	stats, err := Run(context.Background(), strings.NewReader(feed), &out, Opts{Workers: 4})
	assert.NoError(t, err)
	assert.Equal(t, Stats{Read: 5, Normalized: 3, Invalid: 2}, stats)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var ids []string
	for _, l := range lines {
		var rec struct {
			ID string `json:"id"`
		}
		assert.NoError(t, json.Unmarshal([]byte(l), &rec))
		ids = append(ids, rec.ID)
	}
	assert.ElementsMatch(t, []string{"B0DCPKM21Y", "B0DCPKM22Z", "B0DCPKM23X"}, ids)
}

func TestRunEmptyFeed(t *testing.T) {
	var out bytes.Buffer

	stats, err := Run(context.Background(), strings.NewReader(""), &out, Opts{})
	assert.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
	assert.Empty(t, out.String())
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := Run(ctx, strings.NewReader(feed), &out, Opts{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
