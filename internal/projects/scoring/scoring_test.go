package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullScrapedData() map[string]any {
	return map[string]any{
		"status_code":    float64(200),
		"content_length": float64(1500),
		"title":          "T",
		"description":    "D",
		"links_count":    float64(12),
		"has_ssl":        true,
		"framework_detection": map[string]any{
			"react": true,
		},
	}
}

func TestScore_AllFactors(t *testing.T) {
	// 20 + 20 + 15 + 10 + 15 + 10 + 10
	assert.Equal(t, 100, Score(fullScrapedData()))
}

func TestScore_Empty(t *testing.T) {
	assert.Equal(t, 0, Score(map[string]any{}))
	assert.Equal(t, 0, Score(nil))
}

func TestScore_ContentLengthTiers(t *testing.T) {
	assert.Equal(t, 0, Score(map[string]any{"content_length": float64(500)}))
	assert.Equal(t, 10, Score(map[string]any{"content_length": float64(501)}))
	assert.Equal(t, 10, Score(map[string]any{"content_length": float64(1000)}))
	assert.Equal(t, 20, Score(map[string]any{"content_length": float64(1001)}))
}

func TestScore_LinksCountTiers(t *testing.T) {
	assert.Equal(t, 0, Score(map[string]any{"links_count": float64(5)}))
	assert.Equal(t, 10, Score(map[string]any{"links_count": float64(6)}))
	assert.Equal(t, 10, Score(map[string]any{"links_count": float64(10)}))
	assert.Equal(t, 15, Score(map[string]any{"links_count": float64(11)}))
}

func TestScore_StatusCode(t *testing.T) {
	assert.Equal(t, 20, Score(map[string]any{"status_code": float64(200)}))
	assert.Equal(t, 0, Score(map[string]any{"status_code": float64(404)}))
	// Direct Go callers pass native ints
	assert.Equal(t, 20, Score(map[string]any{"status_code": 200}))
}

func TestScore_MetaFields(t *testing.T) {
	assert.Equal(t, 15, Score(map[string]any{"title": "Home"}))
	assert.Equal(t, 0, Score(map[string]any{"title": ""}))
	assert.Equal(t, 10, Score(map[string]any{"description": "About"}))
	assert.Equal(t, 10, Score(map[string]any{"has_ssl": true}))
	assert.Equal(t, 0, Score(map[string]any{"has_ssl": false}))
}

func TestScore_FrameworkBonusIsFlat(t *testing.T) {
	one := Score(map[string]any{
		"framework_detection": map[string]any{"react": true},
	})
	all := Score(map[string]any{
		"framework_detection": map[string]any{"react": true, "vue": true, "angular": true},
	})
	assert.Equal(t, 10, one)
	assert.Equal(t, one, all, "multiple detected frameworks must not stack")

	none := Score(map[string]any{
		"framework_detection": map[string]any{"react": false, "svelte": true},
	})
	assert.Equal(t, 0, none)
}

// Each factor, toggled on its own against an otherwise maxed record, must
// never lower the score.
func TestScore_MonotonicPerFactor(t *testing.T) {
	for _, key := range []string{"status_code", "content_length", "title", "description", "links_count", "has_ssl", "framework_detection"} {
		without := fullScrapedData()
		delete(without, key)
		assert.LessOrEqual(t, Score(without), Score(fullScrapedData()), "removing %s should not raise the score", key)
	}
}

func TestScore_ClampedAt100(t *testing.T) {
	data := fullScrapedData()
	data["content_length"] = float64(1000000)
	data["links_count"] = float64(500)
	assert.Equal(t, 100, Score(data))
}
