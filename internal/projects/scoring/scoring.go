// Package scoring computes the 0-100 health score for a scraped webpage.
package scoring

import "encoding/json"

// frameworks checked in framework_detection; any one of them scores the flat bonus.
var frameworks = []string{"react", "vue", "angular"}

// Score maps a scraped-data record to an integer health score in [0, 100].
// Each factor contributes independently; missing keys contribute 0.
//
//	status_code == 200            +20
//	content_length > 1000         +20 (else > 500: +10)
//	non-empty title               +15
//	non-empty description         +10
//	links_count > 10              +15 (else > 5: +10)
//	has_ssl truthy                +10
//	react/vue/angular detected    +10 (flat, not per framework)
func Score(scrapedData map[string]any) int {
	score := 0

	if asFloat(scrapedData["status_code"]) == 200 {
		score += 20
	}

	contentLength := asFloat(scrapedData["content_length"])
	if contentLength > 1000 {
		score += 20
	} else if contentLength > 500 {
		score += 10
	}

	if truthy(scrapedData["title"]) {
		score += 15
	}
	if truthy(scrapedData["description"]) {
		score += 10
	}

	linksCount := asFloat(scrapedData["links_count"])
	if linksCount > 10 {
		score += 15
	} else if linksCount > 5 {
		score += 10
	}

	if truthy(scrapedData["has_ssl"]) {
		score += 10
	}

	if detection, ok := scrapedData["framework_detection"].(map[string]any); ok {
		for _, fw := range frameworks {
			if truthy(detection[fw]) {
				score += 10
				break
			}
		}
	}

	return min(score, 100)
}

// asFloat coerces the numeric representations a scraped value can arrive in.
// JSON decoding yields float64; direct Go callers may pass native ints.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// truthy mirrors the loose semantics of the scraped payload: nil, false,
// zero and the empty string all count as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64, float32, int, int32, int64, json.Number:
		return asFloat(v) != 0
	default:
		return true
	}
}
