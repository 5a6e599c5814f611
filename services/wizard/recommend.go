package wizard

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"rane/models"
)

// tagFolder strips combining marks so that accented and unaccented spellings
// of the same tag compare equal.
var tagFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeTag lowercases a tag and removes diacritics.
func normalizeTag(tag string) string {
	folded, _, err := transform.String(tagFolder, tag)
	if err != nil {
		folded = tag
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// RecommendPractitioners filters the full reference list to practitioners
// whose tag set intersects the topic's tags. The reference slice is never
// mutated. A nil topic recommends nobody.
func RecommendPractitioners(topic *models.Topic, all []models.Practitioner) []models.Practitioner {
	if topic == nil {
		return []models.Practitioner{}
	}
	topicTags := make(map[string]struct{}, len(topic.Tags))
	for _, t := range topic.Tags {
		topicTags[normalizeTag(t)] = struct{}{}
	}

	matched := make([]models.Practitioner, 0, len(all))
	for _, p := range all {
		for _, t := range p.Tags {
			if _, ok := topicTags[normalizeTag(t)]; ok {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}
