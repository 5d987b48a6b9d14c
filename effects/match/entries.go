package match

import (
	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
	"github.com/on-the-ground/effect_ive_store/shared/helper"
)

const matchKey = "match"

// EntriesOf extracts the match list carried by an event payload.
//
// Recognized shapes:
//   - a value implementing effectmodel.Matchable (effectmodel.Payload does)
//   - map[string]any with a "match" key holding effectmodel.MatchList,
//     []map[string]any or []any of map[string]any
func EntriesOf(payload any) (effectmodel.MatchList, bool) {
	switch p := payload.(type) {
	case nil:
		return nil, false
	case *effectmodel.Payload:
		if p == nil {
			return nil, false
		}
		return p.Match, p.Match != nil
	case effectmodel.Matchable:
		entries := p.MatchEntries()
		return entries, entries != nil
	case map[string]any:
		return fromRaw(p)
	default:
		return nil, false
	}
}

func fromRaw(m map[string]any) (effectmodel.MatchList, bool) {
	if entries, ok := helper.LookupTyped[effectmodel.MatchList](m, matchKey); ok {
		return entries, true
	}
	if entries, ok := helper.LookupTyped[[]map[string]any](m, matchKey); ok {
		return effectmodel.MatchList(entries), true
	}
	raw, ok := helper.LookupTyped[[]any](m, matchKey)
	if !ok {
		return nil, false
	}
	entries := make(effectmodel.MatchList, 0, len(raw))
	for _, item := range raw {
		if entry, ok := item.(map[string]any); ok {
			entries = append(entries, entry)
		}
	}
	return entries, true
}
