// Package match gates effect execution on the owner's attributes.
//
// An effect that declares required properties only fires when, for every
// property, the triggering payload's match list holds at least one entry
// whose value for that property strictly equals the owner's own value.
package match

import (
	"reflect"

	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
	"github.com/on-the-ground/effect_ive_store/effects/log"
	"github.com/on-the-ground/effect_ive_store/shared/helper"
)

const (
	MsgMissingProp      = "component missing required prop"
	MsgMissingMatchList = "payload must include a match list"
	MsgEntryMissingProp = "match entry missing required prop"
	MsgNoEntryAgrees    = "no match entry agrees with component prop"
)

// Matches reports whether owner satisfies every required property against
// entries. Every property is evaluated, and each failing one emits exactly
// one diagnostic.
func Matches(diag log.Diagnostics, required []string, owner effectmodel.Owner, entries effectmodel.MatchList) bool {
	if len(required) == 0 {
		return true
	}

	ok := true
	for _, prop := range required {
		if !matchesProp(diag, required, prop, owner, entries) {
			ok = false
		}
	}
	return ok
}

func matchesProp(diag log.Diagnostics, required []string, prop string, owner effectmodel.Owner, entries effectmodel.MatchList) bool {
	ownValue, present := owner.Attr(prop)
	if !present {
		diag.Emit(MsgMissingProp, map[string]interface{}{
			"owner":    owner.ID(),
			"prop":     prop,
			"required": required,
		})
		return false
	}

	if len(entries) == 0 {
		diag.Emit(MsgMissingMatchList, map[string]interface{}{
			"owner":    owner.ID(),
			"prop":     prop,
			"required": required,
		})
		return false
	}

	var lacking [][]string
	for _, entry := range entries {
		v, has := entry[prop]
		if !has {
			lacking = append(lacking, helper.SortedKeys(entry))
			continue
		}
		if StrictEqual(v, ownValue) {
			return true
		}
	}

	if len(lacking) > 0 {
		diag.Emit(MsgEntryMissingProp, map[string]interface{}{
			"owner":     owner.ID(),
			"prop":      prop,
			"sent_keys": lacking,
		})
		return false
	}
	diag.Emit(MsgNoEntryAgrees, map[string]interface{}{
		"owner": owner.ID(),
		"prop":  prop,
		"value": ownValue,
	})
	return false
}

// StrictEqual reports whether a and b have the same dynamic type and are ==.
// Values of uncomparable types are never equal.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	// Comparable types can still hold uncomparable values (an interface
	// field holding a slice), in which case == panics.
	defer func() { _ = recover() }()
	return a == b
}
