package descriptor

import (
	"fmt"
	"sort"

	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
	"github.com/on-the-ground/effect_ive_store/shared/helper"
)

// Section maps an action or mutation type name to its handler.
type Section map[string]Handler

// Tree is the effect declaration of one owner, keyed by category.
//
//	descriptor.Tree{
//	    effectmodel.Mutations: {"SET_NAME": descriptor.Func(onSetName)},
//	    effectmodel.Actions:   {"LOAD": descriptor.Staged{Before: onLoad, Match: []string{"id"}}},
//	}
type Tree map[effectmodel.Category]Section

// Table is the compiled, read-only registration of one category.
type Table struct {
	Category    effectmodel.Category
	descriptors map[string]Descriptor
	types       []string
}

// Lookup returns the descriptor declared for eventType.
func (t Table) Lookup(eventType string) (Descriptor, bool) {
	d, ok := t.descriptors[eventType]
	return d, ok
}

// Types lists the declared event types in lexical order.
func (t Table) Types() []string {
	return append([]string(nil), t.types...)
}

func (t Table) Len() int {
	return len(t.descriptors)
}

// Validate fails on the first unrecognized top-level key, in lexical order.
func (tree Tree) Validate() error {
	keys := make([]string, 0, len(tree))
	for c := range tree {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !effectmodel.Category(k).Valid() {
			return fmt.Errorf("%w %q: maybe you mean %q or %q?",
				effectmodel.ErrUnrecognizedCategory, k, effectmodel.Actions, effectmodel.Mutations)
		}
	}
	return nil
}

// Compile validates the whole tree before normalizing any handler, so a
// misconfigured tree yields no tables at all.
func Compile(tree Tree) (map[effectmodel.Category]Table, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}

	tables := make(map[effectmodel.Category]Table, len(tree))
	for category, section := range tree {
		t := Table{
			Category:    category,
			descriptors: make(map[string]Descriptor, len(section)),
			types:       helper.SortedKeys(section),
		}
		for eventType, h := range section {
			t.descriptors[eventType] = Normalize(h)
		}
		tables[category] = t
	}
	return tables, nil
}

// Lint collects the Descriptor.Lint findings of every table, prefixed with
// "<category>.<type>: ".
func Lint(tables map[effectmodel.Category]Table) []string {
	var problems []string
	for _, category := range effectmodel.Categories {
		t, ok := tables[category]
		if !ok {
			continue
		}
		for _, eventType := range t.types {
			for _, p := range t.descriptors[eventType].Lint(category) {
				problems = append(problems, fmt.Sprintf("%s.%s: %s", category, eventType, p))
			}
		}
	}
	return problems
}
