package config

import (
	"strings"

	"github.com/sufield/devcheck/assert"
)

// DebugTag is the build tag that enables every category.
const DebugTag = "debug"

// Tags returns the build tags that realize p, in category order with the
// debug tag first. Enable entries are dropped when debug already covers them.
func Tags(p Profile) ([]string, error) {
	enable, disable, err := categorySets(p)
	if err != nil {
		return nil, err
	}

	var tags []string
	if p.Debug {
		tags = append(tags, DebugTag)
	}
	for _, c := range assert.Categories() {
		switch {
		case p.Debug && disable[c]:
			tags = append(tags, c.OptOutTag())
		case !p.Debug && enable[c]:
			tags = append(tags, c.Tag())
		}
	}
	return tags, nil
}

// TagsFlag returns Tags joined for use as a -tags argument.
func TagsFlag(p Profile) (string, error) {
	tags, err := Tags(p)
	if err != nil {
		return "", err
	}
	return strings.Join(tags, ","), nil
}

// Resolve returns the effective on/off state of every category under p.
func Resolve(p Profile) (map[assert.Category]bool, error) {
	enable, disable, err := categorySets(p)
	if err != nil {
		return nil, err
	}

	state := make(map[assert.Category]bool, len(assert.Categories()))
	for _, c := range assert.Categories() {
		state[c] = (p.Debug && !disable[c]) || enable[c]
	}
	return state, nil
}

// ResolveTags evaluates the per-category build constraint
// (debug && !nocheck_X) || check_X against a set of build tags.
func ResolveTags(tags []string) map[assert.Category]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[strings.TrimSpace(t)] = true
	}

	state := make(map[assert.Category]bool, len(assert.Categories()))
	for _, c := range assert.Categories() {
		state[c] = (set[DebugTag] && !set[c.OptOutTag()]) || set[c.Tag()]
	}
	return state
}
