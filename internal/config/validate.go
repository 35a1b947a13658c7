package config

import (
	"errors"
	"fmt"

	"github.com/sufield/devcheck/assert"
)

var (
	// ErrUnknownCategory indicates a profile names a category that does not exist
	ErrUnknownCategory = assert.ErrUnknownCategory

	// ErrConflictingCategory indicates a category is both enabled and disabled
	ErrConflictingCategory = errors.New("category is both enabled and disabled")

	// ErrDisableWithoutDebug indicates disable entries in a non-debug profile,
	// where nothing is on to begin with
	ErrDisableWithoutDebug = errors.New("disable requires debug: true")

	// ErrUnsupportedVersion indicates a profile format newer than this build
	ErrUnsupportedVersion = errors.New("unsupported profile version")
)

// Validate checks a profile.
//
// Ensures:
//   - Version is 0 (unset) or CurrentVersion
//   - Every enable/disable entry names a known category
//   - No category is both enabled and disabled
//   - Disable is only used together with debug
func Validate(p Profile) error {
	_, _, err := categorySets(p)
	return err
}

// categorySets validates p and returns its enable and disable sets.
func categorySets(p Profile) (enable, disable map[assert.Category]bool, err error) {
	if p.Version != 0 && p.Version != CurrentVersion {
		return nil, nil, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, p.Version, CurrentVersion)
	}

	enable, err = parseList("enable", p.Enable)
	if err != nil {
		return nil, nil, err
	}
	disable, err = parseList("disable", p.Disable)
	if err != nil {
		return nil, nil, err
	}

	if len(disable) > 0 && !p.Debug {
		return nil, nil, ErrDisableWithoutDebug
	}
	for _, c := range assert.Categories() {
		if enable[c] && disable[c] {
			return nil, nil, fmt.Errorf("%w: %s", ErrConflictingCategory, c)
		}
	}

	return enable, disable, nil
}

func parseList(field string, names []string) (map[assert.Category]bool, error) {
	set := make(map[assert.Category]bool, len(names))
	for i, name := range names {
		c, err := assert.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		set[c] = true
	}
	return set, nil
}
