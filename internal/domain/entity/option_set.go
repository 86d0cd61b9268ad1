// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"slices"
	"strconv"
)

// OptionSet is a set of variation option identifiers selecting one purchasable
// variant of a product. Two sets that contain the same identifiers are equal
// regardless of the order the shopper picked them in.
type OptionSet []int64

// Normalize returns a sorted copy of the set. All persisted keys and
// comparisons go through the normalized form.
func (s OptionSet) Normalize() OptionSet {
	normalized := slices.Clone(s)
	slices.Sort(normalized)

	return normalized
}

// Equal reports order-independent set equality.
func (s OptionSet) Equal(other OptionSet) bool {
	return slices.Equal(s.Normalize(), other.Normalize())
}

// Key returns the canonical JSON encoding of the normalized set, used as the
// storage key component for cart lines and variations.
func (s OptionSet) Key() string {
	data, err := json.Marshal(s.Normalize())
	if err != nil {
		// A []int64 cannot fail to marshal.
		panic(err)
	}

	return string(data)
}

// LineKey returns the cart line key for a product and option selection:
// "<productID>_<canonical option JSON>".
func LineKey(productID int64, optionIDs OptionSet) string {
	return strconv.FormatInt(productID, 10) + "_" + optionIDs.Key()
}

// OptionSetFromKey parses the canonical JSON form produced by Key.
func OptionSetFromKey(key string) (OptionSet, error) {
	var ids OptionSet
	if err := json.Unmarshal([]byte(key), &ids); err != nil {
		return nil, err
	}

	return ids, nil
}
