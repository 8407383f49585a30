package settings

import (
	"encoding/json"
	"strings"
)

// GeneralCategory groups top-level settings whose value is not an object.
const GeneralCategory = "general"

// Entry is one flattened (category, key, value) triple ready to be persisted.
// Value is the JSON encoding of the setting; Key is "<category>.<name>" except
// for general entries, which keep the bare top-level key.
type Entry struct {
	Category string
	Key      string
	Value    string
}

// Flatten converts a nested settings tree into flat entries.
//
// Each top-level value that is a plain object becomes one entry per immediate
// member, keyed "<category>.<name>". Anything else (string, number, bool,
// array) is filed under the "general" category with its top-level key
// unchanged. Values nested deeper than one level stay JSON-encoded inside
// their entry, which is what lets Reconstruct round-trip them.
func Flatten(tree map[string]interface{}) []Entry {
	entries := make([]Entry, 0, len(tree))

	for category, value := range tree {
		group, isObject := value.(map[string]interface{})
		if !isObject {
			entries = append(entries, Entry{
				Category: GeneralCategory,
				Key:      category,
				Value:    encodeValue(value),
			})
			continue
		}

		for name, leaf := range group {
			entries = append(entries, Entry{
				Category: category,
				Key:      category + "." + name,
				Value:    encodeValue(leaf),
			})
		}
	}

	return entries
}

// Reconstruct rebuilds the nested settings tree from flat entries. It is the
// inverse of Flatten: prefixed keys are nested under their category, general
// entries are hoisted back to the top level.
func Reconstruct(entries []Entry) map[string]interface{} {
	tree := map[string]interface{}{}

	for _, entry := range entries {
		value := decodeValue(entry.Value)

		prefix := entry.Category + "."
		if entry.Category != "" && strings.HasPrefix(entry.Key, prefix) {
			name := strings.TrimPrefix(entry.Key, prefix)
			group, ok := tree[entry.Category].(map[string]interface{})
			if !ok {
				group = map[string]interface{}{}
				tree[entry.Category] = group
			}
			group[name] = value
			continue
		}

		// General rows (and any legacy row without a category prefix) keep
		// their key at the top level.
		tree[entry.Key] = value
	}

	return tree
}

// DeepMerge merges src onto dst and returns a new map; neither input is
// mutated. Plain objects merge key-by-key recursively. Any other value —
// arrays included — replaces the target wholesale.
func DeepMerge(dst, src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(dst)+len(src))
	for k, v := range dst {
		out[k] = copyValue(v)
	}

	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]interface{})
		dstMap, dstIsMap := out[k].(map[string]interface{})
		if srcIsMap && dstIsMap {
			out[k] = DeepMerge(dstMap, srcMap)
			continue
		}
		out[k] = copyValue(v)
	}

	return out
}

func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[k] = copyValue(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = copyValue(inner)
		}
		return out
	default:
		return v
	}
}

func encodeValue(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Marshal only fails for values that can't appear in a settings tree
		// (channels, funcs). Store an empty value rather than dropping the key.
		return ""
	}
	return string(data)
}

// decodeValue parses a stored value as JSON. Rows written before the JSON
// convention (or edited by hand) may hold bare strings; those pass through
// unchanged instead of raising an error.
func decodeValue(raw string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
