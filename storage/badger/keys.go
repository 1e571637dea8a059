package badger

import (
	"fmt"

	"github.com/poiesic/seromatch/core"
)

// Key prefixes for different data types
const (
	recordSetPrefix     = "recset"
	recordSetMetaPrefix = "recsetm"
)

// makeRecordSetKey generates the key holding a set's serialized records.
// Format: prefix:kind:name
func makeRecordSetKey(name string, kind core.Kind) []byte {
	return []byte(fmt.Sprintf("%s:%d:%s", recordSetPrefix, kind, name))
}

// makeRecordSetMetaKey generates the key holding a set's metadata.
// Meta keys sort by kind then name, which fixes the ListRecordSets order.
func makeRecordSetMetaKey(name string, kind core.Kind) []byte {
	return []byte(fmt.Sprintf("%s:%d:%s", recordSetMetaPrefix, kind, name))
}
