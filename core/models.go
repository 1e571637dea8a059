package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// Record is one raw assay record as decoded from JSON: an open key-value
// mapping that minimally carries "id" and "long" fields. Values may nest
// further mappings and lists.
type Record = map[string]any

// Fingerprint is a content-based identity for serialized records.
// Identical content produces identical fingerprints.
type Fingerprint uint64

// FingerprintFromContent hashes raw bytes with BLAKE2b into a Fingerprint.
func FingerprintFromContent(data []byte) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// Kind tags a record set, entry, or dataset as holding antigens or sera.
type Kind int

const (
	// KindAntigen marks antigen records.
	KindAntigen Kind = iota + 1
	// KindSerum marks serum records.
	KindSerum
)

func (k Kind) String() string {
	switch k {
	case KindAntigen:
		return "antigen"
	case KindSerum:
		return "serum"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DiagnosticKind classifies a data-quality finding.
type DiagnosticKind int

const (
	// DiagDuplicateName reports a canonical place name bound to more than one code.
	DiagDuplicateName DiagnosticKind = iota + 1
	// DiagDuplicateCode reports a place code bound to more than one name.
	DiagDuplicateCode
	// DiagBadCode reports a place code that is empty or longer than two characters.
	DiagBadCode
	// DiagShortPlaceName reports a place name shorter than three characters.
	DiagShortPlaceName
	// DiagDuplicateID reports an entry id occurring more than once in a dataset.
	DiagDuplicateID
	// DiagIdenticalRecords reports two entries with the same long name whose
	// records are structurally identical.
	DiagIdenticalRecords
	// DiagUnmatchedID reports a requested id with no record in the source data.
	DiagUnmatchedID
	// DiagDuplicateMatch reports a requested id matched by more than one record.
	DiagDuplicateMatch
	// DiagNonStringField reports a required field that was coerced from a
	// non-string value.
	DiagNonStringField
	// DiagBadPattern reports a stored field that does not compile as a regexp
	// and was skipped during lookup.
	DiagBadPattern
	// DiagRepeatedStrainID reports repeated serum strain ids in a titer table,
	// a sign of repeated measurements.
	DiagRepeatedStrainID
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagDuplicateName:
		return "duplicate-name"
	case DiagDuplicateCode:
		return "duplicate-code"
	case DiagBadCode:
		return "bad-code"
	case DiagShortPlaceName:
		return "short-place-name"
	case DiagDuplicateID:
		return "duplicate-id"
	case DiagIdenticalRecords:
		return "identical-records"
	case DiagUnmatchedID:
		return "unmatched-id"
	case DiagDuplicateMatch:
		return "duplicate-match"
	case DiagNonStringField:
		return "non-string-field"
	case DiagBadPattern:
		return "bad-pattern"
	case DiagRepeatedStrainID:
		return "repeated-strain-id"
	default:
		return fmt.Sprintf("diagnostic(%d)", int(k))
	}
}

// Diagnostic is one non-fatal data-quality finding. Diagnostics accumulate
// on the object whose construction or health check produced them; they never
// alter control flow or returned results.
type Diagnostic struct {
	Kind    DiagnosticKind
	Subject string // the offending value: an id, name, code or pattern
	Detail  string
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Subject)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Subject, d.Detail)
}
