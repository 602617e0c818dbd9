// internal/bench/types.go
package bench

// Operation names the direction of a timed transform.
type Operation string

const (
	// OpEncrypt marks records produced by the timed encryption phase.
	OpEncrypt Operation = "encrypt"
	// OpDecrypt marks records produced by the timed decryption phase.
	OpDecrypt Operation = "decrypt"
)

// Record holds the aggregated statistics for one (cipher, operation, payload)
// triple. Records are immutable once emitted.
type Record struct {
	Cipher         string    `json:"cipher"`
	Operation      Operation `json:"operation"`
	Filename       string    `json:"filename"`
	FileSize       int       `json:"fileSizeBytes"`
	Runs           int       `json:"runs"`
	MeanMs         float64   `json:"meanTimeMs"`
	StdDevMs       float64   `json:"stdDevMs"`
	ThroughputMBps float64   `json:"throughputMBps"`
}
