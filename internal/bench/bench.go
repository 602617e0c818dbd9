// internal/bench/bench.go
// Package bench drives the benchmark matrix: for every (algorithm, payload)
// pair it performs a warm-up round trip, a fixed number of timed encrypt and
// decrypt calls, verifies correctness, and reduces the raw timings into
// Records. Execution is strictly sequential so that no concurrent work
// disturbs the per-call measurements.
package bench

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/mwiater/cipherbench/internal/ciphersuite"
	"github.com/mwiater/cipherbench/internal/payload"
)

// ErrCorrectnessMismatch is returned when a decrypted payload differs from
// the original plaintext, during warm-up or after the timed decrypt phase.
var ErrCorrectnessMismatch = errors.New("round-trip plaintext mismatch")

// Seams for tests; production code always uses the ciphersuite package.
var (
	timedEncrypt = ciphersuite.TimedEncrypt
	timedDecrypt = ciphersuite.TimedDecrypt
)

// Config carries the run parameters for the benchmark matrix.
type Config struct {
	WarmupIterations int
	TimedIterations  int
}

// Run benchmarks every algorithm against every payload using the single
// key/IV pair generated for this run. It returns two Records per pair, in
// matrix order. Any transform failure or correctness mismatch aborts the
// whole run: a mid-run cryptographic defect invalidates confidence in the
// remaining measurements, so no partial results are returned.
func Run(cfg Config, algs []ciphersuite.Algorithm, files []payload.File, key, iv []byte) ([]Record, error) {
	records := make([]Record, 0, 2*len(algs)*len(files))

	for _, alg := range algs {
		log.Printf("--- Testing %s ---", alg)
		for _, file := range files {
			log.Printf("File: %s (%d bytes)", file.Name, len(file.Data))

			encRecord, decRecord, err := runPair(cfg, alg, file, key, iv)
			if err != nil {
				return nil, err
			}
			records = append(records, encRecord, decRecord)

			log.Printf("Encrypt: mean=%.6f ms, stddev=%.6f ms, throughput=%.2f MB/s",
				encRecord.MeanMs, encRecord.StdDevMs, encRecord.ThroughputMBps)
			log.Printf("Decrypt: mean=%.6f ms, stddev=%.6f ms, throughput=%.2f MB/s",
				decRecord.MeanMs, decRecord.StdDevMs, decRecord.ThroughputMBps)
		}
	}

	return records, nil
}

// runPair executes warm-up, timed encryption, timed decryption, and the
// final correctness check for one (algorithm, payload) pair.
func runPair(cfg Config, alg ciphersuite.Algorithm, file payload.File, key, iv []byte) (Record, Record, error) {
	for i := 0; i < cfg.WarmupIterations; i++ {
		enc, err := timedEncrypt(alg, file.Data, key, iv)
		if err != nil {
			return Record{}, Record{}, fmt.Errorf("warm-up encrypt %s / %s: %w", alg, file.Name, err)
		}
		dec, err := timedDecrypt(alg, enc.Output, key, iv)
		if err != nil {
			return Record{}, Record{}, fmt.Errorf("warm-up decrypt %s / %s: %w", alg, file.Name, err)
		}
		if !bytes.Equal(dec.Output, file.Data) {
			return Record{}, Record{}, fmt.Errorf("warm-up %s / %s: %w", alg, file.Name, ErrCorrectnessMismatch)
		}
	}

	// Timed encryption. Outputs are deterministic, so only the last
	// ciphertext needs to be retained for the decrypt phase.
	encTimes := make([]float64, 0, cfg.TimedIterations)
	var lastCiphertext []byte
	for i := 0; i < cfg.TimedIterations; i++ {
		res, err := timedEncrypt(alg, file.Data, key, iv)
		if err != nil {
			return Record{}, Record{}, fmt.Errorf("encrypt %s / %s (run %d): %w", alg, file.Name, i+1, err)
		}
		encTimes = append(encTimes, res.ElapsedMs)
		lastCiphertext = res.Output
	}
	encRecord := aggregate(alg, OpEncrypt, file, encTimes)

	// Timed decryption on the retained ciphertext.
	decTimes := make([]float64, 0, cfg.TimedIterations)
	var lastPlaintext []byte
	for i := 0; i < cfg.TimedIterations; i++ {
		res, err := timedDecrypt(alg, lastCiphertext, key, iv)
		if err != nil {
			return Record{}, Record{}, fmt.Errorf("decrypt %s / %s (run %d): %w", alg, file.Name, i+1, err)
		}
		decTimes = append(decTimes, res.ElapsedMs)
		lastPlaintext = res.Output
	}

	if !bytes.Equal(lastPlaintext, file.Data) {
		return Record{}, Record{}, fmt.Errorf("decrypt %s / %s: %w", alg, file.Name, ErrCorrectnessMismatch)
	}
	decRecord := aggregate(alg, OpDecrypt, file, decTimes)

	return encRecord, decRecord, nil
}

// aggregate reduces one phase's raw timings into an immutable Record.
func aggregate(alg ciphersuite.Algorithm, op Operation, file payload.File, timesMs []float64) Record {
	mean := Mean(timesMs)
	return Record{
		Cipher:         alg.String(),
		Operation:      op,
		Filename:       file.Name,
		FileSize:       len(file.Data),
		Runs:           len(timesMs),
		MeanMs:         mean,
		StdDevMs:       PopulationStdDev(timesMs),
		ThroughputMBps: ThroughputMBps(len(file.Data), mean),
	}
}
