// Package scan implements the search orchestrator: it walks a set of
// regions, reads each one through a remote.Reader in fixed-size
// chunks, scans each chunk with internal/scanner via internal/value,
// and accumulates matching addresses into a ResultSet. Read failures
// and short reads are reported to a WarnSink rather than aborting the
// whole scan, the same skip-and-warn posture the CLI uses for partial
// results elsewhere.
package scan

import (
	"context"
	"fmt"

	"github.com/tripwire/memscan/internal/region"
	"github.com/tripwire/memscan/internal/remote"
	"github.com/tripwire/memscan/internal/value"
)

// DefaultChunkSize is the read granularity when a caller doesn't
// override it via config.
const DefaultChunkSize = 128 * 1024 * 1024

// WarnSink receives a human-readable description of a skipped chunk or
// address. Implementations typically forward to internal/cli.IO.WarnLLM.
type WarnSink interface {
	Warn(issue, action string)
}

// NopSink discards every warning; useful in tests that don't care.
type NopSink struct{}

// Warn implements WarnSink.
func (NopSink) Warn(string, string) {}

// Hit is one matching address found during a scan.
type Hit struct {
	PID  int32
	Addr uint64
}

// ResultSet is the ordered set of addresses a Fresh or Refine pass
// produced, together with the type and endianness that produced it,
// which `list` reports. Refine does not read them from its prev
// argument: it re-casts each address under the type and endianness
// passed to it explicitly.
type ResultSet struct {
	DataType   value.DataType
	Endianness value.Endianness
	Hits       []Hit
}

// Options configures a scan pass.
type Options struct {
	ChunkSize int
}

func (o Options) chunkSize() int {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}

	return DefaultChunkSize
}

// Fresh scans every region in regions for occurrences of needleText
// parsed as dataType, reporting skipped reads to sink.
func Fresh(ctx context.Context, regions []region.Region, dataType value.DataType, needleText string, endian value.Endianness, opts Options, reader remote.Reader, sink WarnSink) (ResultSet, error) {
	needle, err := value.Parse(needleText, dataType)
	if err != nil {
		return ResultSet{}, err
	}

	rs := ResultSet{DataType: dataType, Endianness: endian}

	for _, r := range regions {
		if err := ctx.Err(); err != nil {
			return rs, err
		}

		hits := scanRegion(r, needle, endian, opts.chunkSize(), reader, sink)
		rs.Hits = append(rs.Hits, hits...)
	}

	return rs, nil
}

// Refine re-checks every address in prev against a new needle value,
// keeping only the addresses whose current bytes still match. Each
// address is read individually rather than by re-scanning whole
// regions, since the caller already knows exactly where to look.
func Refine(ctx context.Context, prev ResultSet, dataType value.DataType, needleText string, endian value.Endianness, reader remote.Reader, sink WarnSink) (ResultSet, error) {
	needle, err := value.Parse(needleText, dataType)
	if err != nil {
		return ResultSet{}, err
	}

	rs := ResultSet{DataType: dataType, Endianness: endian}

	buf := make([]byte, dataType.SizeBytes())

	for _, hit := range prev.Hits {
		if err := ctx.Err(); err != nil {
			return rs, err
		}

		n, err := reader.Read(hit.PID, hit.Addr, buf)
		if err != nil {
			sink.Warn(fmt.Sprintf("reading pid=%d addr=%#x", hit.PID, hit.Addr), "dropping address from the refined result set")

			continue
		}

		if n < len(buf) {
			sink.Warn(fmt.Sprintf("short read at pid=%d addr=%#x", hit.PID, hit.Addr), "dropping address from the refined result set")

			continue
		}

		if needle.EqBytes(buf, endian) {
			rs.Hits = append(rs.Hits, hit)
		}
	}

	return rs, nil
}

// scanRegion reads r in chunkSize-byte chunks and scans each one
// independently. A value straddling a chunk boundary is missed; in
// practice chunk_size is many orders of magnitude larger than any
// scalar width, so this costs at most a handful of addresses per
// region, not correctness of the scan as a whole.
//
// A chunk read failure is warned and skipped: the scan advances past
// the failed chunk and keeps accumulating hits from the rest of the
// region, rather than aborting the region entirely.
//
// A short read is warned too: the bytes that did arrive are scanned and
// the walk resumes at the first byte that was not read. A read that
// returns no bytes at all ends the walk of this region.
func scanRegion(r region.Region, needle value.Value, endian value.Endianness, chunkSize int, reader remote.Reader, sink WarnSink) []Hit {
	var hits []Hit

	buf := make([]byte, chunkSize)

	for addr := r.Start; addr < r.End; {
		want := r.End - addr
		if want > uint64(chunkSize) {
			want = uint64(chunkSize)
		}

		n, err := reader.Read(r.PID, addr, buf[:want])
		if err != nil {
			sink.Warn(fmt.Sprintf("reading pid=%d addr=%#x", r.PID, addr), "skipping this chunk, its matches are absent from this result set")

			addr += want

			continue
		}

		if uint64(n) < want {
			sink.Warn(fmt.Sprintf("short read at pid=%d addr=%#x", r.PID, addr), "scanning only the bytes that were read")
		}

		it := needle.Scan(buf[:n], endian)
		for {
			off, ok := it.Next()
			if !ok {
				break
			}

			hits = append(hits, Hit{PID: r.PID, Addr: addr + uint64(off)})
		}

		if n == 0 {
			break
		}

		addr += uint64(n)
	}

	return hits
}
