// SPDX-License-Identifier: MIT
// Package: dataset
//
// codec.go: the JSON Lines record codec.

package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/dictlookup/matrix"
	"github.com/katalvlaran/dictlookup/problem"
)

// Record is the JSON Lines form of one problem.
type Record struct {
	Shard   int         `json:"shard"`
	Index   int         `json:"index"`
	NKeys   int         `json:"nKeys"`
	Nodes   [][]float64 `json:"nodes"`
	Adj     [][]float64 `json:"adj"`
	Answers []int       `json:"answers"`
}

// NewRecord captures p as problem index of shard.
func NewRecord(shard, index int, p *problem.Problem) Record {
	return Record{
		Shard:   shard,
		Index:   index,
		NKeys:   p.NKeys(),
		Nodes:   p.Nodes().Rows2D(),
		Adj:     p.Adjacency().Rows2D(),
		Answers: p.Answers(),
	}
}

// Problem rebuilds the problem. Shape violations surface as
// problem.ErrInvalidArgument or matrix sentinels.
func (r Record) Problem() (*problem.Problem, error) {
	nodes, err := matrix.NewDenseFromRows(r.Nodes)
	if err != nil {
		return nil, fmt.Errorf("record %d/%d nodes: %w", r.Shard, r.Index, err)
	}
	adj, err := matrix.NewDenseFromRows(r.Adj)
	if err != nil {
		return nil, fmt.Errorf("record %d/%d adj: %w", r.Shard, r.Index, err)
	}
	p, err := problem.FromParts(r.NKeys, nodes, adj, r.Answers)
	if err != nil {
		return nil, fmt.Errorf("record %d/%d: %w", r.Shard, r.Index, err)
	}
	return p, nil
}

// Writer encodes records one JSON object per line.
type Writer struct {
	enc *json.Encoder
	n   int
}

// NewWriter writes to w. It does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

// Write appends one record.
func (w *Writer) Write(r Record) error {
	if err := w.enc.Encode(r); err != nil {
		return fmt.Errorf("encode record %d/%d: %w", r.Shard, r.Index, err)
	}
	w.n++
	return nil
}

// WriteShards writes every problem of shards, shard by shard, in pull order.
func (w *Writer) WriteShards(shards []Shard) error {
	for _, s := range shards {
		for i, p := range s.Problems {
			if err := w.Write(NewRecord(s.Index, i, p)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int { return w.n }

// Reader decodes records written by Writer.
type Reader struct {
	dec *json.Decoder
	n   int
}

// NewReader reads from r. It does not close r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(r)}
}

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("decode record %d: %w", r.n, err)
	}
	r.n++
	return rec, nil
}

// ReadAll drains r.
func ReadAll(r io.Reader) ([]Record, error) {
	rd := NewReader(r)
	var out []Record
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}
