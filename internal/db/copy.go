package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/claimgen/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading StagingRows from a
// channel, so generation and COPY proceed in lockstep.
type ChannelSource struct {
	ch      <-chan *model.StagingRow
	current *model.StagingRow
	rows    int64
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(ch <-chan *model.StagingRow) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	s.rows++
	return true
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err is always nil; producer failures are reported on their own channel.
func (s *ChannelSource) Err() error {
	return nil
}

// Rows returns how many rows have been handed to COPY.
func (s *ChannelSource) Rows() int64 {
	return s.rows
}

var _ pgx.CopyFromSource = (*ChannelSource)(nil)
