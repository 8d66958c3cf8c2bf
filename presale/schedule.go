package presale

import (
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
)

type scheduleKey struct {
	EndsAt time.Time
	ID     uint64
}

// ScheduleComparator orders presales by end time, ties broken by id.
func ScheduleComparator(a, b interface{}) int {
	this := a.(scheduleKey)
	that := b.(scheduleKey)

	switch {
	case this.EndsAt.Before(that.EndsAt):
		return -1
	case this.EndsAt.After(that.EndsAt):
		return 1
	case this.ID < that.ID:
		return -1
	case this.ID > that.ID:
		return 1
	default:
		return 0
	}
}

// ScheduleIndex keeps presale ids ordered by sale end time so that sweeps and
// listings dont scan the whole registry.
type ScheduleIndex struct {
	tree *redblacktree.Tree
}

func NewScheduleIndex() *ScheduleIndex {
	return &ScheduleIndex{
		tree: redblacktree.NewWith(ScheduleComparator),
	}
}

func (s *ScheduleIndex) Insert(id uint64, endsAt time.Time) {
	s.tree.Put(scheduleKey{EndsAt: endsAt, ID: id}, id)
}

func (s *ScheduleIndex) Remove(id uint64, endsAt time.Time) {
	s.tree.Remove(scheduleKey{EndsAt: endsAt, ID: id})
}

// EndedBefore returns the ids of presales whose sale window closed before now,
// in end-time order.
func (s *ScheduleIndex) EndedBefore(now time.Time) []uint64 {
	ids := make([]uint64, 0)

	it := s.tree.Iterator()
	for it.Next() {
		key := it.Key().(scheduleKey)
		if !key.EndsAt.Before(now) {
			break
		}

		ids = append(ids, key.ID)
	}

	return ids
}

// Ordered returns every indexed presale id by ascending end time.
func (s *ScheduleIndex) Ordered() []uint64 {
	ids := make([]uint64, 0, s.tree.Size())

	it := s.tree.Iterator()
	for it.Next() {
		ids = append(ids, it.Value().(uint64))
	}

	return ids
}

func (s *ScheduleIndex) Size() int {
	return s.tree.Size()
}
