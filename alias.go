package rowdex

import (
	"github.com/hupe1980/rowdex/model"
)

// OpSet is the Indexer's public operation set bound under a key name: the
// explicit, reflection-free rendition of key-suffixed operation aliases.
// Every method behaves identically to its unsuffixed counterpart on the
// Indexer.
type OpSet struct {
	name string
	ix   *Indexer
}

// Name returns the key name the operations are bound under.
func (s *OpSet) Name() string { return s.name }

// FindRow is the aliased Indexer.FindRow.
func (s *OpSet) FindRow(sarg any, optFns ...SearchOption) (model.Row, bool, error) {
	return s.ix.FindRow(sarg, optFns...)
}

// FindRowIndex is the aliased Indexer.FindRowIndex.
func (s *OpSet) FindRowIndex(sarg any, optFns ...SearchOption) (int, bool, error) {
	return s.ix.FindRowIndex(sarg, optFns...)
}

// InsertRow is the aliased Indexer.InsertRow.
func (s *OpSet) InsertRow(row model.Row, optFns ...SearchOption) (Status, error) {
	return s.ix.InsertRow(row, optFns...)
}

// DeleteRow is the aliased Indexer.DeleteRow.
func (s *OpSet) DeleteRow(sarg any, optFns ...SearchOption) (model.Row, Status, error) {
	return s.ix.DeleteRow(sarg, optFns...)
}

// Invalidate is the aliased Indexer.Invalidate.
func (s *OpSet) Invalidate() {
	s.ix.Invalidate()
}

// ResetKey is the aliased Indexer.ResetKey.
func (s *OpSet) ResetKey() {
	s.ix.ResetKey()
}

// Ops returns the operation set bound under the given key name, if one was
// registered with WithNamedKey.
func (ix *Indexer) Ops(name string) (*OpSet, bool) {
	if ix.keyName == "" || name != ix.keyName {
		return nil, false
	}

	return &OpSet{name: name, ix: ix}, true
}

// Aliases returns all named operation sets keyed by key name, or nil when
// the key is unnamed.
func (ix *Indexer) Aliases() map[string]*OpSet {
	if ix.keyName == "" {
		return nil
	}

	return map[string]*OpSet{
		ix.keyName: {name: ix.keyName, ix: ix},
	}
}
