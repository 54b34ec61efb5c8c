package experiences

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Store persists the uploaded subset of the catalog. Load is corruption
// tolerant and never fails: a missing or unreadable sidecar simply means no
// uploaded entries yet.
type Store interface {
	Load() []Entry
	Save(entries []Entry) error
	Exists() bool
}

var (
	// ErrSeedEntry is returned when a mutation targets a seed entry.
	ErrSeedEntry = errors.New("seed entries cannot be modified")
	// ErrNotFound is returned when no entry carries the requested id.
	ErrNotFound = errors.New("experience not found")
)

// Catalog owns the full ordered list of experiences: the seed set followed
// by the uploaded set. Every mutation and the persistence that follows it
// run under a single lock, so identifier allocation can never race with an
// append.
type Catalog struct {
	mu      sync.RWMutex
	entries []Entry
	store   Store
}

// NewCatalog builds a catalog from the seed set plus whatever the store
// holds for the uploaded set.
func NewCatalog(store Store) *Catalog {
	entries := Seeds()
	entries = append(entries, store.Load()...)
	return &Catalog{entries: entries, store: store}
}

// All returns the full catalog, seeds first, in order.
func (c *Catalog) All() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Uploaded returns only the non-seed entries, in order.
func (c *Catalog) Uploaded() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uploadedLocked()
}

func (c *Catalog) uploadedLocked() []Entry {
	out := []Entry{}
	for _, e := range c.entries {
		if !IsSeedID(e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the entry with the given id.
func (c *Catalog) Find(id string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// IsSeedID reports whether the id belongs to the seed set.
func IsSeedID(id string) bool {
	for _, s := range seedEntries {
		if s.ID == id {
			return true
		}
	}
	return false
}

// NextID returns the identifier an append would allocate right now. Exposed
// for inspection; mutations allocate under their own lock.
func (c *Catalog) NextID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextIDLocked()
}

// nextIDLocked scans the catalog for the highest numeric EXP suffix and
// returns that number plus one, zero-padded to at least two digits.
// Non-numeric suffixes are skipped, not errors.
func (c *Catalog) nextIDLocked() string {
	max := 0
	for _, e := range c.entries {
		n, ok := numericSuffix(e.ID)
		if ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%02d", IDPrefix, max+1)
}

func numericSuffix(id string) (int, bool) {
	if !strings.HasPrefix(id, IDPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, IDPrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// AppendNew allocates the next identifier, lets the caller build the entry
// for it (typically saving its files along the way) and appends it. The
// uploaded subset is persisted before the lock is released. A build error
// aborts the append; a persistence error is returned alongside the appended
// entry and must not be surfaced to the end user.
func (c *Catalog) AppendNew(build func(id string) (Entry, error)) (Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextIDLocked()
	entry, err := build(id)
	if err != nil {
		return Entry{}, err
	}
	entry.ID = id
	c.entries = append(c.entries, entry)
	return entry, c.store.Save(c.uploadedLocked())
}

// Remove deletes a non-seed entry and persists the uploaded subset. The
// record is removed regardless of what happens to its files; only the
// persistence error is reported back.
func (c *Catalog) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if IsSeedID(id) {
		return ErrSeedEntry
	}
	idx := -1
	for i, e := range c.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	c.entries = append(c.entries[:idx], c.entries[idx+1:]...)
	return c.store.Save(c.uploadedLocked())
}

// Rebuild discards the whole uploaded set and reconstructs it from the given
// file names, in order. The build callback receives the identifier allocated
// for each file; allocation sees the catalog as it grows, so identifiers
// stay unique across the scan. The result is persisted before returning.
func (c *Catalog) Rebuild(names []string, build func(id, name string) Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = Seeds()
	for _, name := range names {
		id := c.nextIDLocked()
		entry := build(id, name)
		entry.ID = id
		c.entries = append(c.entries, entry)
	}
	return c.store.Save(c.uploadedLocked())
}

// SaveNow force-persists the uploaded subset.
func (c *Catalog) SaveNow() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Save(c.uploadedLocked())
}

// PackageGroup is one display group of the catalog: the entries sharing a
// package name, with the author and voice of the first entry standing in
// for the whole group.
type PackageGroup struct {
	Package string
	Author  string
	Voice   string
	Entries []Entry
}

// Groups partitions the catalog by package in first-seen order. Entries
// without a package fall into the default group.
func (c *Catalog) Groups() []PackageGroup {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var groups []PackageGroup
	index := map[string]int{}
	for _, e := range c.entries {
		name := e.PackageName()
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, PackageGroup{
				Package: name,
				Author:  e.Author,
				Voice:   e.Voice,
			})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// Authors returns the sorted distinct author names in the catalog.
func (c *Catalog) Authors() []string {
	return c.distinct(func(e Entry) string { return e.Author })
}

// Voices returns the sorted distinct voice names in the catalog.
func (c *Catalog) Voices() []string {
	return c.distinct(func(e Entry) string { return e.Voice })
}

func (c *Catalog) distinct(field func(Entry) string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := map[string]bool{}
	var out []string
	for _, e := range c.entries {
		v := field(e)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Stats describes the catalog for the maintenance panel.
type Stats struct {
	Total         int
	Seeds         int
	Uploaded      int
	SidecarExists bool
}

// Stats returns current catalog counts and sidecar presence.
func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	uploaded := len(c.uploadedLocked())
	return Stats{
		Total:         len(c.entries),
		Seeds:         len(seedEntries),
		Uploaded:      uploaded,
		SidecarExists: c.store.Exists(),
	}
}
