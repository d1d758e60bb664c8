package purefn

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultMaxSize = 1024

// TableConfig bounds the memo table of a tableized function.
type TableConfig struct {
	MaxSize uint32 // entries per generation, default: 1024
}

// NewTableConfig returns a TableConfig, defaulting a zero size to 1024.
func NewTableConfig(maxSize uint32) TableConfig {
	if maxSize == 0 {
		maxSize = defaultMaxSize
	}
	return TableConfig{MaxSize: maxSize}
}

type entry[O any] struct {
	keys  []any
	value O
}

type generation[O any] map[uint64][]entry[O]

func (g generation[O]) find(digest uint64, keys []any) (O, bool) {
	for _, e := range g[digest] {
		if sameKeys(e.keys, keys) {
			return e.value, true
		}
	}
	var zero O
	return zero, false
}

// table keeps at most two generations of entries. When the head generation is
// full it becomes the old one and the previous old generation is dropped.
type table[O any] struct {
	mu      sync.Mutex
	head    generation[O]
	old     generation[O]
	size    uint32
	maxSize uint32
}

func newTable[O any](config TableConfig) *table[O] {
	config = NewTableConfig(config.MaxSize)
	return &table[O]{
		head:    generation[O]{},
		old:     generation[O]{},
		maxSize: config.MaxSize,
	}
}

func (t *table[O]) load(digest uint64, keys []any) (O, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.head.find(digest, keys); ok {
		return v, true
	}
	return t.old.find(digest, keys)
}

func (t *table[O]) store(digest uint64, keys []any, value O) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.head.find(digest, keys); ok {
		return
	}
	if t.size >= t.maxSize {
		t.old = t.head
		t.head = generation[O]{}
		t.size = 0
	}
	t.head[digest] = append(t.head[digest], entry[O]{keys: keys, value: value})
	t.size++
}

// stringerKey keys a non-comparable fmt.Stringer by its type and text.
type stringerKey struct {
	t reflect.Type
	s string
}

// tableKey turns an argument into a comparable key. Comparable values key by
// themselves; other values fall back to String().
// It panics for arguments that are neither comparable nor fmt.Stringer.
func tableKey(arg any) any {
	if arg == nil {
		return nil
	}
	v := reflect.ValueOf(arg)
	if v.Comparable() {
		return arg
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringerKey{t: v.Type(), s: stringer.String()}
	}
	panic(fmt.Sprintf("purefn: argument of type %T is neither comparable nor a fmt.Stringer", arg))
}

func tableKeys(args []any) ([]any, uint64) {
	keys := make([]any, len(args))
	d := xxhash.New()
	for i, arg := range args {
		keys[i] = tableKey(arg)
		if sk, ok := keys[i].(stringerKey); ok {
			fmt.Fprintf(d, "%v\x00%s\x00", sk.t, sk.s)
			continue
		}
		fmt.Fprintf(d, "%T\x00%v\x00", keys[i], keys[i])
	}
	return keys, d.Sum64()
}

func sameKeys(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func tableize[O any](pureFn func(...any) O, config TableConfig) func(...any) O {
	memo := newTable[O](config)
	return func(args ...any) O {
		keys, digest := tableKeys(args)
		if v, ok := memo.load(digest, keys); ok {
			return v
		}
		v := pureFn(args...)
		memo.store(digest, keys, v)
		return v
	}
}
