/*
Package bloom implements approximate set-membership testing with a
family of three related filters.

A Bloom filter answers "is item X in the set?" with one-sided error:

  - "definitely not present" is always correct: no false negatives.
  - "maybe present" may be wrong: false positives are possible, and
    become more likely as the bit array fills.

Filters are insert-only; deletion and exact counting are out of scope.

# The family

[Basic] is the raw primitive: a fixed bit array of m bits and k seeded
hash functions, both chosen by the caller.

[Sized] derives m and k from intent, an expected capacity n and a
target false positive rate p, using the standard closed forms

	k = round(-log2 p)
	m = round(-n·ln p / (ln 2)²)

and keeps its false positive rate at or below p for up to n distinct
insertions. Beyond n the rate degrades gracefully but without bound.

[Scalable] composes an append-only sequence of Sized filters so that
insertion is unbounded while the aggregate false positive rate stays
below the configured target. Each appended filter has s times the
capacity and r times the target rate of its predecessor (s > 1,
0 < r < 1), so the per-filter rates form a convergent geometric
series. Growth is driven by a fill estimator over the bits set in the
newest filter, and a membership hit anywhere in the sequence
suppresses re-insertion so repeated items cannot force growth.

# Items

All three filters accept any value that reduces to a stable key:
booleans, integers, floats, complex numbers, strings, []byte, types
implementing encoding.BinaryMarshaler, and fixed compositions of
those (arrays, structs, pointers). Mutable containers (slices other
than []byte, maps) and channels or funcs have no stable value
representation and are rejected with [ErrUnhashableItem]. Note that
[]byte is accepted for convenience, as is conventional for Bloom
filter keys; the caller must not mutate a slice it intends to query
again.

All filters are single-writer. Wrap access in a mutex for concurrent
use; for [Scalable] the lock must span the whole Add, which reads the
sequence before deciding whether to grow it.
*/
package bloom
