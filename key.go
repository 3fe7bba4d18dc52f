package bloom

import (
	"encoding"
	"encoding/binary"
	"math"
	"reflect"

	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
)

// Kind tags are xxh3 seeds that separate the type domains, so that
// e.g. uint64(3), "3" and 3.0 never share a key.
const (
	kindNil uint64 = iota + 1
	kindBool
	kindInt
	kindUint
	kindFloat
	kindComplex
	kindString
	kindBytes
	kindBinary
	kindTuple
)

// Index returns the bit position of item under hash function seed in a
// filter of m bits, m in [1, 1<<32). It is a pure function: the same
// (item, seed, m) always yields the same position, and positions behave
// as if drawn uniformly and independently across seeds.
//
// The construction is two-stage: the item is reduced to a stable 64-bit
// key (xxh3 over a kind-tagged canonical encoding), then the key bytes
// are mixed through murmur3 seeded with the hash index and reduced
// modulo m.
func Index(item any, seed uint32, m uint64) (uint64, error) {
	key, err := keyOf(item)
	if err != nil {
		return 0, err
	}
	return indexAt(key, seed, m), nil
}

func indexAt(key uint64, seed uint32, m uint64) uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], key)
	return uint64(murmur3.SeedSum32(seed, b[:])) % m
}

// keyOf reduces item to a stable 64-bit key, or reports
// ErrUnhashableItem for values with no stable representation.
func keyOf(item any) (uint64, error) {
	switch v := item.(type) {
	case nil:
		return scalarKey(kindNil, 0), nil
	case bool:
		return boolKey(v), nil
	case int:
		return scalarKey(kindInt, uint64(int64(v))), nil
	case int8:
		return scalarKey(kindInt, uint64(int64(v))), nil
	case int16:
		return scalarKey(kindInt, uint64(int64(v))), nil
	case int32:
		return scalarKey(kindInt, uint64(int64(v))), nil
	case int64:
		return scalarKey(kindInt, uint64(v)), nil
	case uint:
		return scalarKey(kindUint, uint64(v)), nil
	case uint8:
		return scalarKey(kindUint, uint64(v)), nil
	case uint16:
		return scalarKey(kindUint, uint64(v)), nil
	case uint32:
		return scalarKey(kindUint, uint64(v)), nil
	case uint64:
		return scalarKey(kindUint, v), nil
	case uintptr:
		return scalarKey(kindUint, uint64(v)), nil
	case float32:
		return scalarKey(kindFloat, math.Float64bits(float64(v))), nil
	case float64:
		return scalarKey(kindFloat, math.Float64bits(v)), nil
	case complex64:
		return complexKey(complex128(v)), nil
	case complex128:
		return complexKey(v), nil
	case string:
		return xxh3.HashStringSeed(v, kindString), nil
	case []byte:
		return xxh3.HashSeed(v, kindBytes), nil
	}
	if bm, ok := item.(encoding.BinaryMarshaler); ok {
		b, err := bm.MarshalBinary()
		if err != nil {
			return 0, ErrUnhashableItem
		}
		return xxh3.HashSeed(b, kindBinary), nil
	}
	return keyOfValue(reflect.ValueOf(item))
}

func scalarKey(kind uint64, bits uint64) uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], bits)
	return xxh3.HashSeed(b[:], kind)
}

func boolKey(v bool) uint64 {
	if v {
		return scalarKey(kindBool, 1)
	}
	return scalarKey(kindBool, 0)
}

func complexKey(v complex128) uint64 {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], math.Float64bits(real(v)))
	binary.BigEndian.PutUint64(b[8:], math.Float64bits(imag(v)))
	return xxh3.HashSeed(b[:], kindComplex)
}

// keyOfValue is the reflective fallback for named types and fixed
// compositions (arrays, structs, pointers). Hashability is structural:
// a composite is hashable iff every element is. Mutable containers
// (slices, maps) and identity types (chans, funcs) are rejected, the
// same contract an item must meet to be a map key or a tuple member.
func keyOfValue(rv reflect.Value) (uint64, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return boolKey(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalarKey(kindInt, uint64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalarKey(kindUint, rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return scalarKey(kindFloat, math.Float64bits(rv.Float())), nil
	case reflect.Complex64, reflect.Complex128:
		return complexKey(rv.Complex()), nil
	case reflect.String:
		return xxh3.HashStringSeed(rv.String(), kindString), nil
	case reflect.Array:
		return tupleKey(rv.Len(), rv.Index)
	case reflect.Struct:
		return tupleKey(rv.NumField(), rv.Field)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return scalarKey(kindNil, 0), nil
		}
		return keyOfValue(rv.Elem())
	default:
		return 0, ErrUnhashableItem
	}
}

// tupleKey combines n element keys into one, positionally.
func tupleKey(n int, elem func(int) reflect.Value) (uint64, error) {
	buf := make([]byte, 0, 8*n)
	for i := 0; i < n; i++ {
		k, err := keyOfValue(elem(i))
		if err != nil {
			return 0, err
		}
		buf = binary.BigEndian.AppendUint64(buf, k)
	}
	return xxh3.HashSeed(buf, kindTuple), nil
}
