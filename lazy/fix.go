package lazy

// Memoized wraps a pure function with a map cache: each distinct argument
// is computed once. Self-recursive functions gain nothing here (their inner
// calls bypass the wrapper); use FixMemo for those.
func Memoized[K comparable, V any](f func(K) V) func(K) V {
	cache := NewMapCache[K, V]()

	return func(key K) V {
		if v, ok := cache.Get(key); ok {
			return v
		}

		v := f(key)
		cache.Put(key, v)

		return v
	}
}

// RecFunc is a recursive computation written in open form: instead of
// calling itself by name, the body calls rec. Fix, FixMemo, and Y close
// the loop, each in its own way.
type RecFunc[I, O any] func(rec func(I) O, in I) O

// Fix ties the knot on an open-form recursive function.
func Fix[I, O any](f RecFunc[I, O]) func(I) O {
	var rec func(I) O
	rec = func(in I) O {
		return f(rec, in)
	}

	return rec
}

// FixMemo ties the knot with a cache in the loop: every recursive call, not
// just the outermost one, is looked up before being computed. This is what
// makes open-form fibonacci linear.
//
// The cache is caller-supplied, so the same recursion can run over a map,
// a dense table, or a prepopulated store of base cases.
func FixMemo[I, O any](cache Cache[I, O], f RecFunc[I, O]) func(I) O {
	var rec func(I) O
	rec = func(in I) O {
		if v, ok := cache.Get(in); ok {
			return v
		}

		v := f(rec, in)
		cache.Put(in, v)

		return v
	}

	return rec
}

// selfApply is a function that takes itself as an argument. Applying a
// value of this type to itself is what lets Y express recursion without
// naming anything.
type selfApply[I, O any] func(selfApply[I, O]) func(I) O

// Y is the applicative-order Y combinator: it produces the fixed point of
// f using only self-application, no named recursion and no mutation. Fix
// is the practical tool; Y exists to show the loop can be closed with
// nothing but function values.
func Y[I, O any](f RecFunc[I, O]) func(I) O {
	g := selfApply[I, O](func(self selfApply[I, O]) func(I) O {
		return func(in I) O {
			// Eta-expanded so self(self) is only evaluated when the
			// recursive call actually happens.
			return f(func(i I) O { return self(self)(i) }, in)
		}
	})

	return g(g)
}
