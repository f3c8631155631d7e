package bigint

// smallCacheSize is the number of small non-negative integers kept ready by
// Init, mirroring the original library's library-wide small-integer cache.
const smallCacheSize = 17

var smallCache [smallCacheSize]*BigInt

// Init populates the package-level small-number cache (the values 0 through
// 16) used internally by Parse and available to callers via Cached. Init
// and Cleanup are not safe for concurrent use with each other or with any
// other operation in this package — exactly the restriction spec.md places
// on the original library's cache, carried over unchanged rather than
// retrofitted with a mutex.
func Init() {
	for i := range smallCache {
		smallCache[i] = NewFromUint64(uint64(i))
	}
}

// Cleanup releases the small-number cache populated by Init. After Cleanup,
// Cached returns (nil, false) for every n until Init is called again.
func Cleanup() {
	for i := range smallCache {
		smallCache[i] = nil
	}
}

// Cached returns the cached BigInt for n if Init has been called and n is
// within the cache's range, and whether it was found. The returned value
// must not be mutated by the caller.
func Cached(n uint) (*BigInt, bool) {
	if n >= smallCacheSize || smallCache[n] == nil {
		return nil, false
	}
	return smallCache[n], true
}

// cachedOrNew returns the cached value for n when available, else a fresh
// one; used internally so Parse works whether or not Init was called.
func cachedOrNew(n uint) *BigInt {
	if v, ok := Cached(n); ok {
		return v.Clone()
	}
	return NewFromUint64(uint64(n))
}
