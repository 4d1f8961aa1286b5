package arena

// numBuckets is the number of free-list buckets: one per boundary in
// sizeClassBoundaries plus a final catch-all bucket for anything larger
// than the last boundary.
const numBuckets = len(sizeClassBoundaries) + 1

// sizeClassBoundaries are the upper bounds {2^5, ..., 2^20} bytes of the
// geometric size classes backing the free-list index. Bucket i holds freed
// blocks whose recorded size is <= sizeClassBoundaries[i]; the last bucket
// (index numBuckets-1) holds everything larger than the biggest boundary.
var sizeClassBoundaries = [16]uintptr{
	1 << 5, 1 << 6, 1 << 7, 1 << 8,
	1 << 9, 1 << 10, 1 << 11, 1 << 12,
	1 << 13, 1 << 14, 1 << 15, 1 << 16,
	1 << 17, 1 << 18, 1 << 19, 1 << 20,
}

// sizeClassIndex returns the smallest i such that s <= sizeClassBoundaries[i],
// or numBuckets-1 if s exceeds every boundary.
func sizeClassIndex(s uintptr) int {
	for i, boundary := range sizeClassBoundaries {
		if s <= boundary {
			return i
		}
	}
	return numBuckets - 1
}
