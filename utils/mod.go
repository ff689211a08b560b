package utils

// FindIndex returns the position of item in slice, or -1 when absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Tally counts the occurrences of each distinct value in slice.
func Tally[T comparable](slice []T) map[T]int {
	tally := make(map[T]int, len(slice))
	for _, v := range slice {
		tally[v]++
	}
	return tally
}
