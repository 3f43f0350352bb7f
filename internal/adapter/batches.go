package adapter

const defaultPageSize = 500

// batches splits items into consecutive chunks of at most size elements.
func batches[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = defaultPageSize
	}

	var out [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
