package memory

// nextID replica MAX(id)+1 sobre el mapa. Se llama con el lock tomado.
func nextID[T any](byID map[int64]T) int64 {
	var max int64
	for id := range byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}
