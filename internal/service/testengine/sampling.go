package testengine

// sampleIDs выбирает min(limit, n) различных ID равновероятно и без возвращения,
// где n — число различных ID во входе. Частичная перетасовка Фишера–Йейтса
// по копии: ровно min(limit, n) обменов, входной срез не изменяется.
// intN(k) должна возвращать равномерно распределённое число из [0, k).
func sampleIDs(ids []uint, limit int, intN func(int) int) []uint {
	pool := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		pool = append(pool, id)
	}

	n := len(pool)
	if limit > n {
		limit = n
	}
	if limit <= 0 {
		return []uint{}
	}

	for i := 0; i < limit; i++ {
		j := i + intN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:limit]
}
