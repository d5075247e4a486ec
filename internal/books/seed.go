package books

import "time"

// SeedData returns example books to pre-populate the store. IDs are
// sequential from one so they stay consistent with the length-based id
// assignment in Insert.
func SeedData() []Book {
	return []Book{
		{
			ID:        1,
			Title:     "The Go Programming Language",
			Author:    "Alan A. A. Donovan",
			Finished:  true,
			CreatedAt: time.Date(2024, time.January, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Title:     "Introducing Go",
			Author:    "Caleb Doxsey",
			Finished:  false,
			CreatedAt: time.Date(2024, time.February, 3, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:        3,
			Title:     "Concurrency in Go",
			Author:    "Katherine Cox-Buday",
			Finished:  false,
			CreatedAt: time.Date(2024, time.March, 21, 18, 45, 0, 0, time.UTC),
		},
	}
}
