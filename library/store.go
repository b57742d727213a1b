package library

// Store persists the catalog's full record sequence as one snapshot.
// Save overwrites the previous snapshot in full; there is no incremental
// persistence. Load yields an empty slice when no snapshot exists yet.
type Store interface {
	Save(books []*Book) error
	Load() ([]*Book, error)
}
