package invoice

import "sync"

const defaultArchiveCapacity = 256

// Archive keeps recently rendered invoice PDFs in memory so an operator
// can re-download a receipt later in the shift. Entries are scoped to the
// operator who produced them; the oldest entries are evicted once the
// archive is full.
type Archive struct {
	mu       sync.Mutex
	capacity int
	order    []string
	byName   map[string]archived
}

type archived struct {
	operatorID string
	pdf        []byte
}

func NewArchive(capacity int) *Archive {
	if capacity <= 0 {
		capacity = defaultArchiveCapacity
	}
	return &Archive{
		capacity: capacity,
		byName:   make(map[string]archived),
	}
}

// Put stores a rendered invoice under its filename.
func (a *Archive) Put(operatorID, filename string, pdf []byte) {
	if filename == "" || len(pdf) == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.byName[filename]; !exists {
		for len(a.order) >= a.capacity {
			oldest := a.order[0]
			a.order = a.order[1:]
			delete(a.byName, oldest)
		}
		a.order = append(a.order, filename)
	}
	a.byName[filename] = archived{operatorID: operatorID, pdf: pdf}
}

// Get returns the stored PDF when the filename exists and belongs to the
// requesting operator.
func (a *Archive) Get(operatorID, filename string) ([]byte, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.byName[filename]
	if !ok || entry.operatorID != operatorID {
		return nil, false
	}
	return entry.pdf, true
}
