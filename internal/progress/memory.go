package progress

// MemoryBlob is an in-memory Blob for tests and ephemeral runs.
type MemoryBlob struct {
	data []byte
	set  bool
}

// NewMemoryBlob returns an empty MemoryBlob.
func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{}
}

// Seed pre-loads the blob content, marking it present.
func (m *MemoryBlob) Seed(data []byte) {
	m.data = append([]byte(nil), data...)
	m.set = true
}

func (m *MemoryBlob) Load() ([]byte, bool, error) {
	if !m.set {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

func (m *MemoryBlob) Save(data []byte) error {
	m.Seed(data)
	return nil
}
