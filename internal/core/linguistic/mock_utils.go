package linguistic

// MockRecognizer returns a fixed set of names, or Err.
type MockRecognizer struct {
	Names []string
	Err   error
	Calls int
}

func (m *MockRecognizer) Persons(text string) ([]string, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Names, nil
}

type panickingRecognizer struct{}

func (panickingRecognizer) Persons(string) ([]string, error) {
	panic("model corrupted")
}
