package quotes

// FakeBackend serves a fixed set of rows, optionally failing. Used in tests.
type FakeBackend struct {
	Rows []Row
	Err  error
}

func (f *FakeBackend) Quotes(symbols []string) ([]Row, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Rows, nil
}
