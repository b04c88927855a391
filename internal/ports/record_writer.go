package ports

// RecordWriter delivers a rendered document to a destination (e.g., a file).
type RecordWriter interface {
	Write(path string, data []byte) (written string, err error)
}
