package registry

// The ConnectionIndex interface defines a store used to track the ids of live connections
type ConnectionIndex interface {
	Insert(string) error
	Remove(string) error
	Exists(string) bool
	List() ([]string, error)
}
