package serializers

// Serializer is an interface for serializing structured data.
// Implementations of this interface can serialize data to various formats
// such as JSON or YAML.
type Serializer interface {
	Serialize(data any) error
}
