package literal

// ISerializer is the interface for all literal serializers
type ISerializer interface {
	// Serialize converts a value into the input-value literal of the query language
	// It returns the literal text and an error if any
	// The result is meant to be spliced verbatim into a query document, callers must not quote it again
	Serialize(value any) (string, error)
}
